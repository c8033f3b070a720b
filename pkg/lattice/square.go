package lattice

// squareLattice implements Lattice for the plain square grid.
//
// Directions are ordered [up, right, down, left] = 0..3 (spec.md §3.1).
// The fundamental rotation is 90° clockwise; the symmetry group has
// K=8 elements (4 rotations × optional horizontal flip).
type squareLattice struct{}

var squareDirs = [4]Cell{
	{Row: -1, Col: 0}, // up
	{Row: 0, Col: 1},  // right
	{Row: 1, Col: 0},  // down
	{Row: 0, Col: -1}, // left
}

func (squareLattice) Kind() Kind { return Square }

func (squareLattice) DirectionCount() int { return 4 }

func (squareLattice) TransformCount() int { return 8 }

func (squareLattice) MaxRotations() int { return 4 }

func (squareLattice) Neighbors(c Cell) []Neighbor {
	out := make([]Neighbor, 4)
	for d, delta := range squareDirs {
		out[d] = Neighbor{Dir: d, Cell: Cell{Row: c.Row + delta.Row, Col: c.Col + delta.Col}}
	}
	return out
}

func (squareLattice) SharedEdge(a, b Cell) (int, int, bool) {
	for d, delta := range squareDirs {
		if (Cell{Row: a.Row + delta.Row, Col: a.Col + delta.Col}) == b {
			return d, (d + 2) % 4, true
		}
	}
	return 0, 0, false
}

// EdgePermutation implements rot^r ∘ flip on direction indices. Rotating
// the direction vectors 90° CW (row,col)->(col,-row) sends up->right->
// down->left->up, i.e. a single rotation step shifts every index by +1
// mod 4. Horizontal flip (row,col)->(row,-col) fixes up/down and swaps
// right/left, i.e. flip(d) = (4-d) mod 4.
func (squareLattice) EdgePermutation(transformIndex int) []int {
	flip, rot := decompose(4, transformIndex)
	perm := make([]int, 4)
	for d := 0; d < 4; d++ {
		v := d
		if flip {
			v = (4 - v) % 4
		}
		perm[d] = cyclicShiftPermutation(v, rot, 4)
	}
	return perm
}

func (squareLattice) ApplyCellTransform(transformIndex int, c Cell) Cell {
	flip, rot := decompose(4, transformIndex)
	r, col := c.Row, c.Col
	if flip {
		col = -col
	}
	for i := 0; i < rot; i++ {
		r, col = col, -r
	}
	return Cell{Row: r, Col: col}
}

// CellToVertices returns a degenerate single-vertex representation equal to
// the cell coordinate: spec.md defines no multi-vertex geometry for the
// square lattice (see DESIGN.md).
func (squareLattice) CellToVertices(c Cell) []Vertex {
	return []Vertex{{X: c.Col, Y: c.Row}}
}

func (l squareLattice) VerticesToCell(vs []Vertex) (Cell, error) {
	if len(vs) != 1 {
		return Cell{}, invariantf("square: expected 1 vertex, got %d", len(vs))
	}
	return Cell{Row: vs[0].Y, Col: vs[0].X}, nil
}

func (squareLattice) ApplyVertexTransform(transformIndex int, v Vertex) Vertex {
	c := squareLattice{}.ApplyCellTransform(transformIndex, Cell{Row: v.Y, Col: v.X})
	return Vertex{X: c.Col, Y: c.Row}
}
