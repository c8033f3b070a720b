package lattice

// hexLattice implements Lattice for a pointy-top hex grid stored in odd-r
// offset coordinates (spec.md §3.1, §4.1).
//
// Directions are ordered clockwise starting at NE = 0: NE, E, SE, SW, W, NW.
// The fundamental rotation is 60° clockwise in cube coordinates; the
// symmetry group has K=12 elements (6 rotations × optional horizontal flip).
type hexLattice struct{}

// axial direction deltas (dq, dr), index-aligned with the documented
// clockwise-from-top ordering.
var hexAxialDirs = [6][2]int{
	{1, -1}, // NE
	{1, 0},  // E
	{0, 1},  // SE
	{-1, 1}, // SW
	{-1, 0}, // W
	{0, -1}, // NW
}

func offsetToAxial(c Cell) (q, r int) {
	return c.Col - floorDiv2(c.Row), c.Row
}

func axialToOffset(q, r int) Cell {
	return Cell{Row: r, Col: q + floorDiv2(r)}
}

func floorDiv2(n int) int {
	if n >= 0 {
		return n / 2
	}
	return -((-n + 1) / 2)
}

func (hexLattice) Kind() Kind { return Hex }

func (hexLattice) DirectionCount() int { return 6 }

func (hexLattice) TransformCount() int { return 12 }

func (hexLattice) MaxRotations() int { return 6 }

func (hexLattice) Neighbors(c Cell) []Neighbor {
	q, r := offsetToAxial(c)
	out := make([]Neighbor, 6)
	for d, delta := range hexAxialDirs {
		out[d] = Neighbor{Dir: d, Cell: axialToOffset(q+delta[0], r+delta[1])}
	}
	return out
}

func (l hexLattice) SharedEdge(a, b Cell) (int, int, bool) {
	for d, n := range l.Neighbors(a) {
		if n.Cell == b {
			return d, (d + 3) % 6, true
		}
	}
	return 0, 0, false
}

// EdgePermutation implements rot^r ∘ flip. A single 60° CW rotation in
// cube coordinates, (x,y,z)->(-z,-x,-y), carries the direction sequence
// NE->E->SE->SW->W->NW->NE, i.e. shifts every index by +1 mod 6. The
// horizontal flip (q,r)->(-q-r,r) carries NE<->NW, E<->W, SE<->SW, i.e.
// flip(d) = (5-d) mod 6.
func (hexLattice) EdgePermutation(transformIndex int) []int {
	flip, rot := decompose(6, transformIndex)
	perm := make([]int, 6)
	for d := 0; d < 6; d++ {
		v := d
		if flip {
			v = (5 - v + 6) % 6
		}
		perm[d] = cyclicShiftPermutation(v, rot, 6)
	}
	return perm
}

func rotateCubeCW(x, y, z int) (int, int, int) {
	return -z, -x, -y
}

func (hexLattice) ApplyCellTransform(transformIndex int, c Cell) Cell {
	flip, rot := decompose(6, transformIndex)
	q, r := offsetToAxial(c)
	if flip {
		q, r = -q-r, r
	}
	x, z := q, r
	y := -x - z
	for i := 0; i < rot; i++ {
		x, y, z = rotateCubeCW(x, y, z)
	}
	return axialToOffset(x, z)
}

// CellToVertices returns a degenerate single-vertex representation equal to
// the cell's axial coordinate: spec.md does not define hex corner geometry,
// only the offset<->axial<->cube conversions used for rotation (see
// DESIGN.md).
func (hexLattice) CellToVertices(c Cell) []Vertex {
	q, r := offsetToAxial(c)
	return []Vertex{{X: q, Y: r}}
}

func (hexLattice) VerticesToCell(vs []Vertex) (Cell, error) {
	if len(vs) != 1 {
		return Cell{}, invariantf("hex: expected 1 vertex, got %d", len(vs))
	}
	return axialToOffset(vs[0].X, vs[0].Y), nil
}

func (hexLattice) ApplyVertexTransform(transformIndex int, v Vertex) Vertex {
	c := hexLattice{}.ApplyCellTransform(transformIndex, axialToOffset(v.X, v.Y))
	q, r := offsetToAxial(c)
	return Vertex{X: q, Y: r}
}
