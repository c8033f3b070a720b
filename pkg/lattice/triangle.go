package lattice

// triangleLattice implements Lattice for the triangular grid (spec.md §3.1,
// §4.1). Cells are (row, col) with parity = (row+col) mod 2: parity 0 is
// up-pointing, parity 1 is down-pointing.
//
// Each cell has three half-edge vertices (X, Y) satisfying (X-Y) odd.
// Vertices map to an internal UV lattice by u = (X-Y-1)/2, v = Y, where
// rotation and reflection are simple linear maps (spec.md §4.2). Direction
// indices are labeled by "opposite vertex": for an up cell with vertices
// ordered (apex, bottom-left, bottom-right), direction 0 is the edge
// opposite the apex (the flat bottom edge), 1 is opposite bottom-left
// (the right edge), 2 is opposite bottom-right (the left edge). The same
// opposite-vertex convention applied to a down cell's (top-left, top-right,
// apex) vertex order yields direction 0 = right edge, 1 = left edge,
// 2 = top edge. This labeling makes shared_edge's direction pairing the
// involution dirFromB = 2 - dirFromA, independent of which side is up or
// down (see DESIGN.md).
type triangleLattice struct{}

func isUp(c Cell) bool { return (c.Row+c.Col)%2 == 0 }

// upNeighbors returns, for an up cell, the neighbor across each of
// direction 0 (bottom), 1 (right), 2 (left).
func upNeighbors(c Cell) [3]Cell {
	return [3]Cell{
		{Row: c.Row + 1, Col: c.Col}, // bottom
		{Row: c.Row, Col: c.Col + 1}, // right
		{Row: c.Row, Col: c.Col - 1}, // left
	}
}

// downNeighbors returns, for a down cell, the neighbor across each of
// direction 0 (right), 1 (left), 2 (top).
func downNeighbors(c Cell) [3]Cell {
	return [3]Cell{
		{Row: c.Row, Col: c.Col + 1},  // right
		{Row: c.Row, Col: c.Col - 1},  // left
		{Row: c.Row - 1, Col: c.Col}, // top
	}
}

func (triangleLattice) Kind() Kind { return Triangle }

func (triangleLattice) DirectionCount() int { return 3 }

func (triangleLattice) TransformCount() int { return 12 }

func (triangleLattice) MaxRotations() int { return 6 }

func (triangleLattice) Neighbors(c Cell) []Neighbor {
	var ns [3]Cell
	if isUp(c) {
		ns = upNeighbors(c)
	} else {
		ns = downNeighbors(c)
	}
	out := make([]Neighbor, 3)
	for d, n := range ns {
		out[d] = Neighbor{Dir: d, Cell: n}
	}
	return out
}

func (l triangleLattice) SharedEdge(a, b Cell) (int, int, bool) {
	for _, n := range l.Neighbors(a) {
		if n.Cell == b {
			return n.Dir, 2 - n.Dir, true
		}
	}
	return 0, 0, false
}

// EdgePermutation implements rot^r ∘ flip on the 0..2 local direction
// labels. A single 60° rotation step shifts every label by +1 mod 3;
// the flip used to compose the dihedral group reverses orientation,
// matching the same 2-d involution used by SharedEdge.
func (triangleLattice) EdgePermutation(transformIndex int) []int {
	flip, rot := decompose(6, transformIndex)
	perm := make([]int, 3)
	for d := 0; d < 3; d++ {
		v := d
		if flip {
			v = 2 - v
		}
		perm[d] = cyclicShiftPermutation(v, rot, 3)
	}
	return perm
}

// --- half-edge vertex geometry ---

func cellToVertices(c Cell) [3]Vertex {
	if isUp(c) {
		return [3]Vertex{
			{X: c.Col + 1, Y: c.Row},
			{X: c.Col, Y: c.Row + 1},
			{X: c.Col + 2, Y: c.Row + 1},
		}
	}
	return [3]Vertex{
		{X: c.Col, Y: c.Row},
		{X: c.Col + 2, Y: c.Row},
		{X: c.Col + 1, Y: c.Row + 1},
	}
}

func (triangleLattice) CellToVertices(c Cell) []Vertex {
	vs := cellToVertices(c)
	return vs[:]
}

func vertexToUV(v Vertex) (u, v2 int) {
	return (v.X - v.Y - 1) / 2, v.Y
}

func uvToVertex(u, v int) Vertex {
	return Vertex{X: 2*u + v + 1, Y: v}
}

func rotateUV(u, v int) (int, int) {
	return u + v, -u
}

func (triangleLattice) ApplyVertexTransform(transformIndex int, vert Vertex) Vertex {
	flip, rot := decompose(6, transformIndex)
	u, v := vertexToUV(vert)
	if flip {
		u, v = -u-v, v
	}
	for i := 0; i < rot; i++ {
		u, v = rotateUV(u, v)
	}
	return uvToVertex(u, v)
}

// ApplyCellTransform is defined as vertices_to_cell(apply_to_vertices(T,
// cell_to_vertices(c))), which makes the round-trip testable property
// (spec.md §8 property 3) true by construction for the triangle lattice —
// the only lattice with genuine multi-vertex geometry.
func (l triangleLattice) ApplyCellTransform(transformIndex int, c Cell) Cell {
	vs := cellToVertices(c)
	transformed := make([]Vertex, 3)
	for i, v := range vs {
		transformed[i] = l.ApplyVertexTransform(transformIndex, v)
	}
	out, err := l.VerticesToCell(transformed)
	if err != nil {
		panic(err)
	}
	return out
}

// VerticesToCell reconstructs (row, col) from a transformed vertex triple.
// An up cell's Y values are (apex:minY, bottomLeft:minY+1, bottomRight:minY+1)
// — one vertex at minY, two at minY+1. A down cell has the opposite pattern:
// two vertices at minY, one at minY+1. row is the smaller Y; col is the
// smaller X among the two vertices at whichever Y level holds the base edge.
func (triangleLattice) VerticesToCell(vs []Vertex) (Cell, error) {
	if len(vs) != 3 {
		return Cell{}, invariantf("triangle: expected 3 vertices, got %d", len(vs))
	}
	minY := vs[0].Y
	maxY := vs[0].Y
	for _, v := range vs[1:] {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}
	if maxY-minY != 1 {
		return Cell{}, invariantf("triangle: maxY-minY = %d, want 1 (vertices %v)", maxY-minY, vs)
	}

	var atMin, atMax []Vertex
	for _, v := range vs {
		if v.Y == minY {
			atMin = append(atMin, v)
		} else {
			atMax = append(atMax, v)
		}
	}

	switch {
	case len(atMin) == 1 && len(atMax) == 2:
		// up cell: apex at minY, base at maxY
		baseMinX := atMax[0].X
		if atMax[1].X < baseMinX {
			baseMinX = atMax[1].X
		}
		return Cell{Row: minY, Col: baseMinX}, nil
	case len(atMin) == 2 && len(atMax) == 1:
		// down cell: base at minY, apex at maxY
		baseMinX := atMin[0].X
		if atMin[1].X < baseMinX {
			baseMinX = atMin[1].X
		}
		return Cell{Row: minY, Col: baseMinX}, nil
	default:
		return Cell{}, invariantf("triangle: vertices don't form a valid cell: %v", vs)
	}
}
