package maze

import "github.com/polyform/tilekernel/pkg/lattice"

// Edge is one lattice edge between two cells belonging to different
// placements, recorded from both sides.
type Edge struct {
	CellA lattice.Cell
	DirA  int
	CellB lattice.Cell
	DirB  int
}

// BoundaryEdge is a lattice edge on the outer boundary of the region: one
// side faces outside the region entirely, so it can never be opened
// (spec.md §4.5 step 4).
type BoundaryEdge struct {
	Cell lattice.Cell
	Dir  int
}

// Maze is the output of Build (spec.md §3.2 "Maze").
type Maze struct {
	// Openings are the shared placement-boundary edges knocked down, one
	// per spanning-tree edge.
	Openings []Edge
	// Walls are shared placement-boundary edges left standing.
	Walls []Edge
	// BoundaryWalls are outer-region edges; always walls, never openings.
	BoundaryWalls []BoundaryEdge
	// TreeEdges are the placement-ID pairs selected into the spanning tree,
	// in the order the spanning-tree computation returned them. Each has
	// exactly one entry in Openings; Openings is not in the same order.
	TreeEdges [][2]int
}
