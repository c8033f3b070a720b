package maze

import (
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
)

// pairKey canonically orders a placement ID pair so (p,q) and (q,p) collide.
type pairKey struct{ A, B int }

func newPairKey(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{A: a, B: b}
}

// adjacency builds, from a tiling solution, the map of unordered placement
// pairs to the list of lattice edges shared between their cells, plus the
// region's boundary edges (spec.md §4.5 step 1 and step 4).
func adjacency(l lattice.Lattice, region placement.Region, placements []placement.Placement) (map[pairKey][]Edge, []BoundaryEdge) {
	owner := make(map[lattice.Cell]int, region.Width*region.Height)
	for _, p := range placements {
		for _, c := range p.Cells {
			owner[c] = p.ID
		}
	}

	pairs := make(map[pairKey][]Edge)
	var boundary []BoundaryEdge
	seen := make(map[lattice.Cell]map[int]bool, region.Width*region.Height)

	for row := 0; row < region.Height; row++ {
		for col := 0; col < region.Width; col++ {
			c := lattice.Cell{Row: row, Col: col}
			pID, ok := owner[c]
			if !ok {
				continue
			}
			for _, n := range l.Neighbors(c) {
				nc := n.Cell
				if nc.Row < 0 || nc.Row >= region.Height || nc.Col < 0 || nc.Col >= region.Width {
					boundary = append(boundary, BoundaryEdge{Cell: c, Dir: n.Dir})
					continue
				}
				qID, ok := owner[nc]
				if !ok || qID == pID {
					continue
				}
				if seen[c] == nil {
					seen[c] = make(map[int]bool)
				}
				if seen[c][n.Dir] {
					continue
				}
				dirA, dirB, ok := l.SharedEdge(c, nc)
				if !ok {
					continue
				}
				if seen[nc] == nil {
					seen[nc] = make(map[int]bool)
				}
				seen[c][dirA] = true
				seen[nc][dirB] = true

				key := newPairKey(pID, qID)
				pairs[key] = append(pairs[key], Edge{CellA: c, DirA: dirA, CellB: nc, DirB: dirB})
			}
		}
	}

	return pairs, boundary
}
