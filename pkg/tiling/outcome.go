package tiling

import "github.com/polyform/tilekernel/pkg/placement"

// TilingOutcome is the result of SolveTiling (spec.md §6.1): either
// Solvable (placements, stats, tile type counts) or Unsolvable (stats
// only). Solvable discriminates which branch is populated.
type TilingOutcome struct {
	Solvable       bool
	Placements     []placement.Placement
	TileTypeCounts map[int]int
	Stats          Stats
}

// Stats reports the clause-emission counters passed to on_stats, retained
// on the outcome for callers that did not supply one (spec.md §4.4
// "Progress").
type Stats struct {
	NumVariables int
	NumClauses   int
}
