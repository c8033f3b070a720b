package tiling_test

import (
	"context"
	"testing"

	"github.com/polyform/tilekernel/internal/satref"
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tiling"
)

// TestSolveTilingLTrominoThreeByThreeIsUnsolvable is spec.md §8 scenario
// S1: although 9 is a multiple of 3, no arrangement of L-trominoes exactly
// covers a 3x3 square region.
func TestSolveTilingLTrominoThreeByThreeIsUnsolvable(t *testing.T) {
	cfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}},
		}},
		Region:    tiling.Region{Width: 3, Height: 3},
		SatSolver: satref.New(),
	}

	out, err := tiling.SolveTiling(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if out.Solvable {
		t.Fatalf("3x3 region tiled by a single L-tromino should be unsolvable, got %d placements", len(out.Placements))
	}
}

// TestSolveTilingLTetrominoEightByEightSolvable is spec.md §8 scenario S2:
// an L-tetromino exactly tiles an 8x8 square region using 16 placements.
func TestSolveTilingLTetrominoEightByEightSolvable(t *testing.T) {
	cfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}},
		}},
		Region:    tiling.Region{Width: 8, Height: 8},
		SatSolver: satref.New(),
	}

	out, err := tiling.SolveTiling(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Solvable {
		t.Fatal("8x8 region tiled by an L-tetromino should be solvable")
	}
	if len(out.Placements) != 16 {
		t.Fatalf("want 16 placements, got %d", len(out.Placements))
	}
}

// TestSolveTilingDominoFourByFourSolvable is spec.md §8 scenario S3: a
// domino exactly tiles a 4x4 square region using 8 placements.
func TestSolveTilingDominoFourByFourSolvable(t *testing.T) {
	cfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		}},
		Region:    tiling.Region{Width: 4, Height: 4},
		SatSolver: satref.New(),
	}

	out, err := tiling.SolveTiling(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Solvable {
		t.Fatal("4x4 region tiled by a domino should be solvable")
	}
	if len(out.Placements) != 8 {
		t.Fatalf("want 8 placements, got %d", len(out.Placements))
	}
}

// TestGenerateMazeOnDominoGridProducesOneFewerOpeningThanPlacements is
// spec.md §8 scenario S6: running generate_maze on a solved tiling with a
// fixed seed produces exactly (numPlacements - 1) openings, a spanning
// tree over the placement-adjacency graph.
func TestGenerateMazeOnDominoGridProducesOneFewerOpeningThanPlacements(t *testing.T) {
	solveCfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		}},
		Region:    tiling.Region{Width: 4, Height: 4},
		SatSolver: satref.New(),
	}
	solved, err := tiling.SolveTiling(context.Background(), solveCfg)
	if err != nil {
		t.Fatal(err)
	}
	if !solved.Solvable {
		t.Fatal("setup: expected a solvable domino tiling")
	}

	m, err := tiling.GenerateMaze(context.Background(), tiling.MazeConfig{
		Lattice:    lattice.Square,
		Region:     tiling.Region{Width: 4, Height: 4},
		Placements: solved.Placements,
		Seed:       42,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Openings) != len(solved.Placements)-1 {
		t.Fatalf("want %d openings (spanning tree), got %d", len(solved.Placements)-1, len(m.Openings))
	}
}

// TestSolveTilingEdgeColorRejectsZeroPalette covers the EdgeColor
// validation path: a palette size of 0 is rejected eagerly, before the
// solver ever runs (spec.md §7's "validated eagerly at API entry").
func TestSolveTilingEdgeColorRejectsZeroPalette(t *testing.T) {
	cfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}},
		}},
		Region:    tiling.Region{Width: 2, Height: 2},
		EdgeMode:  sat.EdgeMode{Kind: sat.EdgeColor, PaletteSize: 0},
		SatSolver: satref.New(),
	}

	if _, err := tiling.SolveTiling(context.Background(), cfg); err == nil {
		t.Fatal("expected an error for a zero-size edge-color palette")
	}
}

// TestSolveTilingRespectsCancellation checks the context.Context
// cancellation suspension points (spec.md §5).
func TestSolveTilingRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := tiling.Config{
		Lattice: lattice.Square,
		Tiles: []tiling.TileSpec{{
			Cells: []lattice.Cell{{Row: 0, Col: 0}},
		}},
		Region:    tiling.Region{Width: 2, Height: 2},
		SatSolver: satref.New(),
	}

	if _, err := tiling.SolveTiling(ctx, cfg); err == nil {
		t.Fatal("expected a cancellation error")
	}
}
