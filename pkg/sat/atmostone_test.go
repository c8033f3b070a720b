package sat_test

import (
	"testing"

	"github.com/polyform/tilekernel/internal/satref"
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tile"
	"github.com/polyform/tilekernel/pkg/transform"
)

// singleCellTiles builds n identical single-cell tiles. On a 1x1 region all
// n placements cover the same cell, forcing the at-most-one encoding to
// actually discriminate.
func singleCellTiles(l lattice.Lattice, n int) []placement.TileVariants {
	var out []placement.TileVariants
	for i := 0; i < n; i++ {
		t, err := tile.New(l, []lattice.Cell{{Row: 0, Col: 0}}, nil)
		if err != nil {
			panic(err)
		}
		out = append(out, placement.TileVariants{
			TileIndex: i,
			Variants:  transform.Enumerate(l, t),
		})
	}
	return out
}

func TestAtMostOnePairwiseAndSinz(t *testing.T) {
	for _, n := range []int{2, 3, 4, 5, 8} {
		n := n
		t.Run(string(rune('0'+n)), func(t *testing.T) {
			l, err := lattice.For(lattice.Square)
			if err != nil {
				t.Fatal(err)
			}
			tiles := singleCellTiles(l, n)
			region := placement.Region{Width: 1, Height: 1}
			result, err := placement.Enumerate(l, region, tiles)
			if err != nil {
				t.Fatal(err)
			}
			if len(result.Placements) != n {
				t.Fatalf("want %d placements, got %d", n, len(result.Placements))
			}

			solver := satref.New()
			outcome, err := sat.Encode(solver, sat.Config{
				Lattice: l,
				Region:  region,
				Result:  result,
			})
			if err != nil {
				t.Fatal(err)
			}
			if !outcome.Solvable {
				t.Fatal("expected solvable")
			}
			if len(outcome.Placements) != 1 {
				t.Fatalf("at-most-one violated: got %d placements selected", len(outcome.Placements))
			}
		})
	}
}
