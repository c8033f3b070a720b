package tiling_test

import (
	"context"
	"testing"

	"github.com/polyform/tilekernel/internal/satref"
	"github.com/polyform/tilekernel/pkg/tiling"
)

const dominoYAML = `
lattice: square
region:
  width: 4
  height: 4
tiles:
  - cells: [[0, 0], [0, 1]]
seed: 7
`

func TestLoadFileConfigFromBytesRoundTripsToSolvableTiling(t *testing.T) {
	fc, err := tiling.LoadFileConfigFromBytes([]byte(dominoYAML))
	if err != nil {
		t.Fatal(err)
	}
	if fc.Lattice != "square" || fc.Region.Width != 4 || fc.Region.Height != 4 {
		t.Fatalf("unexpected parsed config: %+v", fc)
	}

	cfg, err := fc.ToConfig(satref.New(), nil)
	if err != nil {
		t.Fatal(err)
	}

	out, err := tiling.SolveTiling(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Solvable || len(out.Placements) != 8 {
		t.Fatalf("want a solvable 8-placement domino tiling, got solvable=%v placements=%d", out.Solvable, len(out.Placements))
	}
}

func TestValidateRejectsOutOfBoundsRegion(t *testing.T) {
	fc := &tiling.FileConfig{
		Lattice: "square",
		Region:  tiling.RegionCfg{Width: 0, Height: 4},
		Tiles:   []tiling.TileCfg{{Cells: [][2]int{{0, 0}}}},
	}
	if err := fc.Validate(); err == nil {
		t.Fatal("expected an error for a zero-width region")
	}
}

func TestValidateRejectsUnknownLattice(t *testing.T) {
	fc := &tiling.FileConfig{
		Lattice: "rhombus",
		Region:  tiling.RegionCfg{Width: 4, Height: 4},
		Tiles:   []tiling.TileCfg{{Cells: [][2]int{{0, 0}}}},
	}
	if err := fc.Validate(); err == nil {
		t.Fatal("expected an error for an unknown lattice kind")
	}
}

func TestValidateRejectsColorModeWithoutPalette(t *testing.T) {
	fc := &tiling.FileConfig{
		Lattice:  "square",
		Region:   tiling.RegionCfg{Width: 4, Height: 4},
		Tiles:    []tiling.TileCfg{{Cells: [][2]int{{0, 0}}}},
		EdgeMode: tiling.EdgeModeCfg{Kind: "color"},
	}
	if err := fc.Validate(); err == nil {
		t.Fatal("expected an error for color mode with no palette size")
	}
}

func TestRegionFromTileCellsEnforcesMinimumThree(t *testing.T) {
	got := tiling.RegionFromTileCells([][2]int{{0, 0}, {0, 1}})
	if got.Width != 3 || got.Height != 3 {
		t.Fatalf("want 3x3 minimum region, got %dx%d", got.Width, got.Height)
	}

	got = tiling.RegionFromTileCells([][2]int{{4, 5}, {2, 1}})
	if got.Width != 6 || got.Height != 5 {
		t.Fatalf("want 6x5 region derived from max coordinates, got %dx%d", got.Width, got.Height)
	}
}
