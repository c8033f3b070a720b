package tiling

import (
	"context"
	"fmt"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tile"
	"github.com/polyform/tilekernel/pkg/tilingerr"
	"github.com/polyform/tilekernel/pkg/transform"
)

// SolveTiling decides whether cfg.Region admits an exact tiling by cfg.Tiles
// on cfg.Lattice, consuming cfg.SatSolver for the decision (spec.md §6.1).
//
// Suspension points match spec.md §5: the kernel checks ctx after transform
// enumeration, after placement enumeration, and after the solver returns.
func SolveTiling(ctx context.Context, cfg Config) (TilingOutcome, error) {
	if cfg.SatSolver == nil {
		return TilingOutcome{}, fmt.Errorf("tiling: SolveTiling requires a non-nil SatSolver")
	}

	l, err := lattice.For(cfg.Lattice)
	if err != nil {
		return TilingOutcome{}, tilingerr.Wrap(tilingerr.KindLatticeInvariant, err)
	}

	tileVariants := make([]placement.TileVariants, 0, len(cfg.Tiles))
	variantsByTile := make(map[int][]transform.Variant, len(cfg.Tiles))
	for i, spec := range cfg.Tiles {
		t, err := tile.New(l, spec.Cells, spec.EdgeMarks)
		if err != nil {
			return TilingOutcome{}, tilingerr.Wrap(tilingerr.KindInvalidTile, err)
		}
		variants := transform.Enumerate(l, t)
		tileVariants = append(tileVariants, placement.TileVariants{TileIndex: i, Variants: variants})
		variantsByTile[i] = variants
	}

	if err := checkCancelled(ctx); err != nil {
		return TilingOutcome{}, err
	}

	region := placement.Region{Width: cfg.Region.Width, Height: cfg.Region.Height}
	result, err := placement.Enumerate(l, region, tileVariants)
	if err != nil {
		return TilingOutcome{}, tilingerr.Wrap(tilingerr.KindInvalidRegion, err)
	}

	if err := checkCancelled(ctx); err != nil {
		return TilingOutcome{}, err
	}

	if cfg.EdgeMode.Kind == sat.EdgeColor {
		if err := validateEdgePaletteFeasible(region, result, variantsByTile, cfg.EdgeMode.PaletteSize); err != nil {
			return TilingOutcome{}, tilingerr.Wrap(tilingerr.KindInvalidRegion, err)
		}
	}

	lookup := func(p placement.Placement) map[tile.CellEdge]bool {
		return variantsByTile[p.TileIndex][p.VariantIndex].EdgeMarks
	}

	encodeCfg := sat.Config{
		Lattice: l,
		Region:  region,
		Result:  result,
		Mode:    cfg.EdgeMode,
		OnStats: cfg.OnStats,
	}
	if cfg.EdgeMode.Kind != sat.EdgeOff {
		encodeCfg.Lookup = lookup
	}

	outcome, err := sat.Encode(cfg.SatSolver, encodeCfg)
	if err != nil {
		return TilingOutcome{}, classifySatError(err)
	}

	if err := checkCancelled(ctx); err != nil {
		return TilingOutcome{}, err
	}

	if !outcome.Solvable {
		return TilingOutcome{
			Solvable: false,
			Stats:    Stats{NumVariables: outcome.NumVariables, NumClauses: outcome.NumClauses},
		}, nil
	}

	placementByID := make(map[int]placement.Placement, len(result.Placements))
	for _, p := range result.Placements {
		placementByID[p.ID] = p
	}
	solved := make([]placement.Placement, len(outcome.Placements))
	for i, id := range outcome.Placements {
		solved[i] = placementByID[id]
	}

	return TilingOutcome{
		Solvable:       true,
		Placements:     solved,
		TileTypeCounts: outcome.TileTypeCounts,
		Stats:          Stats{NumVariables: outcome.NumVariables, NumClauses: outcome.NumClauses},
	}, nil
}

func classifySatError(err error) error {
	if _, ok := err.(*sat.ModelInconsistentError); ok {
		return tilingerr.Wrap(tilingerr.KindModelInconsistent, err)
	}
	if _, ok := err.(*sat.SolverError); ok {
		return tilingerr.Wrap(tilingerr.KindSolverError, err)
	}
	return err
}

func checkCancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return tilingerr.Wrap(tilingerr.KindCancelled, ctx.Err())
	default:
		return nil
	}
}

// validateEdgePaletteFeasible rejects an EdgeColor config eagerly when the
// palette size is below 1, or when any candidate placement covering an
// inner cell carries a marked edge (color 1) that a palette of that size
// cannot hold (SPEC_FULL.md §D item 2). It does not look at which cells are
// adjacent or whether another placement could cover the same cell.
func validateEdgePaletteFeasible(region placement.Region, result placement.Result,
	variantsByTile map[int][]transform.Variant, paletteSize int) error {
	if paletteSize < 1 {
		return fmt.Errorf("tiling: edge palette size must be >= 1, got %d", paletteSize)
	}

	maxColor := func(p placement.Placement) int {
		max := 0
		for _, mark := range variantsByTile[p.TileIndex][p.VariantIndex].EdgeMarks {
			if mark && max < 1 {
				max = 1
			}
		}
		return max
	}

	placementByID := make(map[int]placement.Placement, len(result.Placements))
	for _, p := range result.Placements {
		placementByID[p.ID] = p
	}

	for row := 0; row < region.Height; row++ {
		for col := 0; col < region.Width; col++ {
			c := lattice.Cell{Row: row, Col: col}
			for _, pid := range result.CellCoverage[c] {
				p := placementByID[pid]
				if maxColor(p) >= paletteSize {
					return fmt.Errorf("tiling: placement %d at cell %v requires a color outside the configured palette of size %d", pid, c, paletteSize)
				}
			}
		}
	}
	return nil
}
