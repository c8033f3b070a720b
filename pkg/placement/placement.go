package placement

import (
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/tile"
	"github.com/polyform/tilekernel/pkg/transform"
)

// Placement is a variant translated to a specific offset, with its global
// cell list precomputed (spec.md §3.2).
type Placement struct {
	ID             int
	TileIndex      int // index into the caller's input tile list
	VariantIndex   int // index into that tile's variant list
	TransformIndex int
	OffsetRow      int
	OffsetCol      int
	Cells          []lattice.Cell // global coordinates
}

// GlobalEdgeMarks translates the placement's source variant's edge marks
// into global (cell, dir) coordinates.
func (p Placement) GlobalEdgeMarks(v transform.Variant) map[tile.CellEdge]bool {
	out := make(map[tile.CellEdge]bool, len(v.EdgeMarks))
	for ce, mark := range v.EdgeMarks {
		out[tile.CellEdge{
			Cell: lattice.Cell{Row: ce.Cell.Row + p.OffsetRow, Col: ce.Cell.Col + p.OffsetCol},
			Dir:  ce.Dir,
		}] = mark
	}
	return out
}

// Region is the target rectangular area, in inner-cell coordinates
// 0 <= row < Height, 0 <= col < Width (spec.md §4.3).
type Region struct {
	Width  int
	Height int
}

// TileVariants pairs a tile's input-order index with its enumerated
// variants, preserving the ordering guarantee in spec.md §5: placement IDs
// are assigned outer-loop-over-tiles (input order), inner-loop-over-
// transforms (index order), then (offsetRow, offsetCol) in row-major order.
type TileVariants struct {
	TileIndex int
	Variants  []transform.Variant
}

// Enumerate produces every valid placement for every (tile, variant) pair,
// plus, for every inner cell, the list of placement IDs that cover it
// (needed by the SAT encoder's coverage clauses and by §4.3's "no covering
// placement" failure detection).
func Enumerate(l lattice.Lattice, region Region, tiles []TileVariants) (Result, error) {
	if region.Width < 1 || region.Height < 1 || region.Width*region.Height > 2500 {
		return Result{}, &InvalidRegionError{Width: region.Width, Height: region.Height}
	}

	cellCoverage := make(map[lattice.Cell][]int)
	var placements []Placement
	nextID := 0

	for _, tv := range tiles {
		for variantIdx, v := range tv.Variants {
			minOffRow := -(v.Height() - 1)
			maxOffRow := region.Height - 1
			minOffCol := -(v.Width() - 1)
			maxOffCol := region.Width - 1

			for offRow := minOffRow; offRow <= maxOffRow; offRow++ {
				for offCol := minOffCol; offCol <= maxOffCol; offCol++ {
					if l.Kind() == lattice.Triangle && (offRow+offCol)%2 != 0 {
						// Parity preservation (spec.md §4.3): offsets that
						// would flip up/down orientation are not valid
						// placements.
						continue
					}

					cells := make([]lattice.Cell, len(v.Cells))
					inside := true
					for i, c := range v.Cells {
						gc := lattice.Cell{Row: c.Row + offRow, Col: c.Col + offCol}
						if gc.Row < 0 || gc.Row >= region.Height || gc.Col < 0 || gc.Col >= region.Width {
							inside = false
							break
						}
						cells[i] = gc
					}
					if !inside {
						continue
					}

					p := Placement{
						ID:             nextID,
						TileIndex:      tv.TileIndex,
						VariantIndex:   variantIdx,
						TransformIndex: v.TransformIndex,
						OffsetRow:      offRow,
						OffsetCol:      offCol,
						Cells:          cells,
					}
					nextID++
					placements = append(placements, p)
					for _, c := range cells {
						cellCoverage[c] = append(cellCoverage[c], p.ID)
					}
				}
			}
		}
	}

	var uncovered []lattice.Cell
	for row := 0; row < region.Height; row++ {
		for col := 0; col < region.Width; col++ {
			c := lattice.Cell{Row: row, Col: col}
			if len(cellCoverage[c]) == 0 {
				uncovered = append(uncovered, c)
			}
		}
	}

	return Result{
		Region:       region,
		Placements:   placements,
		CellCoverage: cellCoverage,
		Uncovered:    uncovered,
	}, nil
}

// Result is the full output of Enumerate.
type Result struct {
	Region       Region
	Placements   []Placement
	CellCoverage map[lattice.Cell][]int // cell -> placement IDs covering it
	Uncovered    []lattice.Cell         // inner cells with zero covering placements
}

// InvalidRegionError reports a region that violates spec.md §4.4's bounds
// (1 <= W,H and W*H <= 2500).
type InvalidRegionError struct {
	Width, Height int
}

func (e *InvalidRegionError) Error() string {
	return "placement: invalid region"
}
