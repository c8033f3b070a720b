package sat

import (
	"fmt"
	"sort"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/tile"
)

// EdgeModeKind selects how (or whether) the encoder enforces edge-matching
// constraints between adjacent placements (spec.md §4.4 items 4-5).
type EdgeModeKind int

const (
	EdgeOff EdgeModeKind = iota
	EdgeMatch
	EdgeColor
)

// EdgeMode configures the optional edge-matching/coloring encoding.
// PaletteSize is only meaningful when Kind == EdgeColor.
type EdgeMode struct {
	Kind        EdgeModeKind
	PaletteSize int
}

// VariantLookup resolves a placement back to the normalized variant it was
// built from, needed to read the variant's edge marks.
type VariantLookup func(p placement.Placement) (marks map[tile.CellEdge]bool)

// Config bundles everything Encode needs beyond the SatSolver itself.
type Config struct {
	Lattice  lattice.Lattice
	Region   placement.Region
	Result   placement.Result
	Mode     EdgeMode
	Lookup   VariantLookup // required when Mode.Kind != EdgeOff
	OnStats  func(numVars, numClauses int)
}

// Outcome is the decoded result of running the encoder and solver.
type Outcome struct {
	Solvable          bool
	Placements        []int // placement IDs in the solution, sorted
	TileTypeCounts    map[int]int
	NumVariables      int
	NumClauses        int
}

// ModelInconsistentError indicates the solver reported SAT but the decoded
// placements do not form a valid exact cover — an encoder bug, not a
// retriable condition (spec.md §4.4, §7).
type ModelInconsistentError struct {
	Reason string
}

func (e *ModelInconsistentError) Error() string {
	return fmt.Sprintf("sat: model inconsistent: %s", e.Reason)
}

// Encode builds the CNF instance for cfg, invokes cfg's solver, and decodes
// the result. It never mutates cfg.Result.
func Encode(solver SatSolver, cfg Config) (Outcome, error) {
	placementVar := make(map[int]int, len(cfg.Result.Placements))
	for _, p := range cfg.Result.Placements {
		placementVar[p.ID] = solver.NewVariable()
	}

	// Coverage: at-least-one per inner cell.
	for row := 0; row < cfg.Region.Height; row++ {
		for col := 0; col < cfg.Region.Width; col++ {
			c := lattice.Cell{Row: row, Col: col}
			covering := cfg.Result.CellCoverage[c]
			clause := make([]int, len(covering))
			for i, pid := range covering {
				clause[i] = placementVar[pid]
			}
			solver.AddClause(clause) // empty slice if uncovered: immediate UNSAT
		}
	}

	// Non-overlap: at-most-one per cell.
	for _, covering := range cfg.Result.CellCoverage {
		if len(covering) < 2 {
			continue
		}
		lits := make([]int, len(covering))
		for i, pid := range covering {
			lits[i] = placementVar[pid]
		}
		addAtMostOne(solver, lits)
	}

	if cfg.Mode.Kind != EdgeOff {
		if cfg.Lookup == nil {
			return Outcome{}, fmt.Errorf("sat: edge mode %v requires a VariantLookup", cfg.Mode.Kind)
		}
		encodeEdgeConstraints(solver, cfg, placementVar)
	}

	if cfg.OnStats != nil {
		cfg.OnStats(solver.NumVariables(), solver.NumClauses())
	}

	result, err := solver.Solve()
	if err != nil {
		return Outcome{}, err
	}

	if result.Outcome != Sat {
		return Outcome{
			Solvable:     false,
			NumVariables: solver.NumVariables(),
			NumClauses:   solver.NumClauses(),
		}, nil
	}

	out, err := decode(cfg, placementVar, result)
	if err != nil {
		return Outcome{}, err
	}
	out.NumVariables = solver.NumVariables()
	out.NumClauses = solver.NumClauses()
	return out, nil
}

// encodeEdgeConstraints implements spec.md §4.4 items 4-5: for every pair
// of neighboring inner cells, any pair of candidate placements (one
// covering each cell, and not the same placement) whose marks at that edge
// disagree are forbidden from both being selected. This is logically
// equivalent to introducing a shared per-edge mark/color variable and unit
// implications (the formulation spec.md describes) but avoids allocating
// extra variables for edges with no possible mismatch — see DESIGN.md.
func encodeEdgeConstraints(solver SatSolver, cfg Config, placementVar map[int]int) {
	globalMarks := make(map[int]map[tile.CellEdge]int) // placement ID -> cell-edge -> color
	for _, p := range cfg.Result.Placements {
		marks := cfg.Lookup(p)
		gm := make(map[tile.CellEdge]int, len(marks))
		for ce, marked := range marks {
			color := 0
			if marked {
				color = 1
			}
			gm[tile.CellEdge{
				Cell: lattice.Cell{Row: ce.Cell.Row + p.OffsetRow, Col: ce.Cell.Col + p.OffsetCol},
				Dir:  ce.Dir,
			}] = color
		}
		globalMarks[p.ID] = gm
	}

	for row := 0; row < cfg.Region.Height; row++ {
		for col := 0; col < cfg.Region.Width; col++ {
			c1 := lattice.Cell{Row: row, Col: col}
			for _, n := range cfg.Lattice.Neighbors(c1) {
				c2 := n.Cell
				if c2.Row < 0 || c2.Row >= cfg.Region.Height || c2.Col < 0 || c2.Col >= cfg.Region.Width {
					continue
				}
				// Only process each undirected pair once.
				if !(c1.Row < c2.Row || (c1.Row == c2.Row && c1.Col < c2.Col)) {
					continue
				}
				dir1, dir2, ok := cfg.Lattice.SharedEdge(c1, c2)
				if !ok {
					continue
				}
				forbidMismatchedPairs(solver, cfg, placementVar, globalMarks, c1, dir1, c2, dir2)
			}
		}
	}
}

func forbidMismatchedPairs(solver SatSolver, cfg Config, placementVar map[int]int,
	globalMarks map[int]map[tile.CellEdge]int, c1 lattice.Cell, dir1 int, c2 lattice.Cell, dir2 int) {
	for _, p1id := range cfg.Result.CellCoverage[c1] {
		m1, ok1 := globalMarks[p1id][tile.CellEdge{Cell: c1, Dir: dir1}]
		for _, p2id := range cfg.Result.CellCoverage[c2] {
			if p1id == p2id {
				continue
			}
			m2, ok2 := globalMarks[p2id][tile.CellEdge{Cell: c2, Dir: dir2}]
			v1, v2 := 0, 0
			if ok1 {
				v1 = m1
			}
			if ok2 {
				v2 = m2
			}
			if cfg.Mode.Kind == EdgeColor && (v1 >= cfg.Mode.PaletteSize || v2 >= cfg.Mode.PaletteSize) {
				continue
			}
			if v1 != v2 {
				solver.AddClause([]int{-placementVar[p1id], -placementVar[p2id]})
			}
		}
	}
}

func decode(cfg Config, placementVar map[int]int, result SolveResult) (Outcome, error) {
	var chosen []int
	for _, p := range cfg.Result.Placements {
		if result.Model[placementVar[p.ID]-1] {
			chosen = append(chosen, p.ID)
		}
	}
	sort.Ints(chosen)

	placementByID := make(map[int]placement.Placement, len(cfg.Result.Placements))
	for _, p := range cfg.Result.Placements {
		placementByID[p.ID] = p
	}

	covered := make(map[lattice.Cell]int)
	tileCounts := make(map[int]int)
	for _, pid := range chosen {
		p := placementByID[pid]
		tileCounts[p.TileIndex]++
		for _, c := range p.Cells {
			covered[c]++
		}
	}

	for row := 0; row < cfg.Region.Height; row++ {
		for col := 0; col < cfg.Region.Width; col++ {
			c := lattice.Cell{Row: row, Col: col}
			if covered[c] != 1 {
				return Outcome{}, &ModelInconsistentError{
					Reason: fmt.Sprintf("cell %v covered %d times, want exactly 1", c, covered[c]),
				}
			}
		}
	}

	return Outcome{
		Solvable:       true,
		Placements:     chosen,
		TileTypeCounts: tileCounts,
	}, nil
}
