package tiling

import (
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tile"
)

// TileSpec is the raw description of one input tile, before validation and
// transform enumeration (spec.md §6.1 "tiles: list of Tile").
type TileSpec struct {
	Cells     []lattice.Cell
	EdgeMarks map[tile.CellEdge]bool
}

// Config is solve_tiling's conceptual config from spec.md §6.1.
type Config struct {
	Lattice   lattice.Kind
	Tiles     []TileSpec
	Region    Region
	EdgeMode  sat.EdgeMode
	SatSolver sat.SatSolver
	OnStats   func(numVars, numClauses int)
}

// Region mirrors placement.Region at the facade boundary so callers of this
// package need not import pkg/placement directly for the common case.
type Region struct {
	Width, Height int
}

// MazeConfig is generate_maze's conceptual config from spec.md §6.1.
type MazeConfig struct {
	Lattice    lattice.Kind
	Region     Region
	Placements []placement.Placement
	Seed       uint64
}
