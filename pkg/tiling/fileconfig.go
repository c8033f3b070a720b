package tiling

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tile"
)

// FileConfig is the YAML-serializable form of Config: plain structs with
// yaml/json tags, checked by FileConfig.Validate. It omits SatSolver,
// which is a runtime capability the caller supplies separately (spec.md
// §6.2 "no persisted state inside the kernel" — only inputs are
// serialized, never the solver).
type FileConfig struct {
	// Lattice is one of "square", "hex", "triangle".
	Lattice string `yaml:"lattice" json:"lattice"`

	// Region is the target rectangular area.
	Region RegionCfg `yaml:"region" json:"region"`

	// Tiles lists the input polyform tiles.
	Tiles []TileCfg `yaml:"tiles" json:"tiles"`

	// EdgeMode configures optional edge-matching/coloring. Omit for Off.
	EdgeMode EdgeModeCfg `yaml:"edgeMode,omitempty" json:"edgeMode,omitempty"`

	// Seed drives generate_maze's spanning-tree selection. Unused by
	// solve_tiling itself.
	Seed uint64 `yaml:"seed" json:"seed"`
}

// RegionCfg is the target W x H region.
type RegionCfg struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// TileCfg is one input tile: a bare list of (row, col) pairs (spec.md §6.2
// "Tile coordinate import/export uses a bare array of {row, col} pairs")
// plus optional per-cell-edge marks.
type TileCfg struct {
	Cells     [][2]int      `yaml:"cells" json:"cells"`
	EdgeMarks []EdgeMarkCfg `yaml:"edgeMarks,omitempty" json:"edgeMarks,omitempty"`
}

// EdgeMarkCfg marks one directed edge of one cell within a TileCfg's local
// coordinate space.
type EdgeMarkCfg struct {
	Row int `yaml:"row" json:"row"`
	Col int `yaml:"col" json:"col"`
	Dir int `yaml:"dir" json:"dir"`
}

// EdgeModeCfg is the YAML form of sat.EdgeMode.
type EdgeModeCfg struct {
	// Kind is one of "off", "match", "color". Defaults to "off".
	Kind        string `yaml:"kind,omitempty" json:"kind,omitempty"`
	PaletteSize int    `yaml:"paletteSize,omitempty" json:"paletteSize,omitempty"`
}

// LoadFileConfigFromFile reads and validates a YAML FileConfig.
func LoadFileConfigFromFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tiling: reading config file: %w", err)
	}
	return LoadFileConfigFromBytes(data)
}

// LoadFileConfigFromBytes parses and validates a YAML FileConfig from bytes.
func LoadFileConfigFromBytes(data []byte) (*FileConfig, error) {
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("tiling: parsing YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("tiling: validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks structural constraints FileConfig can verify without a
// lattice instance (region bounds, at least one tile, valid edge mode
// name). Deeper validation (tile connectivity, edge-mark direction range)
// happens in tile.New when SolveTiling runs (ToConfig does not call it),
// per spec.md §7's "validated eagerly at API entry" rule.
func (c *FileConfig) Validate() error {
	if _, err := lattice.ParseKind(c.Lattice); err != nil {
		return err
	}
	if c.Region.Width < 1 || c.Region.Height < 1 || c.Region.Width*c.Region.Height > 2500 {
		return fmt.Errorf("region %dx%d out of bounds (1 <= w,h and w*h <= 2500)", c.Region.Width, c.Region.Height)
	}
	if len(c.Tiles) == 0 {
		return fmt.Errorf("at least one tile must be specified")
	}
	for i, t := range c.Tiles {
		if len(t.Cells) == 0 {
			return fmt.Errorf("tile[%d]: no cells", i)
		}
	}
	switch c.EdgeMode.Kind {
	case "", "off", "match":
	case "color":
		if c.EdgeMode.PaletteSize < 1 {
			return fmt.Errorf("edgeMode: color mode requires paletteSize >= 1")
		}
	default:
		return fmt.Errorf("edgeMode: unknown kind %q", c.EdgeMode.Kind)
	}
	return nil
}

// ToConfig converts the file form into a runtime Config. solver and
// onStats are supplied by the caller since they are not serializable.
func (c *FileConfig) ToConfig(solver sat.SatSolver, onStats func(int, int)) (Config, error) {
	kind, err := lattice.ParseKind(c.Lattice)
	if err != nil {
		return Config{}, err
	}

	tiles := make([]TileSpec, len(c.Tiles))
	for i, tc := range c.Tiles {
		cells := make([]lattice.Cell, len(tc.Cells))
		for j, rc := range tc.Cells {
			cells[j] = lattice.Cell{Row: rc[0], Col: rc[1]}
		}
		var marks map[tile.CellEdge]bool
		if len(tc.EdgeMarks) > 0 {
			marks = make(map[tile.CellEdge]bool, len(tc.EdgeMarks))
			for _, m := range tc.EdgeMarks {
				marks[tile.CellEdge{Cell: lattice.Cell{Row: m.Row, Col: m.Col}, Dir: m.Dir}] = true
			}
		}
		tiles[i] = TileSpec{Cells: cells, EdgeMarks: marks}
	}

	mode := sat.EdgeMode{Kind: sat.EdgeOff}
	switch c.EdgeMode.Kind {
	case "match":
		mode = sat.EdgeMode{Kind: sat.EdgeMatch}
	case "color":
		mode = sat.EdgeMode{Kind: sat.EdgeColor, PaletteSize: c.EdgeMode.PaletteSize}
	}

	return Config{
		Lattice:   kind,
		Tiles:     tiles,
		Region:    Region{Width: c.Region.Width, Height: c.Region.Height},
		EdgeMode:  mode,
		SatSolver: solver,
		OnStats:   onStats,
	}, nil
}

// RegionFromTileCells derives region dimensions for a bare {row,col} tile
// import, per spec.md §6.2: max(maxCol+1, 3) by max(maxRow+1, 3).
func RegionFromTileCells(cells [][2]int) RegionCfg {
	maxRow, maxCol := 0, 0
	for _, c := range cells {
		if c[0] > maxRow {
			maxRow = c[0]
		}
		if c[1] > maxCol {
			maxCol = c[1]
		}
	}
	width := maxCol + 1
	if width < 3 {
		width = 3
	}
	height := maxRow + 1
	if height < 3 {
		height = 3
	}
	return RegionCfg{Width: width, Height: height}
}
