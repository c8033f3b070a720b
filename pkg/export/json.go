package export

import (
	"encoding/json"
	"os"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
)

// Document is the stable wire shape for a set of placements (spec.md
// §6.2). Field names are fixed by the spec and must not change.
type Document struct {
	GridWidth  int               `json:"gridWidth"`
	GridHeight int               `json:"gridHeight"`
	Lattice    string            `json:"lattice"`
	Placements []PlacementRecord `json:"placements"`
}

// PlacementRecord is one entry of Document.Placements.
type PlacementRecord struct {
	Index          int          `json:"index"`
	ID             int          `json:"id"`
	TransformIndex int          `json:"transformIndex"`
	Cells          []CellRecord `json:"cells"`
}

// CellRecord is one cell coordinate in wire form.
type CellRecord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// ExportPlacements serializes a tiling solution to the §6.2 wire format,
// indented for readability.
func ExportPlacements(kind lattice.Kind, width, height int, placements []placement.Placement) ([]byte, error) {
	doc := Document{
		GridWidth:  width,
		GridHeight: height,
		Lattice:    kind.String(),
		Placements: make([]PlacementRecord, len(placements)),
	}
	for i, p := range placements {
		cells := make([]CellRecord, len(p.Cells))
		for j, c := range p.Cells {
			cells[j] = CellRecord{Row: c.Row, Col: c.Col}
		}
		doc.Placements[i] = PlacementRecord{
			Index:          i,
			ID:             p.ID,
			TransformIndex: p.TransformIndex,
			Cells:          cells,
		}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportPlacementsCompact is ExportPlacements without indentation.
func ExportPlacementsCompact(kind lattice.Kind, width, height int, placements []placement.Placement) ([]byte, error) {
	data, err := ExportPlacements(kind, width, height, placements)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// SaveJSONToFile exports placements to a JSON file with indentation. The
// file is created with 0644 permissions.
func SaveJSONToFile(kind lattice.Kind, width, height int, placements []placement.Placement, filepath string) error {
	data, err := ExportPlacements(kind, width, height, placements)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath, data, 0644)
}

// ParseDocument decodes the §6.2 wire format back into a Document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}
