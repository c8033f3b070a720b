package export

import "encoding/json"

// ExportTileCells serializes a tile's cells as a bare {row,col} array
// (spec.md §6.2 "Tile coordinate import/export uses a bare array of
// {row, col} pairs").
func ExportTileCells(cells []CellRecord) ([]byte, error) {
	return json.Marshal(cells)
}

// ParseTileCells parses a bare {row,col} array back into cell records.
func ParseTileCells(data []byte) ([]CellRecord, error) {
	var cells []CellRecord
	if err := json.Unmarshal(data, &cells); err != nil {
		return nil, err
	}
	return cells, nil
}
