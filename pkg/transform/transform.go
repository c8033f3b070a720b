package transform

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/tile"
)

// Variant is the image of a tile under one transform, normalized to a
// canonical position (spec.md §3.2). TransformIndex is the lowest canonical
// index among all transforms that produce this shape, per the dedup rule
// in spec.md §4.2 step 4.
type Variant struct {
	TransformIndex int
	Cells          []lattice.Cell // sorted by (Row, Col), min(Row)=0; min(Col)=0, or 1 on the triangle lattice when parity needs it
	EdgeMarks      map[tile.CellEdge]bool
}

// Height and Width report the variant's bounding box, used by the
// placement enumerator for translation bounds (spec.md §4.3).
func (v Variant) Height() int {
	max := 0
	for _, c := range v.Cells {
		if c.Row > max {
			max = c.Row
		}
	}
	return max + 1
}

func (v Variant) Width() int {
	max := 0
	for _, c := range v.Cells {
		if c.Col > max {
			max = c.Col
		}
	}
	return max + 1
}

// Enumerate returns the deduplicated list of normalized variants of t under
// l's symmetry group. The list is always non-empty and always contains the
// identity transform (index 0).
func Enumerate(l lattice.Lattice, t *tile.Tile) []Variant {
	k := l.TransformCount()
	variants := make([]Variant, 0, k)
	seen := make(map[string]int) // canonical key -> index into variants

	for idx := 0; idx < k; idx++ {
		v := apply(l, t, idx)
		key := canonicalKey(v.Cells)
		if existing, ok := seen[key]; ok {
			// Keep the lowest canonical index already recorded — nothing
			// to do, since idx is only increasing.
			_ = existing
			continue
		}
		seen[key] = len(variants)
		variants = append(variants, v)
	}

	return variants
}

// apply transforms every cell and edge mark of t by transformIndex, then
// normalizes the result per spec.md §4.2 step 3.
func apply(l lattice.Lattice, t *tile.Tile, transformIndex int) Variant {
	perm := l.EdgePermutation(transformIndex)

	cells := t.Cells()
	transformedCells := make([]lattice.Cell, len(cells))
	for i, c := range cells {
		transformedCells[i] = l.ApplyCellTransform(transformIndex, c)
	}

	marks := make(map[tile.CellEdge]bool)
	for ce, mark := range t.EdgeMarks() {
		newCell := l.ApplyCellTransform(transformIndex, ce.Cell)
		newDir := perm[ce.Dir]
		marks[tile.CellEdge{Cell: newCell, Dir: newDir}] = mark
	}

	minRow, minCol := transformedCells[0].Row, transformedCells[0].Col
	for _, c := range transformedCells[1:] {
		if c.Row < minRow {
			minRow = c.Row
		}
		if c.Col < minCol {
			minCol = c.Col
		}
	}

	dRow, dCol := -minRow, -minCol
	if l.Kind() == lattice.Triangle && (dRow+dCol)%2 != 0 {
		// Preserve triangle up/down parity: a translation by an odd
		// (dRow+dCol) flips every cell's parity (spec.md §4.2 step 3).
		dCol++
	}

	normalized := make([]lattice.Cell, len(transformedCells))
	for i, c := range transformedCells {
		normalized[i] = lattice.Cell{Row: c.Row + dRow, Col: c.Col + dCol}
	}
	sort.Slice(normalized, func(i, j int) bool {
		if normalized[i].Row != normalized[j].Row {
			return normalized[i].Row < normalized[j].Row
		}
		return normalized[i].Col < normalized[j].Col
	})

	normalizedMarks := make(map[tile.CellEdge]bool, len(marks))
	for ce, mark := range marks {
		shifted := lattice.Cell{Row: ce.Cell.Row + dRow, Col: ce.Cell.Col + dCol}
		normalizedMarks[tile.CellEdge{Cell: shifted, Dir: ce.Dir}] = mark
	}

	return Variant{
		TransformIndex: transformIndex,
		Cells:          normalized,
		EdgeMarks:      normalizedMarks,
	}
}

// canonicalKey packs a sorted cell list into a delimiter-free byte key
// (design notes: avoid string-concatenation keys, which risk delimiter
// collisions). Cells must already be sorted.
func canonicalKey(cells []lattice.Cell) string {
	var buf bytes.Buffer
	tmp := make([]byte, binary.MaxVarintLen64)
	for _, c := range cells {
		n := binary.PutVarint(tmp, int64(c.Row))
		buf.Write(tmp[:n])
		n = binary.PutVarint(tmp, int64(c.Col))
		buf.Write(tmp[:n])
	}
	return buf.String()
}
