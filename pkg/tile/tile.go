// Package tile defines the Tile entity (spec.md §3.2): an immutable,
// connected set of lattice cells with optional per-cell-edge marks, plus
// the construction-time validation that rejects malformed input eagerly.
package tile

import (
	"fmt"

	"github.com/polyform/tilekernel/pkg/lattice"
)

// CellEdge identifies one directed edge of one cell within a tile's own
// local coordinate space (before any placement translation).
type CellEdge struct {
	Cell lattice.Cell
	Dir  int
}

// Tile is an ordered, immutable list of cells forming a single connected
// polyform, plus optional boolean marks on individual cell edges used by
// the edge-matching/edge-coloring SAT encoding modes (spec.md §4.4).
type Tile struct {
	cells     []lattice.Cell
	edgeMarks map[CellEdge]bool
}

// New validates and constructs a Tile. Cells must be non-empty, free of
// duplicates, and connected under l's adjacency relation; otherwise New
// returns an *InvalidTileError.
func New(l lattice.Lattice, cells []lattice.Cell, edgeMarks map[CellEdge]bool) (*Tile, error) {
	if len(cells) == 0 {
		return nil, &InvalidTileError{Reason: "tile has no cells"}
	}

	seen := make(map[lattice.Cell]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return nil, &InvalidTileError{Reason: fmt.Sprintf("duplicate cell %v", c)}
		}
		seen[c] = true
	}

	if !isConnected(l, cells, seen) {
		return nil, &InvalidTileError{Reason: "cells are not connected"}
	}

	marks := make(map[CellEdge]bool, len(edgeMarks))
	for k, v := range edgeMarks {
		if !seen[k.Cell] {
			return nil, &InvalidTileError{Reason: fmt.Sprintf("edge mark references cell %v not in tile", k.Cell)}
		}
		if k.Dir < 0 || k.Dir >= l.DirectionCount() {
			return nil, &InvalidTileError{Reason: fmt.Sprintf("edge mark direction %d out of range", k.Dir)}
		}
		marks[k] = v
	}

	out := make([]lattice.Cell, len(cells))
	copy(out, cells)

	return &Tile{cells: out, edgeMarks: marks}, nil
}

func isConnected(l lattice.Lattice, cells []lattice.Cell, set map[lattice.Cell]bool) bool {
	if len(cells) == 1 {
		return true
	}
	visited := make(map[lattice.Cell]bool, len(cells))
	queue := []lattice.Cell{cells[0]}
	visited[cells[0]] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range l.Neighbors(cur) {
			if set[n.Cell] && !visited[n.Cell] {
				visited[n.Cell] = true
				queue = append(queue, n.Cell)
			}
		}
	}
	return len(visited) == len(cells)
}

// Cells returns the tile's cells in construction order. The returned slice
// is owned by the caller; Tile never mutates it after New.
func (t *Tile) Cells() []lattice.Cell {
	out := make([]lattice.Cell, len(t.cells))
	copy(out, t.cells)
	return out
}

// EdgeMark reports the mark at (cell, dir), defaulting to false when unset.
func (t *Tile) EdgeMark(c lattice.Cell, dir int) bool {
	return t.edgeMarks[CellEdge{Cell: c, Dir: dir}]
}

// EdgeMarks returns a copy of the full mark set.
func (t *Tile) EdgeMarks() map[CellEdge]bool {
	out := make(map[CellEdge]bool, len(t.edgeMarks))
	for k, v := range t.edgeMarks {
		out[k] = v
	}
	return out
}

// InvalidTileError reports why a candidate tile failed construction
// validation (spec.md §4.4 failure taxonomy: InvalidTile).
type InvalidTileError struct {
	Reason string
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("tile: invalid tile: %s", e.Reason)
}
