// Package lattice defines the three coordinate systems the tiling kernel
// operates on — square, hex (pointy-top, odd-r offset), and triangle — behind
// a single capability interface.
//
// Each lattice exposes deterministic neighbor ordering, shared-edge lookup,
// and the edge-index permutation induced by rotating or reflecting the
// lattice's symmetry group. Transform and placement logic elsewhere in the
// kernel is written against the Lattice interface; the only kind-specific
// rule outside this package is the triangle parity check in pkg/transform
// normalization and pkg/placement offsets.
//
// Cells are always integer-coordinate pairs (Row, Col). Pixel geometry is
// out of scope; nothing in this package or its callers computes screen
// coordinates.
package lattice
