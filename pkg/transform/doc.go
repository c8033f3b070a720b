// Package transform enumerates the distinct rigid-motion images of a tile
// on a given lattice (spec.md §4.2): up to K canonical rotations/reflections,
// normalized to a stable position and deduplicated so that a given
// transform_index always means the same variant across sessions.
package transform
