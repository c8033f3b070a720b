// Package placement enumerates, for a lattice and a set of normalized tile
// variants, every (variant, translation) whose cells land entirely inside a
// target W×H region (spec.md §4.3).
package placement
