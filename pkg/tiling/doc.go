// Package tiling is the kernel's API facade (spec.md §2 component A,
// §6.1): SolveTiling and GenerateMaze, with explicit configuration structs,
// an optional progress callback, and cooperative cancellation via
// context.Context.
package tiling
