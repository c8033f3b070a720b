// Package maze builds a planar maze from a solved tiling (spec.md §2
// component M, §4.5): the undirected graph of placements sharing a lattice
// edge, a random spanning tree over that graph, and the wall openings and
// remaining walls the tree induces.
package maze
