package maze

import (
	"fmt"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/rng"
)

// Build converts a solved tiling into a maze (spec.md §4.5). seed drives
// both the spanning-tree edge weighting and the per-tree-edge wall-opening
// choice. These use two separate deterministic streams derived from seed
// ("maze_spanning_tree" and "maze_wall_opening"), not one shared stream.
func Build(l lattice.Lattice, region placement.Region, placements []placement.Placement, seed uint64) (Maze, error) {
	pairs, boundary := adjacency(l, region, placements)

	ids := make([]int, len(placements))
	for i, p := range placements {
		ids[i] = p.ID
	}

	tree, err := spanningTree(ids, pairs, seed)
	if err != nil {
		return Maze{}, err
	}

	openingRNG := rng.NewRNG(seed, "maze_wall_opening", nil)
	opened := make(map[pairKey]int, len(tree)) // pairKey -> chosen index into pairs[key]
	treeEdges := make([][2]int, len(tree))
	for i, k := range tree {
		candidates := pairs[k]
		if len(candidates) == 0 {
			return Maze{}, fmt.Errorf("maze: spanning tree edge (%d,%d) has no shared lattice edges", k.A, k.B)
		}
		opened[k] = openingRNG.Intn(len(candidates))
		treeEdges[i] = [2]int{k.A, k.B}
	}

	var openings, walls []Edge
	for k, candidates := range pairs {
		chosen, isTree := opened[k]
		for i, e := range candidates {
			if isTree && i == chosen {
				openings = append(openings, e)
			} else {
				walls = append(walls, e)
			}
		}
	}

	return Maze{
		Openings:      openings,
		Walls:         walls,
		BoundaryWalls: boundary,
		TreeEdges:     treeEdges,
	}, nil
}
