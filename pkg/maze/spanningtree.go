package maze

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/prim_kruskal"

	"github.com/polyform/tilekernel/pkg/rng"
)

// spanningTree computes a random spanning tree of the placement-adjacency
// graph using Kruskal's algorithm over randomly shuffled edge weights; the
// resulting distribution over spanning trees is not uniform in general
// (spec.md §4.5 step 2: "Kruskal with randomly-shuffled edges is also
// acceptable"). placementIDs must list every node that should appear in the
// graph, including isolated ones (a region tiled by a single placement).
func spanningTree(placementIDs []int, pairs map[pairKey][]Edge, seed uint64) ([]pairKey, error) {
	g := core.NewGraph(core.WithWeighted(), core.WithDirected(false))
	for _, id := range placementIDs {
		if err := g.AddVertex(strconv.Itoa(id)); err != nil {
			return nil, fmt.Errorf("maze: building adjacency graph: %w", err)
		}
	}

	weightRNG := rng.NewRNG(seed, "maze_spanning_tree", nil)
	// Deterministic edge ordering: sorted pair keys, so the random weights
	// assigned to each edge do not depend on Go's map iteration order.
	keys := sortedPairKeys(pairs)
	for _, k := range keys {
		weight := int64(weightRNG.IntRange(1, 1<<30))
		if _, err := g.AddEdge(strconv.Itoa(k.A), strconv.Itoa(k.B), weight); err != nil {
			return nil, fmt.Errorf("maze: building adjacency graph: %w", err)
		}
	}

	if len(placementIDs) <= 1 {
		return nil, nil
	}

	mst, _, err := prim_kruskal.Kruskal(g)
	if err != nil {
		return nil, fmt.Errorf("maze: computing spanning tree: %w", err)
	}

	tree := make([]pairKey, len(mst))
	for i, e := range mst {
		a, err := strconv.Atoi(e.From)
		if err != nil {
			return nil, fmt.Errorf("maze: decoding spanning tree edge: %w", err)
		}
		b, err := strconv.Atoi(e.To)
		if err != nil {
			return nil, fmt.Errorf("maze: decoding spanning tree edge: %w", err)
		}
		tree[i] = newPairKey(a, b)
	}
	return tree, nil
}

func sortedPairKeys(pairs map[pairKey][]Edge) []pairKey {
	keys := make([]pairKey, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	return keys
}
