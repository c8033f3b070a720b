package maze_test

import (
	"testing"

	"github.com/polyform/tilekernel/internal/satref"
	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/maze"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/sat"
	"github.com/polyform/tilekernel/pkg/tile"
	"github.com/polyform/tilekernel/pkg/transform"
)

func solveDominoGrid(t *testing.T, w, h int) (lattice.Lattice, placement.Region, []placement.Placement) {
	t.Helper()
	l, err := lattice.For(lattice.Square)
	if err != nil {
		t.Fatal(err)
	}
	domino, err := tile.New(l, []lattice.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	variants := transform.Enumerate(l, domino)
	region := placement.Region{Width: w, Height: h}
	result, err := placement.Enumerate(l, region, []placement.TileVariants{{TileIndex: 0, Variants: variants}})
	if err != nil {
		t.Fatal(err)
	}

	solver := satref.New()
	outcome, err := sat.Encode(solver, sat.Config{Lattice: l, Region: region, Result: result})
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Solvable {
		t.Fatalf("expected %dx%d to be tileable by dominoes", w, h)
	}

	byID := make(map[int]placement.Placement, len(result.Placements))
	for _, p := range result.Placements {
		byID[p.ID] = p
	}
	solved := make([]placement.Placement, len(outcome.Placements))
	for i, id := range outcome.Placements {
		solved[i] = byID[id]
	}
	return l, region, solved
}

func TestBuildProducesSpanningTreeMaze(t *testing.T) {
	l, region, placements := solveDominoGrid(t, 4, 4)

	m, err := maze.Build(l, region, placements, 42)
	if err != nil {
		t.Fatal(err)
	}

	if len(m.Openings) != len(placements)-1 {
		t.Fatalf("want %d openings (|placements|-1), got %d", len(placements)-1, len(m.Openings))
	}
	if len(m.TreeEdges) != len(placements)-1 {
		t.Fatalf("want %d tree edges, got %d", len(placements)-1, len(m.TreeEdges))
	}

	adj := make(map[int][]int)
	for _, te := range m.TreeEdges {
		adj[te[0]] = append(adj[te[0]], te[1])
		adj[te[1]] = append(adj[te[1]], te[0])
	}

	visited := map[int]bool{placements[0].ID: true}
	queue := []int{placements[0].ID}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	if len(visited) != len(placements) {
		t.Fatalf("spanning tree does not reach all placements: visited %d of %d", len(visited), len(placements))
	}

	for _, be := range m.BoundaryWalls {
		for _, op := range m.Openings {
			if (op.CellA == be.Cell && op.DirA == be.Dir) || (op.CellB == be.Cell && op.DirB == be.Dir) {
				t.Fatalf("boundary edge %v was opened", be)
			}
		}
	}
}

func TestBuildDeterministicForFixedSeed(t *testing.T) {
	l, region, placements := solveDominoGrid(t, 4, 4)

	m1, err := maze.Build(l, region, placements, 7)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := maze.Build(l, region, placements, 7)
	if err != nil {
		t.Fatal(err)
	}

	if len(m1.Openings) != len(m2.Openings) {
		t.Fatalf("opening counts differ across identical-seed runs: %d vs %d", len(m1.Openings), len(m2.Openings))
	}
	set1 := make(map[maze.Edge]bool, len(m1.Openings))
	for _, e := range m1.Openings {
		set1[e] = true
	}
	for _, e := range m2.Openings {
		if !set1[e] {
			t.Fatalf("opening %v present in one run but not the other with the same seed", e)
		}
	}
}
