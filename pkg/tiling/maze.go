package tiling

import (
	"context"

	"github.com/polyform/tilekernel/pkg/lattice"
	"github.com/polyform/tilekernel/pkg/maze"
	"github.com/polyform/tilekernel/pkg/placement"
	"github.com/polyform/tilekernel/pkg/tilingerr"
)

// GenerateMaze converts a solved tiling into a maze (spec.md §6.1,
// generate_maze). cfg.Placements is normally the Placements field of a
// Solvable TilingOutcome from SolveTiling.
func GenerateMaze(ctx context.Context, cfg MazeConfig) (maze.Maze, error) {
	if err := checkCancelled(ctx); err != nil {
		return maze.Maze{}, err
	}

	l, err := lattice.For(cfg.Lattice)
	if err != nil {
		return maze.Maze{}, tilingerr.Wrap(tilingerr.KindLatticeInvariant, err)
	}

	region := placement.Region{Width: cfg.Region.Width, Height: cfg.Region.Height}
	m, err := maze.Build(l, region, cfg.Placements, cfg.Seed)
	if err != nil {
		return maze.Maze{}, tilingerr.Wrap(tilingerr.KindLatticeInvariant, err)
	}

	return m, nil
}
