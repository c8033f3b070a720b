// Package rng provides deterministic random number generation for the
// tiling kernel's maze stage.
//
// # Overview
//
// The RNG type ensures reproducible maze generation by deriving stage-specific
// seeds from a master seed. This allows each maze stage (spanning-tree edge
// weighting, wall-opening selection) to have independent random sequences
// while maintaining overall determinism.
//
// # Sub-Seed Derivation
//
// Each RNG derives its seed using SHA-256:
//
//	seed_stage = H(masterSeed, stageName, configHash)
//
// where:
//   - masterSeed: Top-level seed for entire generation
//   - stageName: Pipeline stage identifier (e.g., "maze_spanning_tree")
//   - configHash: Hash of configuration parameters
//
// This ensures:
//  1. Same inputs always produce same RNG sequence (determinism)
//  2. Different stages get independent random sequences (isolation)
//  3. Config changes result in different sequences (sensitivity)
//
// # Usage
//
// Create an RNG for each pipeline stage:
//
//	configHash := sha256.Sum256([]byte(configJSON))
//	mazeRNG := rng.NewRNG(masterSeed, "maze_spanning_tree", configHash[:])
//	openingRNG := rng.NewRNG(masterSeed, "maze_wall_opening", configHash[:])
//
// Use the RNG for all random decisions in that stage:
//
//	edgeWeight := mazeRNG.IntRange(1, 1<<30)
//	openIdx := openingRNG.Intn(len(candidateWalls))
//
// # Thread Safety
//
// RNG instances are NOT thread-safe. Each goroutine should use its own RNG
// instance. Create stage-specific RNGs before spawning goroutines and pass
// them explicitly.
//
// # Performance
//
// The underlying math/rand.Rand is highly efficient: Intn() costs ~3ns per
// call. Creating a new RNG costs ~8µs due to SHA-256 computation.
// Reuse RNG instances within a stage for best performance.
package rng
