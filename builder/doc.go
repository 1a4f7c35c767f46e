// Package builder generates deterministic graph and grid fixtures for the
// search engine: random sparse graphs, paths, cycles, complete graphs and
// occupancy grids with scattered walls.
//
// One orchestrator, BuildGraph, creates a core.AdjacencyList of a fixed
// order and applies Constructors in sequence. Each Constructor only adds
// edges, so several may be composed on the same node set:
//
//	g, err := builder.BuildGraph(100,
//		[]core.GraphOption{core.WithDirected(true)},
//		[]builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Path(), builder.RandomSparse(0.05),
//	)
//
// Determinism: the same order, options, seed and constructor sequence
// always yield the same graph. Stochastic constructors require a random
// source (WithSeed or WithRand) and report ErrNeedRandSource otherwise.
//
// Errors:
//
//	ErrTooFewVertices     - order or grid size below the constructor minimum.
//	ErrInvalidProbability - probability outside [0, 1].
//	ErrNeedRandSource     - stochastic constructor without a random source.
package builder
