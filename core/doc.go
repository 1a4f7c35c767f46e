// Package core is the graph abstraction layer of bestpath.
//
// A Graph exposes two things only: how many node identifiers exist
// (Order) and, for a given identifier, a lazy sequence of its neighbors
// with edge weights (Neighbors). The search engine never needs more, so
// any structure that can answer those two questions can be searched:
//
//   - AdjacencyList: explicit weighted edge lists over nodes [0, n).
//   - gridgraph.GridGraph: a 4-neighborhood grid with unit weights.
//
// Node identifiers are dense integers so that per-search state can be kept
// in plain slices indexed by NodeID.
//
// Weights must be non-negative. AdjacencyList rejects negative weights at
// insertion time with ErrNegativeWeight; the search engine re-checks every
// weight it relaxes, so custom Graph implementations are covered too.
//
// Undirected semantics:
//
//	g, _ := core.NewAdjacencyList(3)          // undirected by default
//	_ = g.AddEdge(0, 1, 4)                    // stores 0→1 and 1→0
//
//	d, _ := core.NewAdjacencyList(3, core.WithDirected(true))
//	_ = d.AddEdge(0, 1, 4)                    // stores 0→1 only
//
// Thread safety:
//
//   - Building a list is single-goroutine work.
//   - A built list is never mutated by searches and may be shared freely.
package core
