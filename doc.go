// Package bestpath is a best-first shortest-path engine: Dijkstra's
// algorithm for single-source distances and A* for guided point-to-point
// search, over any graph that can enumerate weighted neighbors.
//
// What is inside?
//
//	core/        Graph interface (dense integer nodes, iterator neighbors),
//	              AdjacencyList for explicit weighted edge lists
//	gridgraph/   2D occupancy grids as implicit unit-weight graphs,
//	              Manhattan heuristic, connected components
//	search/      the engine: Search, Dijkstra, AStar, Result.PathTo
//	builder/     deterministic fixtures: random sparse graphs, paths,
//	              cycles, complete graphs, walled grids
//	cmd/bestpath  CLI: "grid" (A* on a map file) and "graph" (distance table)
//
// Guarantees:
//
//   - Non-negative integer weights; least costs are exact.
//   - Equal-priority frontier entries pop in insertion order, so paths are
//     reproducible run to run.
//   - An unreachable goal is a result (KindNotFound), not an error.
//   - The graph is only read; concurrent searches may share it.
//
// Quick ASCII example:
//
//	S . .
//	# # .
//	G . .
//
//	AStar from S to G walks around the wall: 6 moves.
//
//	go get github.com/katalvlaran/bestpath
package bestpath
