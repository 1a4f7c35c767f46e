// Package search implements best-first shortest-path search over a
// core.Graph: Dijkstra's algorithm when no heuristic is given and A* when an
// admissible heuristic and a goal are.
//
// Overview:
//
//   - Search computes least costs from a single source over non-negative weights.
//   - It relies on a min-heap frontier keyed by cost + heuristic; equal keys pop
//     in insertion order, so results are reproducible.
//   - Per-node state lives in one slice indexed by node identifier and owned by
//     a single call, so independent searches may run concurrently on one graph.
//
// Modes:
//
//   - No goal:       Result.Kind == KindDistances, Result.Distances[v] for every v.
//   - Goal reached:  Result.Kind == KindPath, Result.Path (source…goal) and Result.Cost.
//   - Goal missed:   Result.Kind == KindNotFound. This is a normal outcome, not an error.
//
// Key features:
//
//   - Functional options: WithGoal, WithHeuristic, WithContext, WithOnSettle, WithMaxCost.
//   - Lazy decrease-key: improved nodes get a fresh frontier entry; outdated
//     entries are discarded when popped (counted in Result.Stats.Stale).
//   - Result.PathTo rebuilds the path to any settled node after the run.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log E)
//   - Space: O(V + E), O(E) worst-case entries in the frontier.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrInvalidNode, ErrOptionViolation: rejected before searching.
//   - ErrMalformedGraph, ErrNegativeWeight: reported when the offending arc is relaxed.
//   - ErrAborted: the OnSettle hook returned an error (both are matchable with errors.Is).
//   - context.Canceled / context.DeadlineExceeded from WithContext.
//
// Negative weights:
//
//   - They are a precondition violation. The engine reports the first one it
//     relaxes instead of producing a wrong answer; it does not scan the graph
//     beforehand.
//
// Example:
//
//	g, _ := core.FromEdges(3, []core.Edge{{From: 0, To: 1, Weight: 2}, {From: 1, To: 2, Weight: 3}})
//	res, err := search.AStar(g, 0, 2, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost) // [0 1 2] 5
package search
