package builder

import (
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodComplete = "Complete"
	minPathNodes   = 2
	minCycleNodes  = 3
)

// Path links 0→1→…→n-1.
// Complexity: O(n).
func Path() Constructor {
	return func(g *core.AdjacencyList, cfg builderConfig) error {
		n := g.Order()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodPath, n-1)
	}
}

// Cycle links 0→1→…→n-1→0.
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.AdjacencyList, cfg builderConfig) error {
		n := g.Order()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(g, cfg, methodCycle, n)
	}
}

// chain adds the arcs i→(i+1) mod n for i in [0, links).
func chain(g *core.AdjacencyList, cfg builderConfig, method string, links int) error {
	n := g.Order()
	for i := 0; i < links; i++ {
		u, v := i, (i+1)%n
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
		}
	}

	return nil
}

// Complete links every pair of distinct nodes, both ways when directed.
// Complexity: O(n²).
func Complete() Constructor {
	return func(g *core.AdjacencyList, cfg builderConfig) error {
		n := g.Order()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!g.Directed() && j < i) {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodComplete, i, j, w, err)
				}
			}
		}

		return nil
	}
}
