package builder

import (
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse includes every admissible pair independently with
// probability p: unordered pairs {i<j} for undirected lists, ordered pairs
// (i≠j) for directed ones. Self-loops are never generated.
//
// Trial order is i ascending, then j ascending, so a fixed seed gives a
// fixed graph. p ∈ {0, 1} needs no random source.
// Complexity: O(n²) trials.
func RandomSparse(p float64) Constructor {
	return func(g *core.AdjacencyList, cfg builderConfig) error {
		n := g.Order()
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				w := cfg.weightFn(cfg.rng)
				if err := g.AddEdge(i, j, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomSparse, i, j, w, err)
				}
			}
		}

		return nil
	}
}
