package builder

import (
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

// Constructor adds edges over the fixed node set of g. Constructors
// validate their parameters first and return sentinel errors, never panic.
type Constructor func(g *core.AdjacencyList, cfg builderConfig) error

// BuildGraph creates an adjacency list over n nodes with graph options
// gopts, resolves bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w".
// Complexity: O(n) plus the cost of each constructor.
func BuildGraph(n int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.AdjacencyList, error) {
	g, err := core.NewAdjacencyList(n, gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for _, con := range cons {
		if err = con(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
