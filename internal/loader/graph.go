package loader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bestpath/core"
)

// EdgeList is a parsed weighted graph together with the source vertex
// named in the input.
type EdgeList struct {
	Graph  *core.AdjacencyList
	Source core.NodeID
}

// ReadGraph parses "n m", then m lines "u v w", then an optional source
// vertex (default 0). Edges are mirrored unless directed is set.
//
// Returns ErrDimensions for a non-positive n or negative m, ErrFormat for
// malformed tokens, and the core errors (wrapped) for out-of-range
// endpoints or negative weights.
func ReadGraph(r io.Reader, directed bool) (*EdgeList, error) {
	t := newTokens(r)
	n, err := t.next("vertex count")
	if err != nil {
		return nil, err
	}
	m, err := t.next("edge count")
	if err != nil {
		return nil, err
	}
	if n <= 0 || m < 0 {
		return nil, fmt.Errorf("%w: n=%d m=%d", ErrDimensions, n, m)
	}

	g, err := core.NewAdjacencyList(n, core.WithDirected(directed))
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		var u, v, w int
		if u, err = t.next(fmt.Sprintf("edge %d source", i)); err != nil {
			return nil, err
		}
		if v, err = t.next(fmt.Sprintf("edge %d target", i)); err != nil {
			return nil, err
		}
		if w, err = t.next(fmt.Sprintf("edge %d weight", i)); err != nil {
			return nil, err
		}
		if err = g.AddEdge(u, v, core.Weight(w)); err != nil {
			return nil, fmt.Errorf("loader: edge %d: %w", i, err)
		}
	}

	src, _, err := t.optional("source")
	if err != nil {
		return nil, err
	}
	if !core.InRange(g, src) {
		return nil, fmt.Errorf("%w: source %d, order %d", core.ErrNodeOutOfRange, src, n)
	}

	return &EdgeList{Graph: g, Source: src}, nil
}
