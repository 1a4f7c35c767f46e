package core

import (
	"fmt"
	"iter"
)

// arc is one outgoing entry of an adjacency list.
type arc struct {
	to     NodeID
	weight Weight
}

// AdjacencyList is a Graph over nodes [0, n) whose neighbors are stored as
// per-node slices in insertion order.
//
// Building (AddEdge) is not safe for concurrent use. Once built, the list
// is only read, so any number of searches may share it concurrently.
type AdjacencyList struct {
	directed bool
	arcs     [][]arc
	edges    int
}

// NewAdjacencyList creates an empty list over n nodes.
// Returns ErrBadOrder if n < 0.
// Complexity: O(n).
func NewAdjacencyList(n int, opts ...GraphOption) (*AdjacencyList, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadOrder, n)
	}
	g := &AdjacencyList{arcs: make([][]arc, n)}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromEdges builds a list over n nodes and inserts every edge in order.
// The first invalid edge aborts construction.
// Complexity: O(n + len(edges)).
func FromEdges(n int, edges []Edge, opts ...GraphOption) (*AdjacencyList, error) {
	g, err := NewAdjacencyList(n, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddEdge inserts from→to with weight w. For undirected lists the mirror
// to→from is inserted as well, so a self-loop appears twice.
// Returns ErrNodeOutOfRange or ErrNegativeWeight on invalid input.
// Complexity: O(1) amortized.
func (g *AdjacencyList) AddEdge(from, to NodeID, w Weight) error {
	if from < 0 || from >= len(g.arcs) {
		return fmt.Errorf("%w: from=%d, order=%d", ErrNodeOutOfRange, from, len(g.arcs))
	}
	if to < 0 || to >= len(g.arcs) {
		return fmt.Errorf("%w: to=%d, order=%d", ErrNodeOutOfRange, to, len(g.arcs))
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}

	g.arcs[from] = append(g.arcs[from], arc{to: to, weight: w})
	if !g.directed {
		g.arcs[to] = append(g.arcs[to], arc{to: from, weight: w})
	}
	g.edges++

	return nil
}

// Order returns the number of nodes.
func (g *AdjacencyList) Order() int { return len(g.arcs) }

// Directed reports whether edges are one-way.
func (g *AdjacencyList) Directed() bool { return g.directed }

// Size returns the number of AddEdge calls that succeeded.
func (g *AdjacencyList) Size() int { return g.edges }

// Degree returns the number of outgoing arcs of id, or 0 if id is out of range.
func (g *AdjacencyList) Degree(id NodeID) int {
	if id < 0 || id >= len(g.arcs) {
		return 0
	}

	return len(g.arcs[id])
}

// Neighbors yields the outgoing arcs of id in insertion order.
// Complexity: O(d) for a full iteration, d = Degree(id).
func (g *AdjacencyList) Neighbors(id NodeID) iter.Seq2[NodeID, Weight] {
	return func(yield func(NodeID, Weight) bool) {
		for _, a := range g.arcs[id] {
			if !yield(a.to, a.weight) {
				return
			}
		}
	}
}

// Edges returns every stored arc as an Edge, ordered by source node and
// then by insertion. Undirected edges appear once per direction.
// Complexity: O(n + E).
func (g *AdjacencyList) Edges() []Edge {
	var out []Edge
	for from, list := range g.arcs {
		for _, a := range list {
			out = append(out, Edge{From: from, To: a.to, Weight: a.weight})
		}
	}

	return out
}
