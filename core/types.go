// Package core defines the graph abstraction consumed by the search engine:
// dense integer node identifiers, non-negative integer weights, and the
// Graph interface that enumerates (neighbor, weight) pairs lazily.
//
// This file declares NodeID, Weight, Edge, Graph, GraphOption and the
// sentinel errors of the package.
//
// Errors:
//
//	ErrBadOrder        - node count passed to a constructor is negative.
//	ErrNodeOutOfRange  - an edge endpoint lies outside [0, Order()).
//	ErrNegativeWeight  - an edge weight is below zero.
package core

import (
	"errors"
	"iter"
	"math"
)

// Sentinel errors for core graph construction.
var (
	// ErrBadOrder indicates a negative node count.
	ErrBadOrder = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, Order()).
	ErrNodeOutOfRange = errors.New("core: node identifier out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// NodeID addresses a vertex. Valid identifiers of a Graph g are the
// integers in [0, g.Order()), so a NodeID doubles as an array index.
type NodeID = int

// Weight is an edge weight or an accumulated path cost.
type Weight = int64

const (
	// NoNode marks the absence of a node (e.g. the predecessor of a source).
	NoNode NodeID = -1

	// Infinity is the cost of an unreachable node. No finite accumulated
	// cost ever reaches it: additions saturate just below it.
	Infinity Weight = math.MaxInt64
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   NodeID
	To     NodeID
	Weight Weight
}

// Graph is the read-only view a search runs against.
//
// Order returns the number of node identifiers; every NodeID in
// [0, Order()) is valid.
//
// Neighbors returns a finite, restartable sequence of (neighbor, weight)
// pairs reachable in one step from id. Calling it again with the same id
// during one search must yield the same pairs in the same order.
// Callers must only pass identifiers in [0, Order()).
type Graph interface {
	Order() int
	Neighbors(id NodeID) iter.Seq2[NodeID, Weight]
}

// InRange reports whether id is a valid identifier of g.
// Complexity: O(1).
func InRange(g Graph, id NodeID) bool {
	return id >= 0 && id < g.Order()
}

// GraphOption configures an AdjacencyList at construction time.
type GraphOption func(*AdjacencyList)

// WithDirected sets whether AddEdge inserts only from→to (true) or both
// directions (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *AdjacencyList) {
		g.directed = directed
	}
}
