// Package search defines core types and configuration options for the
// best-first shortest-path engine.
//
// Options:
//
//	– Goal:      optional target; when set the search stops there and returns a path.
//	– Heuristic: optional estimate of remaining cost; nil means zero (Dijkstra mode).
//	– Ctx:       cancellation, checked once per settled node.
//	– OnSettle:  hook invoked once per settled node; a non-nil error aborts.
//	– MaxCost:   optional cap on explored cost; costs above it are never recorded.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph is nil.
//	– ErrInvalidNode     if source or goal lies outside [0, Order()).
//	– ErrMalformedGraph  if Neighbors yields an out-of-range node.
//	– ErrNegativeWeight  if Neighbors yields a negative weight (wraps ErrMalformedGraph).
//	– ErrOptionViolation if an Option received an invalid argument.
//	– ErrAborted         if the OnSettle hook returned an error.
//	– ErrUnreachable     from Result.PathTo for nodes that were never settled.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed to Search.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrInvalidNode indicates a source or goal identifier outside the graph.
	ErrInvalidNode = errors.New("search: node identifier out of range")

	// ErrMalformedGraph indicates the graph broke its Neighbors contract.
	// It is detected lazily, when the offending arc is relaxed.
	ErrMalformedGraph = errors.New("search: malformed graph")

	// ErrNegativeWeight indicates a negative edge weight was encountered.
	ErrNegativeWeight = fmt.Errorf("%w: negative edge weight", ErrMalformedGraph)

	// ErrOptionViolation indicates an invalid Option argument.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrAborted indicates the OnSettle hook stopped the search.
	ErrAborted = errors.New("search: aborted by hook")

	// ErrUnreachable indicates a node that the search never settled.
	ErrUnreachable = errors.New("search: node not reached")
)

// Heuristic estimates the remaining cost from id to the goal.
// For A* to return optimal paths it must never overestimate (admissible)
// and must satisfy h(u) <= w(u,v) + h(v) on every arc (consistent).
// Neither property is checked.
type Heuristic func(id core.NodeID) core.Weight

// Options configures a single Search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Goal is the target node; meaningful only if HasGoal is true.
	Goal    core.NodeID
	HasGoal bool

	// Heuristic estimates the remaining cost; nil means zero everywhere.
	Heuristic Heuristic

	// OnSettle is called when a node's cost becomes final. If it returns
	// an error, the search stops and returns that error wrapped in ErrAborted.
	OnSettle func(id core.NodeID, cost core.Weight) error

	// MaxCost caps explored costs; arcs leading to a larger cost are ignored.
	MaxCost core.Weight

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - context.Background()
//   - no goal (all-distances mode)
//   - no heuristic
//   - no-op OnSettle
//   - MaxCost = core.Infinity (no cap)
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Goal:     core.NoNode,
		OnSettle: func(core.NodeID, core.Weight) error { return nil },
		MaxCost:  core.Infinity,
	}
}

// WithGoal makes the search stop at goal and return the path to it.
func WithGoal(goal core.NodeID) Option {
	return func(o *Options) {
		o.Goal = goal
		o.HasGoal = true
	}
}

// WithHeuristic sets the remaining-cost estimate. A nil h keeps Dijkstra mode.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnSettle registers the per-iteration hook; returning an error from it
// stops the search.
func WithOnSettle(fn func(id core.NodeID, cost core.Weight) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithMaxCost stops exploring beyond cost c (inclusive bound).
//
//	c >= 0: nodes costing more than c are never reached
//	c < 0:  invalid option → ErrOptionViolation
func WithMaxCost(c core.Weight) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}
