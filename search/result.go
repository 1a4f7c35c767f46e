package search

import (
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

// Kind tells which outcome a Result carries.
type Kind int

const (
	// KindNotFound: a goal was given and no path to it exists (or it costs
	// more than MaxCost).
	KindNotFound Kind = iota
	// KindDistances: no goal was given; Distances holds every node's cost.
	KindDistances
	// KindPath: the goal was reached; Path and Cost describe the route.
	KindPath
)

// String returns a short lowercase name, useful as a log or metric label.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindDistances:
		return "distances"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Settled int // nodes whose cost became final
	Pushed  int // frontier insertions, source included
	Stale   int // popped entries discarded as outdated
}

// Result is the outcome of Search.
//
//   - KindDistances: Distances[v] is the least cost from Source to v, or
//     core.Infinity if v is unreachable.
//   - KindPath: Path runs from Source to Goal inclusive; Cost is its total weight.
//   - KindNotFound: Path is nil and Cost is core.Infinity.
type Result struct {
	Kind      Kind
	Source    core.NodeID
	Goal      core.NodeID // core.NoNode without a goal
	Distances []core.Weight
	Path      []core.NodeID
	Cost      core.Weight
	Stats     Stats

	// pred[v] is v's predecessor for settled v, core.NoNode otherwise.
	pred []core.NodeID
	cost []core.Weight
}

// Found reports whether a goal search reached its goal.
func (res *Result) Found() bool { return res.Kind == KindPath }

// PathTo rebuilds the least-cost path from Source to id, provided the search
// settled id. After a distances run that is every reachable node; after a
// goal run it is the nodes expanded before the goal.
// Returns ErrInvalidNode for out-of-range ids and ErrUnreachable otherwise.
func (res *Result) PathTo(id core.NodeID) ([]core.NodeID, core.Weight, error) {
	if id < 0 || id >= len(res.pred) {
		return nil, core.Infinity, fmt.Errorf("%w: %d", ErrInvalidNode, id)
	}
	if id != res.Source && res.pred[id] == core.NoNode {
		return nil, core.Infinity, fmt.Errorf("%w: %d", ErrUnreachable, id)
	}

	return reconstruct(res.pred, id), res.cost[id], nil
}

// result assembles the public Result from the record table.
func (r *runner) result() *Result {
	n := len(r.records)
	res := &Result{
		Source: r.source,
		Goal:   core.NoNode,
		Cost:   core.Infinity,
		Stats:  r.stats,
		pred:   make([]core.NodeID, n),
		cost:   make([]core.Weight, n),
	}
	for v := range r.records {
		rec := &r.records[v]
		res.pred[v] = core.NoNode
		res.cost[v] = core.Infinity
		if rec.settled {
			res.pred[v] = rec.pred
			res.cost[v] = rec.best
		}
	}

	switch {
	case !r.opts.HasGoal:
		res.Kind = KindDistances
		res.Distances = make([]core.Weight, n)
		for v := range r.records {
			res.Distances[v] = r.records[v].best
		}
	case r.reached:
		res.Kind = KindPath
		res.Goal = r.opts.Goal
		res.Path = reconstruct(res.pred, r.opts.Goal)
		res.Cost = r.records[r.opts.Goal].best
	default:
		res.Kind = KindNotFound
		res.Goal = r.opts.Goal
	}

	return res
}
