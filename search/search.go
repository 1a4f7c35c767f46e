package search

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

// Search runs best-first search on g from source and returns either the
// distances to every node (no goal), the path to the goal, or NotFound.
//
// Without a heuristic it is Dijkstra's algorithm; with an admissible,
// consistent heuristic and a goal it is A*.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. Every Option must be valid (ErrOptionViolation).
//  3. source must lie in [0, g.Order()) (ErrInvalidNode).
//  4. The goal, if any, must lie in [0, g.Order()) (ErrInvalidNode).
//
// During the search, out-of-range neighbors and negative weights are
// reported as ErrMalformedGraph / ErrNegativeWeight when first relaxed.
// An unreachable goal is not an error: the Result has Kind KindNotFound.
//
// Complexity:
//
//   - Time:  O((V + E) log E) with lazy deletion.
//   - Space: O(V + E) for the record table and the frontier.
func Search(g core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !core.InRange(g, source) {
		return nil, fmt.Errorf("%w: source=%d, order=%d", ErrInvalidNode, source, g.Order())
	}
	if o.HasGoal && !core.InRange(g, o.Goal) {
		return nil, fmt.Errorf("%w: goal=%d, order=%d", ErrInvalidNode, o.Goal, g.Order())
	}

	r := &runner{
		g:       g,
		opts:    o,
		source:  source,
		records: make([]record, g.Order()),
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// Dijkstra computes the cost from source to every node. Goal and
// heuristic options are ignored.
func Dijkstra(g core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, func(o *Options) {
		o.HasGoal = false
		o.Goal = core.NoNode
		o.Heuristic = nil
	})

	return Search(g, source, all...)
}

// AStar finds a least-cost path from source to goal guided by h.
// A nil h degrades to Dijkstra with early exit at the goal.
func AStar(g core.Graph, source, goal core.NodeID, h Heuristic, opts ...Option) (*Result, error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, WithGoal(goal), WithHeuristic(h))

	return Search(g, source, all...)
}

// record is the per-node search state. The whole table is allocated once
// per Search call and indexed by NodeID.
type record struct {
	best      core.Weight // best known cost from source
	heuristic core.Weight // static estimate to goal, 0 without heuristic
	pred      core.NodeID // predecessor on the best known path
	settled   bool        // cost is final
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       core.Graph
	opts    Options
	source  core.NodeID
	records []record
	pq      frontier
	seq     uint64
	stats   Stats
	reached bool // goal settled
}

// init resets every record and pushes the source.
func (r *runner) init() {
	for i := range r.records {
		r.records[i] = record{best: core.Infinity, pred: core.NoNode}
	}

	src := &r.records[r.source]
	src.best = 0
	src.heuristic = r.estimate(r.source)

	heap.Init(&r.pq)
	r.push(r.source, 0, src.heuristic)
}

// process is the main loop. It stops when the frontier is empty, when the
// goal is settled, or on cancellation, hook or graph errors.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// cancellation check (once per loop)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		e := heap.Pop(&r.pq).(entry)
		u := e.node
		rec := &r.records[u]

		// A settled node, or an entry pushed before a cheaper path was
		// found, is stale.
		if rec.settled || e.cost > rec.best {
			r.stats.Stale++
			continue
		}
		rec.settled = true
		r.stats.Settled++

		if err := r.opts.OnSettle(u, rec.best); err != nil {
			return fmt.Errorf("%w at node %d: %w", ErrAborted, u, err)
		}

		if r.opts.HasGoal && u == r.opts.Goal {
			r.reached = true
			return nil
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax offers every arc u→v to v. An arc improves v only when the new
// cost is strictly lower, so among equal-cost paths the first discovered
// one is kept.
func (r *runner) relax(u core.NodeID) error {
	cur := r.records[u].best
	for v, w := range r.g.Neighbors(u) {
		if v < 0 || v >= len(r.records) {
			return fmt.Errorf("%w: arc %d→%d leaves [0, %d)", ErrMalformedGraph, u, v, len(r.records))
		}
		if w < 0 {
			return fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, u, v, w)
		}

		nb := &r.records[v]
		if nb.settled {
			continue
		}

		cand := addCost(cur, w)
		if cand > r.opts.MaxCost || cand >= nb.best {
			continue
		}

		// First improvement computes the static estimate; later ones reuse it.
		if nb.best == core.Infinity {
			nb.heuristic = r.estimate(v)
		}
		nb.best = cand
		nb.pred = u
		r.push(v, cand, addCost(cand, nb.heuristic))
	}

	return nil
}

// push inserts a fresh frontier entry.
func (r *runner) push(v core.NodeID, cost, priority core.Weight) {
	heap.Push(&r.pq, entry{priority: priority, cost: cost, node: v, seq: r.seq})
	r.seq++
	r.stats.Pushed++
}

// estimate evaluates the heuristic, zero when none is set.
func (r *runner) estimate(v core.NodeID) core.Weight {
	if r.opts.Heuristic == nil {
		return 0
	}

	return r.opts.Heuristic(v)
}

// addCost returns a+b, saturating at core.Infinity. Both operands are
// non-negative costs.
func addCost(a, b core.Weight) core.Weight {
	if b >= core.Infinity-a {
		return core.Infinity
	}

	return a + b
}
