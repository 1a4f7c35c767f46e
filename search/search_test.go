package search_test

import (
	"context"
	"errors"
	"iter"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestpath/core"
	"github.com/katalvlaran/bestpath/gridgraph"
	"github.com/katalvlaran/bestpath/search"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// sampleNetwork is the undirected five-node network
// (0,1,4)(0,2,2)(1,2,3)(1,3,2)(2,3,4)(3,4,1).
func sampleNetwork(t testing.TB) *core.AdjacencyList {
	t.Helper()
	g, err := core.FromEdges(5, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 4},
		{From: 3, To: 4, Weight: 1},
	})
	require.NoError(t, err)

	return g
}

func mustGrid(t testing.TB, cells [][]int) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	return gg
}

func mustID(t testing.TB, gg *gridgraph.GridGraph, r, c int) core.NodeID {
	t.Helper()
	id, err := gg.ID(r, c)
	require.NoError(t, err)

	return id
}

// pathWeight sums arc weights along path, taking the cheapest parallel arc.
func pathWeight(t testing.TB, g core.Graph, path []core.NodeID) core.Weight {
	t.Helper()
	var total core.Weight
	for i := 1; i < len(path); i++ {
		best := core.Infinity
		for v, w := range g.Neighbors(path[i-1]) {
			if v == path[i] && w < best {
				best = w
			}
		}
		require.NotEqual(t, core.Infinity, best, "no arc %d→%d", path[i-1], path[i])
		total += best
	}

	return total
}

// funcGraph adapts a closure to core.Graph for contract-violation tests.
type funcGraph struct {
	order int
	arcs  func(id core.NodeID) []core.Edge
}

func (f funcGraph) Order() int { return f.order }

func (f funcGraph) Neighbors(id core.NodeID) iter.Seq2[core.NodeID, core.Weight] {
	return func(yield func(core.NodeID, core.Weight) bool) {
		for _, e := range f.arcs(id) {
			if !yield(e.To, e.Weight) {
				return
			}
		}
	}
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	res, err := search.Search(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

func TestSearch_InvalidNodes(t *testing.T) {
	g := sampleNetwork(t)
	cases := []struct {
		name   string
		source core.NodeID
		opts   []search.Option
	}{
		{"NegativeSource", -1, nil},
		{"SourcePastEnd", 5, nil},
		{"NegativeGoal", 0, []search.Option{search.WithGoal(-2)}},
		{"GoalPastEnd", 0, []search.Option{search.WithGoal(5)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := search.Search(g, tc.source, tc.opts...)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, search.ErrInvalidNode)
		})
	}
}

func TestSearch_BadMaxCost(t *testing.T) {
	_, err := search.Search(sampleNetwork(t), 0, search.WithMaxCost(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// ------------------------------------------------------------------------
// 2. Reference scenarios
// ------------------------------------------------------------------------

func TestDijkstra_SampleNetworkDistances(t *testing.T) {
	res, err := search.Dijkstra(sampleNetwork(t), 0)
	require.NoError(t, err)
	assert.Equal(t, search.KindDistances, res.Kind)
	assert.Equal(t, []core.Weight{0, 4, 2, 6, 7}, res.Distances)
	assert.Equal(t, core.NoNode, res.Goal)
	assert.False(t, res.Found())
}

// TestAStar_GridWallWithGap routes across a 5×5 grid split by a wall that
// has a single gap in the last column.
//
//	S . . . .
//	. . . . .
//	# # # # .
//	. . . . .
//	. . . . G
func TestAStar_GridWallWithGap(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	src, goal := mustID(t, gg, 0, 0), mustID(t, gg, 4, 4)

	res, err := search.AStar(gg, src, goal, gg.Manhattan(goal))
	require.NoError(t, err)
	require.Equal(t, search.KindPath, res.Kind)
	assert.Len(t, res.Path, 9)
	assert.Equal(t, core.Weight(8), res.Cost)
	assert.Equal(t, src, res.Path[0])
	assert.Equal(t, goal, res.Path[len(res.Path)-1])
	assert.Contains(t, res.Path, mustID(t, gg, 2, 4), "path must use the gap")

	// Every step is one orthogonal move onto a walkable cell.
	for i := 1; i < len(res.Path); i++ {
		r0, c0 := gg.Coordinate(res.Path[i-1])
		r1, c1 := gg.Coordinate(res.Path[i])
		assert.Equal(t, 1, absInt(r1-r0)+absInt(c1-c0))
		assert.True(t, gg.Walkable(r1, c1))
	}
}

func TestAStar_SingleIsolatedNode(t *testing.T) {
	g, err := core.NewAdjacencyList(1)
	require.NoError(t, err)

	res, err := search.AStar(g, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, search.KindPath, res.Kind)
	assert.Equal(t, []core.NodeID{0}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Stats.Settled)
}

// TestAStar_WalledOffGoal boxes the goal in completely.
//
//	S . . . .
//	. . . . .
//	. . # # #
//	. . # G #
//	. . # # #
func TestAStar_WalledOffGoal(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 1, 1},
		{0, 0, 1, 0, 1},
		{0, 0, 1, 1, 1},
	})
	src, goal := mustID(t, gg, 0, 0), mustID(t, gg, 3, 3)

	for _, h := range []search.Heuristic{nil, gg.Manhattan(goal)} {
		res, err := search.AStar(gg, src, goal, h)
		require.NoError(t, err)
		assert.Equal(t, search.KindNotFound, res.Kind)
		assert.Nil(t, res.Path)
		assert.Equal(t, core.Infinity, res.Cost)
		assert.Equal(t, goal, res.Goal)
	}
}

// ------------------------------------------------------------------------
// 3. Frontier behavior
// ------------------------------------------------------------------------

// TestSearch_StaleEntriesDiscarded builds a directed graph where node 1 is
// first queued at cost 10 and later improved to 2; the cost-10 entry must be
// popped and discarded without touching node 1's record.
//
//	0 →(10) 1
//	0 →(1)  2 →(1) 1
func TestSearch_StaleEntriesDiscarded(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: 10},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 1, Weight: 1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := search.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Weight{0, 2, 1}, res.Distances)
	assert.Equal(t, 4, res.Stats.Pushed)
	assert.Equal(t, 3, res.Stats.Settled)
	assert.Equal(t, 1, res.Stats.Stale)

	path, cost, err := res.PathTo(1)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 1}, path)
	assert.Equal(t, core.Weight(2), cost)
}

// TestSearch_TiesFirstDiscoveredWins checks that equal-cost alternatives
// never replace the first predecessor.
//
//	0 — 1
//	|   |
//	2 — 3
func TestSearch_TiesFirstDiscoveredWins(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := search.AStar(g, 0, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 3}, res.Path)
	assert.Equal(t, core.Weight(2), res.Cost)
}

func TestSearch_ZeroWeightEdges(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 0},
		{From: 1, To: 2, Weight: 0},
		{From: 2, To: 3, Weight: 5},
		{From: 0, To: 3, Weight: 5},
	})
	require.NoError(t, err)

	res, err := search.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.Weight{0, 0, 0, 5}, res.Distances)
}

func TestSearch_HugeWeightsDoNotOverflow(t *testing.T) {
	g, err := core.FromEdges(3, []core.Edge{
		{From: 0, To: 1, Weight: core.Infinity - 1},
		{From: 1, To: 2, Weight: core.Infinity - 1},
	}, core.WithDirected(true))
	require.NoError(t, err)

	res, err := search.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, core.Infinity-1, res.Distances[1])
	assert.Equal(t, core.Infinity, res.Distances[2], "saturated sum must read as unreachable")
}

// ------------------------------------------------------------------------
// 4. Options
// ------------------------------------------------------------------------

func TestSearch_MaxCostLimits(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	require.NoError(t, err)

	res, err := search.Dijkstra(g, 0, search.WithMaxCost(1))
	require.NoError(t, err)
	assert.Equal(t, []core.Weight{0, 1, core.Infinity, core.Infinity}, res.Distances)

	res, err = search.AStar(g, 0, 3, nil, search.WithMaxCost(2))
	require.NoError(t, err)
	assert.Equal(t, search.KindNotFound, res.Kind)
}

func TestSearch_OnSettleOrderAndAbort(t *testing.T) {
	g := sampleNetwork(t)

	var order []core.NodeID
	_, err := search.Dijkstra(g, 0, search.WithOnSettle(func(id core.NodeID, _ core.Weight) error {
		order = append(order, id)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 2, 1, 3, 4}, order)

	stop := errors.New("enough")
	settled := 0
	res, err := search.Dijkstra(g, 0, search.WithOnSettle(func(core.NodeID, core.Weight) error {
		settled++
		if settled == 2 {
			return stop
		}
		return nil
	}))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrAborted)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, settled)
}

func TestSearch_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.Dijkstra(sampleNetwork(t), 0, search.WithContext(ctx))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDijkstra_IgnoresGoalAndHeuristic(t *testing.T) {
	called := false
	res, err := search.Dijkstra(sampleNetwork(t), 0,
		search.WithGoal(1),
		search.WithHeuristic(func(core.NodeID) core.Weight { called = true; return 0 }),
	)
	require.NoError(t, err)
	assert.Equal(t, search.KindDistances, res.Kind)
	assert.False(t, called)
}

// ------------------------------------------------------------------------
// 5. Malformed graphs
// ------------------------------------------------------------------------

func TestSearch_NeighborOutOfRange(t *testing.T) {
	g := funcGraph{order: 2, arcs: func(id core.NodeID) []core.Edge {
		if id == 0 {
			return []core.Edge{{From: 0, To: 7, Weight: 1}}
		}
		return nil
	}}

	res, err := search.Dijkstra(g, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, search.ErrMalformedGraph)
	assert.NotErrorIs(t, err, search.ErrNegativeWeight)
}

func TestSearch_NegativeWeight(t *testing.T) {
	g := funcGraph{order: 2, arcs: func(id core.NodeID) []core.Edge {
		if id == 0 {
			return []core.Edge{{From: 0, To: 1, Weight: -4}}
		}
		return nil
	}}

	_, err := search.Dijkstra(g, 0)
	assert.ErrorIs(t, err, search.ErrNegativeWeight)
	assert.ErrorIs(t, err, search.ErrMalformedGraph)
}

// ------------------------------------------------------------------------
// 6. Results
// ------------------------------------------------------------------------

func TestResult_PathTo(t *testing.T) {
	g, err := core.FromEdges(4, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 1, To: 2, Weight: 1},
	})
	require.NoError(t, err)

	res, err := search.Dijkstra(g, 0)
	require.NoError(t, err)

	path, cost, err := res.PathTo(2)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, path)
	assert.Equal(t, core.Weight(5), cost)

	path, cost, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, path)
	assert.Zero(t, cost)

	_, _, err = res.PathTo(3)
	assert.ErrorIs(t, err, search.ErrUnreachable)
	_, _, err = res.PathTo(9)
	assert.ErrorIs(t, err, search.ErrInvalidNode)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "not_found", search.KindNotFound.String())
	assert.Equal(t, "distances", search.KindDistances.String())
	assert.Equal(t, "path", search.KindPath.String())
	assert.Equal(t, "kind(7)", search.Kind(7).String())
}

// ------------------------------------------------------------------------
// 7. Determinism and sharing
// ------------------------------------------------------------------------

func TestSearch_Idempotent(t *testing.T) {
	gg := mustGrid(t, randomCells(t, 12, 12, 0.33))
	goal := gg.Order() - 1

	first, err := search.AStar(gg, 0, goal, gg.Manhattan(goal))
	require.NoError(t, err)
	second, err := search.AStar(gg, 0, goal, gg.Manhattan(goal))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	d1, err := search.Dijkstra(gg, 0)
	require.NoError(t, err)
	d2, err := search.Dijkstra(gg, 0)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestSearch_ConcurrentSearchesShareGraph(t *testing.T) {
	g := sampleNetwork(t)
	want, err := search.Dijkstra(g, 0)
	require.NoError(t, err)

	const workers = 8
	results := make([]*search.Result, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, err := search.Dijkstra(g, 0)
			if err == nil {
				results[i] = res
			}
		}(i)
	}
	wg.Wait()

	for i, res := range results {
		assert.Equal(t, want, res, "worker %d", i)
	}
}

// TestAStar_ExpandsLessThanDijkstra checks that the heuristic actually
// prunes work on an open grid.
func TestAStar_ExpandsLessThanDijkstra(t *testing.T) {
	gg := mustGrid(t, randomCells(t, 10, 10, 0))
	goal := mustID(t, gg, 0, 9)

	blind, err := search.AStar(gg, 0, goal, nil)
	require.NoError(t, err)
	informed, err := search.AStar(gg, 0, goal, gg.Manhattan(goal))
	require.NoError(t, err)

	assert.Equal(t, blind.Cost, informed.Cost)
	assert.Less(t, informed.Stats.Settled, blind.Stats.Settled)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
