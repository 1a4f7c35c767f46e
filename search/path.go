package search

import "github.com/katalvlaran/bestpath/core"

// reconstruct walks predecessor links back from terminal until a node with
// no predecessor (the source) and returns the nodes in source→terminal order.
//
// The chain is finite whenever terminal was settled: a predecessor is
// always a node settled before its successor, and settled nodes never get
// a new predecessor, so the links cannot form a cycle.
func reconstruct(pred []core.NodeID, terminal core.NodeID) []core.NodeID {
	// build reversed path
	path := []core.NodeID{}
	for cur := terminal; cur != core.NoNode; cur = pred[cur] {
		path = append(path, cur)
	}
	// reverse to get source → terminal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
