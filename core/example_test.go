package core_test

import (
	"fmt"

	"github.com/katalvlaran/bestpath/core"
)

// ExampleAdjacencyList builds the undirected five-node sample network and
// lists the neighbors of node 1.
func ExampleAdjacencyList() {
	g, err := core.FromEdges(5, []core.Edge{
		{From: 0, To: 1, Weight: 4},
		{From: 0, To: 2, Weight: 2},
		{From: 1, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 2},
		{From: 2, To: 3, Weight: 4},
		{From: 3, To: 4, Weight: 1},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for nb, w := range g.Neighbors(1) {
		fmt.Printf("1→%d (%d)\n", nb, w)
	}
	// Output:
	// 1→0 (4)
	// 1→2 (3)
	// 1→3 (2)
}
