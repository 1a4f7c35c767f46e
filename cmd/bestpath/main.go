// Command bestpath runs shortest-path searches over occupancy grids and
// weighted edge lists.
package main

import (
	"context"
	"os"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
