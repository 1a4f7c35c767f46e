// Package render writes search results in the plain-text formats printed
// by the bestpath command.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/bestpath/core"
	"github.com/katalvlaran/bestpath/gridgraph"
)

// Cell glyphs used by Grid.
const (
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
	GlyphPath     = 'P'
	GlyphObstacle = '#'
	GlyphOpen     = '.'
)

// Grid draws gg one row per line, glyphs separated by spaces. Cells on path
// other than start and goal are marked with GlyphPath.
func Grid(w io.Writer, gg *gridgraph.GridGraph, start, goal core.NodeID, path []core.NodeID) error {
	onPath := make(map[core.NodeID]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}

	bw := bufio.NewWriter(w)
	for row := 0; row < gg.Rows(); row++ {
		for col := 0; col < gg.Cols(); col++ {
			id, _ := gg.ID(row, col)
			glyph := byte(GlyphOpen)
			switch {
			case id == start:
				glyph = GlyphStart
			case id == goal:
				glyph = GlyphGoal
			case onPath[id]:
				glyph = GlyphPath
			case !gg.Walkable(row, col):
				glyph = GlyphObstacle
			}
			bw.WriteByte(glyph)
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// Path prints the step count and the (row, col) of every cell on path.
// An empty path prints "No path found.".
func Path(w io.Writer, gg *gridgraph.GridGraph, path []core.NodeID) error {
	bw := bufio.NewWriter(w)
	if len(path) == 0 {
		fmt.Fprintln(bw, "No path found.")
		return bw.Flush()
	}

	fmt.Fprintf(bw, "Path found (%d steps):\n", len(path))
	for _, id := range path {
		r, c := gg.Coordinate(id)
		fmt.Fprintf(bw, "(%d, %d) ", r, c)
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Distances prints one "Vertex i: d" line per node, INF for unreachable.
func Distances(w io.Writer, source core.NodeID, dist []core.Weight) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Shortest distances from vertex %d:\n", source)
	for i, d := range dist {
		if d == core.Infinity {
			fmt.Fprintf(bw, "Vertex %d: INF\n", i)
			continue
		}
		fmt.Fprintf(bw, "Vertex %d: %d\n", i, d)
	}

	return bw.Flush()
}
