package loader

import (
	"fmt"
	"io"

	"github.com/katalvlaran/bestpath/gridgraph"
)

// ReadGrid parses a "rows cols" header followed by rows*cols cell values in
// row-major order (0 walkable, 1 obstacle). Any whitespace separates values.
//
// Returns ErrDimensions for a non-positive size and ErrFormat for missing
// or non-integer values.
func ReadGrid(r io.Reader) (*gridgraph.GridGraph, error) {
	t := newTokens(r)
	rows, err := t.next("rows")
	if err != nil {
		return nil, err
	}
	cols, err := t.next("cols")
	if err != nil {
		return nil, err
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrDimensions, rows, cols)
	}

	cells := make([][]int, rows)
	for row := range cells {
		cells[row] = make([]int, cols)
		for col := range cells[row] {
			if cells[row][col], err = t.next(fmt.Sprintf("cell (%d, %d)", row, col)); err != nil {
				return nil, err
			}
		}
	}

	return gridgraph.NewGridGraph(cells, gridgraph.DefaultGridOptions())
}

// ValidateEndpoints checks that start and goal lie on the grid and are
// walkable.
func ValidateEndpoints(gg *gridgraph.GridGraph, start, goal [2]int) error {
	for _, p := range []struct {
		name string
		at   [2]int
	}{{"start", start}, {"goal", goal}} {
		if !gg.InBounds(p.at[0], p.at[1]) {
			return fmt.Errorf("%w: %s (%d, %d) outside %dx%d grid",
				ErrEndpoint, p.name, p.at[0], p.at[1], gg.Rows(), gg.Cols())
		}
		if !gg.Walkable(p.at[0], p.at[1]) {
			return fmt.Errorf("%w: %s (%d, %d) is on an obstacle", ErrEndpoint, p.name, p.at[0], p.at[1])
		}
	}

	return nil
}
