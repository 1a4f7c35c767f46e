package gridgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/bestpath/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed cells[row][col]. It deep-copies the input to ensure immutability.
// A zero GridOptions behaves like DefaultGridOptions.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGridGraph(cells [][]int, opts GridOptions) (*GridGraph, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	copied := make([][]int, rows)
	for r := range copied {
		copied[r] = make([]int, cols)
		copy(copied[r], cells[r])
	}

	return &GridGraph{
		rows:     rows,
		cols:     cols,
		cells:    copied,
		obstacle: opts.obstacleValue(),
	}, nil
}

// Rows returns the grid height.
func (gg *GridGraph) Rows() int { return gg.rows }

// Cols returns the grid width.
func (gg *GridGraph) Cols() int { return gg.cols }

// Order returns rows×cols; every cell, walkable or not, owns an identifier.
func (gg *GridGraph) Order() int { return gg.rows * gg.cols }

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.rows && col >= 0 && col < gg.cols
}

// Walkable reports whether (row, col) is in bounds and not an obstacle.
func (gg *GridGraph) Walkable(row, col int) bool {
	return gg.InBounds(row, col) && gg.cells[row][col] != gg.obstacle
}

// Cell returns the stored value at (row, col).
// Returns ErrOutOfBounds for cells outside the grid.
func (gg *GridGraph) Cell(row, col int) (int, error) {
	if !gg.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, gg.rows, gg.cols)
	}

	return gg.cells[row][col], nil
}

// ID maps (row, col) to its row-major identifier.
// Returns ErrOutOfBounds for cells outside the grid.
// Complexity: O(1).
func (gg *GridGraph) ID(row, col int) (core.NodeID, error) {
	if !gg.InBounds(row, col) {
		return core.NoNode, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, row, col, gg.rows, gg.cols)
	}

	return row*gg.cols + col, nil
}

// Coordinate converts a row-major identifier back to (row, col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(id core.NodeID) (row, col int) {
	return id / gg.cols, id % gg.cols
}

// Neighbors yields the walkable orthogonal cells around id in the order
// up, down, left, right, each with weight 1.
// Complexity: O(1).
func (gg *GridGraph) Neighbors(id core.NodeID) iter.Seq2[core.NodeID, core.Weight] {
	return func(yield func(core.NodeID, core.Weight) bool) {
		row, col := gg.Coordinate(id)
		for _, d := range offsets {
			nr, nc := row+d[0], col+d[1]
			if !gg.Walkable(nr, nc) {
				continue
			}
			if !yield(nr*gg.cols+nc, 1) {
				return
			}
		}
	}
}

// Manhattan returns the |Δrow| + |Δcol| estimate from any cell to goal.
// Under unit-weight 4-neighborhood moves it never overestimates and is
// consistent, so A* stays optimal.
func (gg *GridGraph) Manhattan(goal core.NodeID) func(core.NodeID) core.Weight {
	gr, gc := gg.Coordinate(goal)

	return func(id core.NodeID) core.Weight {
		r, c := gg.Coordinate(id)

		return core.Weight(abs(r-gr) + abs(c-gc))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
