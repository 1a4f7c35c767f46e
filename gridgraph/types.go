// Package gridgraph defines the grid adapter types, options and sentinel
// errors of github.com/katalvlaran/bestpath/gridgraph.
package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a (row, col) pair outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// DefaultObstacle is the cell value marking an impassable cell.
const DefaultObstacle = 1

// offsets lists the 4-neighborhood in enumeration order: up, down, left, right.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// GridOptions contains tunable parameters for the grid adapter.
//
// The zero value is usable and equals DefaultGridOptions: a zero Obstacle
// means DefaultObstacle. To block cells holding 0, set ZeroObstacle.
type GridOptions struct {
	// Obstacle is the cell value that blocks movement. Every other value
	// is walkable. 0 selects DefaultObstacle unless ZeroObstacle is set.
	Obstacle int

	// ZeroObstacle makes cells equal to 0 the obstacles; Obstacle is
	// ignored.
	ZeroObstacle bool
}

// obstacleValue resolves the blocking cell value.
func (o GridOptions) obstacleValue() int {
	switch {
	case o.ZeroObstacle:
		return 0
	case o.Obstacle == 0:
		return DefaultObstacle
	default:
		return o.Obstacle
	}
}

// DefaultGridOptions returns GridOptions with Obstacle=DefaultObstacle,
// matching maps where 0 is open ground and 1 is a wall.
func DefaultGridOptions() GridOptions {
	return GridOptions{Obstacle: DefaultObstacle}
}

// GridGraph treats a rectangular grid as a core.Graph. It is immutable once
// built. Node identifiers are row-major: id = row*cols + col.
type GridGraph struct {
	rows, cols int
	cells      [][]int
	obstacle   int
}
