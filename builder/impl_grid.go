package builder

import (
	"fmt"

	"github.com/katalvlaran/bestpath/gridgraph"
)

const (
	methodOccupancy = "Occupancy"
	minGridDim      = 1
)

// Occupancy returns rows×cols cells where each cell is an obstacle
// (gridgraph.DefaultObstacle) with probability wallProb and 0 otherwise.
// The top-left and bottom-right corners always stay open.
//
// Cells are drawn in row-major order; wallProb ∈ {0, 1} needs no random
// source.
// Complexity: O(rows×cols).
func Occupancy(rows, cols int, wallProb float64, opts ...BuilderOption) ([][]int, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodOccupancy, rows, cols, minGridDim, ErrTooFewVertices)
	}
	if wallProb < 0 || wallProb > 1 {
		return nil, fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodOccupancy, wallProb, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && wallProb > 0 && wallProb < 1 {
		return nil, fmt.Errorf("%s: %w", methodOccupancy, ErrNeedRandSource)
	}

	cells := make([][]int, rows)
	for r := range cells {
		cells[r] = make([]int, cols)
		for c := range cells[r] {
			if wallProb == 1 || (wallProb > 0 && cfg.rng.Float64() < wallProb) {
				cells[r][c] = gridgraph.DefaultObstacle
			}
		}
	}
	cells[0][0], cells[rows-1][cols-1] = 0, 0

	return cells, nil
}
