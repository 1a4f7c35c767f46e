// Package gridgraph treats a 2D grid of cells as a core.Graph so that the
// search engine can route across maps.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a configurable obstacle value.
//   - Cell (row, col) is node row*cols + col; Coordinate inverts the mapping.
//   - Neighbors are the 4 orthogonal walkable cells (up, down, left, right), weight 1.
//   - Manhattan builds the standard admissible heuristic for a goal cell.
//   - Components labels 4-connected walkable regions.
//
// Complexity:
//
//   - NewGridGraph: O(R×C), Memory: O(R×C).
//   - Neighbors:    O(1) per call.
//   - Components:   O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a (row, col) pair outside the grid.
package gridgraph
