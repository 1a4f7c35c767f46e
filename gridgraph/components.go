package gridgraph

import "github.com/katalvlaran/bestpath/core"

// Unlabeled is the label of obstacle cells in the output of Components.
const Unlabeled = -1

// Components labels every walkable cell with the index of its
// 4-connected region. Obstacles are labeled Unlabeled. The second return
// value is the number of regions. Two cells are mutually reachable exactly
// when they carry the same label.
//
// Regions are numbered in row-major order of their first cell.
//
// Time:   O(R·C).
// Memory: O(R·C) for labels and the BFS queue.
func (gg *GridGraph) Components() ([]int, int) {
	labels := make([]int, gg.Order())
	for i := range labels {
		labels[i] = Unlabeled
	}

	count := 0
	queue := make([]core.NodeID, 0, gg.Order())
	for r := 0; r < gg.rows; r++ {
		for c := 0; c < gg.cols; c++ {
			start := r*gg.cols + c
			if !gg.Walkable(r, c) || labels[start] != Unlabeled {
				continue
			}
			// BFS to flood the region
			queue = append(queue[:0], start)
			labels[start] = count
			for qi := 0; qi < len(queue); qi++ {
				for nb := range gg.Neighbors(queue[qi]) {
					if labels[nb] == Unlabeled {
						labels[nb] = count
						queue = append(queue, nb)
					}
				}
			}
			count++
		}
	}

	return labels, count
}
