package search

import "github.com/katalvlaran/bestpath/core"

// entry is one frontier item. priority = cost + heuristic(node); cost is the
// node's best cost when the entry was pushed; seq is the push counter that
// keeps equal priorities in FIFO order.
type entry struct {
	priority core.Weight
	cost     core.Weight
	node     core.NodeID
	seq      uint64
}

// frontier is a min-heap of entries ordered by (priority, seq).
// We use the “lazy-decrease-key” approach: an improved node gets a fresh
// entry and the outdated one stays in the heap until it is popped and
// recognised as stale.
type frontier []entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].priority != f[j].priority {
		return f[i].priority < f[j].priority
	}

	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be an entry.
func (f *frontier) Push(x any) { *f = append(*f, x.(entry)) }

// Pop is called by heap.Pop and removes the last element.
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	e := old[n-1]
	*f = old[:n-1]

	return e
}
