package astar

// entry is a frontier item: a cell, its distance from the start when it was
// pushed, the estimate attached to it, and a push sequence number.
type entry struct {
	index    int
	dist     int
	estimate int
	seq      uint64
}

func (e entry) priority() int { return e.dist + e.estimate }

// frontier is a min-heap of entries ordered by dist+estimate, ties broken
// by push order so equal priorities leave first-in-first-out.
// Improvements push a new entry instead of updating one in place; the
// runner discards the outdated entry when it is popped.
type frontier []entry

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by priority, then by sequence.
func (f frontier) Less(i, j int) bool {
	pi, pj := f[i].priority(), f[j].priority()
	if pi != pj {
		return pi < pj
	}

	return f[i].seq < f[j].seq
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x, which must be an entry. Called by heap.Push.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(entry)) }

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
