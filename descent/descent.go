package descent

import (
	"fmt"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// noParent marks the end cell, which has no predecessor in the walk.
const noParent = -1

// queueItem pairs a cell with its depth from the end.
type queueItem struct {
	index int
	depth int
}

// walker encapsulates the mutable state of one reverse search.
type walker struct {
	hm      *heightmap.HeightMap // read-only
	opts    Options
	end     int
	queue   []queueItem
	head    int
	visited []bool
	parent  []int // toward the end; nil unless ReturnPath
	nbuf    [4]int
}

// ShortestFromAnyZero finds the fewest steps from any goal cell (elevation 0
// by default) to end by searching backwards from end.
// Returns ErrNilMap or ErrIndexOutOfRange for invalid input. A map where no
// goal cell can reach end yields Found == false and a nil error.
func ShortestFromAnyZero(hm *heightmap.HeightMap, end int, opts ...Option) (Result, error) {
	if hm == nil {
		return Result{}, ErrNilMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !hm.Contains(end) {
		return Result{}, fmt.Errorf("%w: end %d not in [0,%d)", ErrIndexOutOfRange, end, hm.Len())
	}

	n := hm.Len()
	w := &walker{
		hm:      hm,
		opts:    o,
		end:     end,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
	}
	if o.ReturnPath {
		w.parent = make([]int, n)
	}

	w.enqueue(end, 0, noParent)

	return w.loop(), nil
}

// enqueue marks idx visited at depth d, records its parent and queues it.
func (w *walker) enqueue(idx, d, parent int) {
	w.visited[idx] = true
	if w.parent != nil {
		w.parent[idx] = parent
	}
	w.queue = append(w.queue, queueItem{index: idx, depth: d})
}

// loop dequeues until a goal cell surfaces or the queue drains.
func (w *walker) loop() Result {
	for w.head < len(w.queue) {
		item := w.queue[w.head]
		w.head++
		w.opts.OnVisit(item.index, item.depth)

		if w.opts.Goal(w.hm.Elevation(item.index)) {
			return w.found(item)
		}
		w.enqueueNeighbors(item)
	}

	return Result{Source: noParent, Expanded: w.head}
}

// enqueueNeighbors queues every unseen neighbour that can step onto
// item.index going forward.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nb := range w.hm.AppendNeighbors(w.nbuf[:0], item.index) {
		if w.visited[nb] {
			continue
		}
		if !w.hm.CanStep(nb, item.index) {
			continue
		}
		w.enqueue(nb, item.depth+1, item.index)
	}
}

func (w *walker) found(item queueItem) Result {
	res := Result{
		Steps:    item.depth,
		Found:    true,
		Source:   item.index,
		Expanded: w.head,
	}
	if w.parent != nil {
		// Parents point toward the end.
		res.Path = make([]int, 0, item.depth+1)
		for at := item.index; at != noParent; at = w.parent[at] {
			res.Path = append(res.Path, at)
		}
	}

	return res
}
