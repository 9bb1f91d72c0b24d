package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ridgeline/heightmap"
)

// unreached marks a cell with no recorded distance.
const unreached = -1

// ShortestPath searches hm from start to end and reports the minimum number
// of steps, or Found == false when end cannot be reached.
//
// Preconditions and validation (in order):
//  1. hm must be non-nil (ErrNilMap).
//  2. options must be valid (ErrOptionViolation).
//  3. start and end must address cells of hm (ErrIndexOutOfRange).
//
// Unreachability is not an error. hm is only read, so concurrent calls on
// the same map are safe; each call owns its distance record and frontier.
//
// Complexity:
//
//   - Time:  O(N log N), N = hm.Len() (each cell has at most four edges).
//   - Space: O(N) for distances, predecessors and heap entries.
func ShortestPath(hm *heightmap.HeightMap, start, end int, opts ...Option) (Result, error) {
	if hm == nil {
		return Result{}, ErrNilMap
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if !hm.Contains(start) {
		return Result{}, fmt.Errorf("%w: start %d not in [0,%d)", ErrIndexOutOfRange, start, hm.Len())
	}
	if !hm.Contains(end) {
		return Result{}, fmt.Errorf("%w: end %d not in [0,%d)", ErrIndexOutOfRange, end, hm.Len())
	}

	r := newRunner(hm, start, end, cfg)

	return r.run(), nil
}

// runner holds the mutable state for a single search.
type runner struct {
	hm         *heightmap.HeightMap // read-only
	opts       Options
	start, end int
	dist       []int // best known distance from start, or unreached
	prev       []int // predecessor on the best route; nil unless ReturnPath
	pq         frontier
	seq        uint64
	expanded   int
	nbuf       [4]int
}

func newRunner(hm *heightmap.HeightMap, start, end int, opts Options) *runner {
	n := hm.Len()
	r := &runner{
		hm:    hm,
		opts:  opts,
		start: start,
		end:   end,
		dist:  make([]int, n),
		pq:    make(frontier, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = unreached
	}
	if opts.ReturnPath {
		r.prev = make([]int, n)
		for i := range r.prev {
			r.prev[i] = unreached
		}
	}

	return r
}

// run seeds the frontier with the start cell and expands until the end cell
// is popped or the frontier is exhausted.
func (r *runner) run() Result {
	r.dist[r.start] = 0
	r.push(r.start, 0, r.hm.Manhattan(r.start, r.end))

	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(entry)

		if e.index == r.end {
			return r.result(e.dist)
		}

		// Stale entry: a shorter route to this cell was recorded after it
		// was pushed.
		if e.dist > r.dist[e.index] {
			continue
		}

		r.expand(e)
	}

	return Result{Expanded: r.expanded}
}

// expand relaxes every legal step out of e.index.
func (r *runner) expand(e entry) {
	r.expanded++
	r.opts.OnExpand(e.index, e.dist)

	next := e.dist + 1
	estimate := r.hm.Manhattan(e.index, r.end)
	for _, nb := range r.hm.AppendNeighbors(r.nbuf[:0], e.index) {
		if !r.hm.CanStep(e.index, nb) {
			continue
		}
		if d := r.dist[nb]; d != unreached && d <= next {
			continue
		}

		r.dist[nb] = next
		if r.prev != nil {
			r.prev[nb] = e.index
		}
		if r.opts.Estimate == EstimateFromTarget {
			estimate = r.hm.Manhattan(nb, r.end)
		}
		r.push(nb, next, estimate)
	}
}

func (r *runner) push(idx, dist, estimate int) {
	heap.Push(&r.pq, entry{index: idx, dist: dist, estimate: estimate, seq: r.seq})
	r.seq++
}

func (r *runner) result(steps int) Result {
	res := Result{Steps: steps, Found: true, Expanded: r.expanded}
	if r.prev != nil {
		res.Path = r.path()
	}

	return res
}

// path walks predecessors back from end and returns start…end.
func (r *runner) path() []int {
	out := make([]int, 0, r.dist[r.end]+1)
	for at := r.end; at != unreached; at = r.prev[at] {
		out = append(out, at)
		if at == r.start {
			break
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}
