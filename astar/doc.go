// Package astar provides the forward heuristic search of ridgeline: the
// fewest unit steps from a height map's start cell to its end cell, where a
// step may climb at most one elevation unit and may drop any distance.
//
// What
//
//   - ShortestPath(hm, start, end, opts...) returns a Result with the step
//     count, whether the end was reached, how many cells were expanded and,
//     on request, the route itself.
//   - The frontier is ordered by distance-so-far plus a Manhattan estimate to
//     the end; equal priorities leave in insertion order.
//   - Better distances are not updated in place. A new frontier entry is
//     pushed and the outdated one is discarded when it surfaces (stale-entry
//     skip), so the recorded distance of a cell is final once it is expanded
//     at that distance.
//
// Estimate anchor
//
//	By default the estimate attached to a newly pushed neighbour is the
//	Manhattan distance from the cell being expanded, not from the neighbour
//	itself. Adjacent cells differ by exactly one in Manhattan distance, so
//	every non-optimal route to the end still sorts behind the optimal one and
//	the step count is exact; only the expansion order changes.
//	WithEstimate(EstimateFromTarget) switches to the textbook anchor.
//
// Complexity (N = cells)
//
//   - Time:   O(N log N)   (≤ 4 pushes per expansion, heap operations O(log N))
//   - Memory: O(N)
//
// Usage
//
//	res, err := astar.ShortestPath(hm, hm.Start, hm.End, astar.WithReturnPath())
//	if err != nil {
//	    // ErrNilMap, ErrIndexOutOfRange or ErrOptionViolation
//	}
//	if !res.Found {
//	    // no legal route
//	}
//
// Errors
//
//   - ErrNilMap           if hm is nil.
//   - ErrIndexOutOfRange  if start or end is not a cell of hm.
//   - ErrOptionViolation  if an Option is invalid.
package astar
