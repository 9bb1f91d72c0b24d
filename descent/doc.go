// Package descent provides the reverse search of ridgeline: the fewest unit
// steps from any lowland (elevation 0) cell to a height map's end cell.
//
// Rather than running one forward search per lowland, the search walks
// backwards from the end with plain breadth-first order. Edges are reversed,
// so a backward move from cur to nb is allowed exactly when the forward step
// nb→cur is legal: elevation(cur) ≤ elevation(nb)+1.
//
// What
//
//   - ShortestFromAnyZero(hm, end, opts...) returns a Result with the depth of
//     the first goal cell dequeued, which lowland it is, and how many cells
//     were dequeued.
//   - Cells are marked visited when enqueued, the end included, so no cell is
//     queued twice.
//   - Neighbours are considered east, north, west, south; among several
//     lowlands at the same depth the one enqueued first wins.
//   - WithGoal replaces the "elevation 0" test with any elevation predicate.
//
// Complexity (N = cells)
//
//   - Time:   O(N)
//   - Memory: O(N)
//
// Errors
//
//   - ErrNilMap           if hm is nil.
//   - ErrIndexOutOfRange  if end is not a cell of hm.
package descent
