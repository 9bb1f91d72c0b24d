// Package descent defines options, results and sentinel errors for the
// reverse breadth-first search over a heightmap.HeightMap.
package descent

import (
	"errors"
)

// Sentinel errors for ShortestFromAnyZero.
var (
	// ErrNilMap is returned if a nil map pointer is passed.
	ErrNilMap = errors.New("descent: height map is nil")

	// ErrIndexOutOfRange is returned when end is not a cell of the map.
	ErrIndexOutOfRange = errors.New("descent: cell index out of range")
)

// Option configures ShortestFromAnyZero via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks for the reverse search.
type Options struct {
	// ReturnPath, if true, fills Result.Path from the source to the end.
	ReturnPath bool

	// OnVisit is called each time a cell is dequeued, with its depth
	// (steps from the end).
	OnVisit func(idx, depth int)

	// Goal reports whether a cell of the given elevation ends the search.
	Goal func(elev uint8) bool
}

// DefaultOptions returns Options with no path, a no-op OnVisit hook and the
// elevation-0 goal.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		OnVisit:    func(int, int) {},
		Goal:       func(elev uint8) bool { return elev == 0 },
	}
}

// WithReturnPath enables reconstruction of the route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithOnVisit registers a callback to run on dequeue.
func WithOnVisit(fn func(idx, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithGoal replaces the elevation-0 goal test.
func WithGoal(fn func(elev uint8) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.Goal = fn
		}
	}
}

// Result holds the outcome of ShortestFromAnyZero:
//   - Found: false means no goal cell can reach the end (not an error).
//   - Steps: forward steps from Source to the end, valid when Found.
//   - Source: index of the goal cell reached, -1 when not Found.
//   - Expanded: cells dequeued, the goal cell included.
//   - Path: Source…end inclusive when WithReturnPath was given and Found.
type Result struct {
	Steps    int
	Found    bool
	Source   int
	Expanded int
	Path     []int
}
