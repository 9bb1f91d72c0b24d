// Package astar defines options, results and sentinel errors for the
// forward heuristic search over a heightmap.HeightMap.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilMap indicates a nil *heightmap.HeightMap was passed.
	ErrNilMap = errors.New("astar: height map is nil")

	// ErrIndexOutOfRange indicates a start or end index outside the map.
	ErrIndexOutOfRange = errors.New("astar: cell index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Estimate selects which end of an edge the Manhattan estimate attached to
// a new frontier entry is measured from.
type Estimate int

const (
	// EstimateFromSource measures from the cell being expanded, i.e. the
	// predecessor of the entry being inserted. This is the default.
	EstimateFromSource Estimate = iota

	// EstimateFromTarget measures from the neighbour being inserted
	// (textbook A*).
	EstimateFromTarget
)

// String returns "source", "target" or "unknown".
func (e Estimate) String() string {
	switch e {
	case EstimateFromSource:
		return "source"
	case EstimateFromTarget:
		return "target"
	default:
		return "unknown"
	}
}

// ParseEstimate maps "source" (or "") and "target" to an Estimate.
func ParseEstimate(s string) (Estimate, error) {
	switch s {
	case "", "source":
		return EstimateFromSource, nil
	case "target":
		return EstimateFromTarget, nil
	default:
		return 0, fmt.Errorf("%w: unknown estimate %q", ErrOptionViolation, s)
	}
}

// Options configures ShortestPath.
//
// ReturnPath – if true, Result.Path holds the cells from start to end.
// Estimate   – where the heuristic is measured from (default EstimateFromSource).
// OnExpand   – called with (index, distance) each time a cell is expanded.
type Options struct {
	ReturnPath bool
	Estimate   Estimate
	OnExpand   func(idx, dist int)

	// internal error recorded during option parsing
	err error
}

// Option configures ShortestPath via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// DefaultOptions returns Options with no path, the source-based estimate
// and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		Estimate:   EstimateFromSource,
		OnExpand:   func(int, int) {},
	}
}

// WithReturnPath enables reconstruction of the route in Result.Path.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEstimate selects the heuristic anchor. Values other than
// EstimateFromSource and EstimateFromTarget are an ErrOptionViolation.
func WithEstimate(e Estimate) Option {
	return func(o *Options) {
		switch e {
		case EstimateFromSource, EstimateFromTarget:
			o.Estimate = e
		default:
			o.err = fmt.Errorf("%w: unknown estimate %d", ErrOptionViolation, int(e))
		}
	}
}

// WithOnExpand registers a callback run each time a cell is expanded.
func WithOnExpand(fn func(idx, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Result is the outcome of ShortestPath.
//   - Found: false means no legal route exists (not an error).
//   - Steps: number of unit steps on the shortest route, valid when Found.
//   - Expanded: cells expanded, stale frontier entries excluded.
//   - Path: start…end inclusive when WithReturnPath was given and Found.
type Result struct {
	Steps    int
	Found    bool
	Expanded int
	Path     []int
}
