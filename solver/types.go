package solver

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/ridgeline/astar"
)

// Sentinel errors for the solver.
var (
	// ErrOptionViolation is returned by New when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrParse wraps every error raised while reading the map.
	ErrParse = errors.New("solver: cannot parse height map")

	// ErrNilMap is returned by SolveMap for a nil map.
	ErrNilMap = errors.New("solver: height map is nil")
)

// Option configures a Solver via functional arguments.
type Option func(*Options)

// Options holds the search settings and the telemetry providers.
type Options struct {
	// ReturnPath asks both searches for their routes.
	ReturnPath bool

	// Estimate is passed to the forward search.
	Estimate astar.Estimate

	// TracerProvider and MeterProvider default to the global providers at
	// the time New is called.
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns no paths, the source-anchored estimate and nil
// providers (resolved to the globals by New).
func DefaultOptions() Options {
	return Options{
		ReturnPath: false,
		Estimate:   astar.EstimateFromSource,
	}
}

// WithReturnPath asks both searches for their routes, which enables
// Report.Render.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithEstimate selects the forward estimate anchor.
func WithEstimate(e astar.Estimate) Option {
	return func(o *Options) {
		switch e {
		case astar.EstimateFromSource, astar.EstimateFromTarget:
			o.Estimate = e
		default:
			o.err = fmt.Errorf("%w: unknown estimate %d", ErrOptionViolation, int(e))
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *Options) {
		if mp != nil {
			o.MeterProvider = mp
		}
	}
}
