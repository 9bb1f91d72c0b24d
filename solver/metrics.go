package solver

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName scopes the solver's tracer and meter.
const instrumentationName = "github.com/katalvlaran/ridgeline/solver"

// instruments are the metrics recorded per run and per search.
type instruments struct {
	solveTotal     metric.Int64Counter
	searchLatency  metric.Float64Histogram
	cellsExpanded  metric.Int64Counter
	routesNotFound metric.Int64Counter
}

func newInstruments(meter metric.Meter) (*instruments, error) {
	var (
		in  instruments
		err error
	)

	in.solveTotal, err = meter.Int64Counter(
		"ridgeline_solve_total",
		metric.WithDescription("Total number of solve runs"),
	)
	if err != nil {
		return nil, err
	}

	in.searchLatency, err = meter.Float64Histogram(
		"ridgeline_search_duration_seconds",
		metric.WithDescription("Duration of a single search"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	in.cellsExpanded, err = meter.Int64Counter(
		"ridgeline_cells_expanded_total",
		metric.WithDescription("Cells expanded by searches"),
	)
	if err != nil {
		return nil, err
	}

	in.routesNotFound, err = meter.Int64Counter(
		"ridgeline_routes_not_found_total",
		metric.WithDescription("Searches that found no legal route"),
	)
	if err != nil {
		return nil, err
	}

	return &in, nil
}

// recordSolve counts one run.
func (in *instruments) recordSolve(ctx context.Context, success bool) {
	in.solveTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

// recordSearch records the duration and effort of one search.
func (in *instruments) recordSearch(ctx context.Context, search string, d time.Duration, expanded int, found bool) {
	attrs := metric.WithAttributes(attribute.String("search", search))

	in.searchLatency.Record(ctx, d.Seconds(), attrs)
	in.cellsExpanded.Add(ctx, int64(expanded), attrs)
	if !found {
		in.routesNotFound.Add(ctx, 1, attrs)
	}
}

// setSearchSpanResult sets the result attributes on a search span.
func setSearchSpanResult(span trace.Span, steps, expanded int, found bool) {
	span.SetAttributes(
		attribute.Bool("search.found", found),
		attribute.Int("search.steps", steps),
		attribute.Int("search.expanded", expanded),
	)
}

// failSpan records err on span and marks it failed.
func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
