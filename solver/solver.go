package solver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ridgeline/astar"
	"github.com/katalvlaran/ridgeline/descent"
	"github.com/katalvlaran/ridgeline/heightmap"
	"github.com/katalvlaran/ridgeline/logging"
)

// Solver runs both searches over a height map. A Solver holds no per-run
// state and is safe for concurrent use.
type Solver struct {
	logger *slog.Logger
	opts   Options
	tracer trace.Tracer
	inst   *instruments
}

// New returns a Solver that logs to logger (records are dropped when logger
// is nil). Returns ErrOptionViolation for an invalid Option, or the error
// raised while registering metric instruments.
func New(logger *slog.Logger, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.TracerProvider == nil {
		o.TracerProvider = otel.GetTracerProvider()
	}
	if o.MeterProvider == nil {
		o.MeterProvider = otel.GetMeterProvider()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	inst, err := newInstruments(o.MeterProvider.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("solver: register metrics: %w", err)
	}

	return &Solver{
		logger: logger,
		opts:   o,
		tracer: o.TracerProvider.Tracer(instrumentationName),
		inst:   inst,
	}, nil
}

// Solve reads a height map from r and answers both questions.
// Malformed input is reported as ErrParse wrapping the heightmap error.
func (s *Solver) Solve(ctx context.Context, r io.Reader) (*Report, error) {
	runID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "Solver.Solve",
		trace.WithAttributes(attribute.String("ridgeline.run_id", runID)),
	)
	defer span.End()
	logger := s.logger.With(slog.String("run_id", runID))

	hm, err := heightmap.Parse(r)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParse, err)
		failSpan(span, err)
		s.inst.recordSolve(ctx, false)
		logger.Error("parse failed", slog.Any("error", err))

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("ridgeline.width", hm.Width),
		attribute.Int("ridgeline.height", hm.Height),
	)
	logger.Debug("map parsed",
		slog.Int("width", hm.Width),
		slog.Int("height", hm.Height),
		slog.Int("lowlands", len(hm.Lowlands())),
	)

	rep, err := s.run(ctx, logger, runID, hm)
	if err != nil {
		failSpan(span, err)
		s.inst.recordSolve(ctx, false)

		return nil, err
	}
	s.inst.recordSolve(ctx, true)

	return rep, nil
}

// SolveMap answers both questions for an already parsed map.
func (s *Solver) SolveMap(ctx context.Context, hm *heightmap.HeightMap) (*Report, error) {
	if hm == nil {
		return nil, ErrNilMap
	}
	runID := uuid.NewString()
	ctx, span := s.tracer.Start(ctx, "Solver.SolveMap",
		trace.WithAttributes(attribute.String("ridgeline.run_id", runID)),
	)
	defer span.End()

	rep, err := s.run(ctx, s.logger.With(slog.String("run_id", runID)), runID, hm)
	if err != nil {
		failSpan(span, err)
		s.inst.recordSolve(ctx, false)

		return nil, err
	}
	s.inst.recordSolve(ctx, true)

	return rep, nil
}

// run executes the forward and reverse searches concurrently. Each search
// writes only its own Report field.
func (s *Solver) run(ctx context.Context, logger *slog.Logger, runID string, hm *heightmap.HeightMap) (*Report, error) {
	rep := &Report{
		RunID:  runID,
		Width:  hm.Width,
		Height: hm.Height,
		hm:     hm,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.forward(gCtx, logger, hm)
		if err != nil {
			return err
		}
		rep.Forward = res

		return nil
	})
	g.Go(func() error {
		res, err := s.reverse(gCtx, logger, hm)
		if err != nil {
			return err
		}
		rep.Reverse = res

		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("solved",
		slog.Bool("forward_found", rep.Forward.Found),
		slog.Int("forward_steps", rep.Forward.Steps),
		slog.Bool("reverse_found", rep.Reverse.Found),
		slog.Int("reverse_steps", rep.Reverse.Steps),
	)

	return rep, nil
}

func (s *Solver) forward(ctx context.Context, logger *slog.Logger, hm *heightmap.HeightMap) (astar.Result, error) {
	if err := ctx.Err(); err != nil {
		return astar.Result{}, err
	}
	ctx, span := s.tracer.Start(ctx, "astar.ShortestPath",
		trace.WithAttributes(attribute.String("search.estimate", s.opts.Estimate.String())),
	)
	defer span.End()

	opts := []astar.Option{astar.WithEstimate(s.opts.Estimate)}
	if s.opts.ReturnPath {
		opts = append(opts, astar.WithReturnPath())
	}

	began := time.Now()
	res, err := astar.ShortestPath(hm, hm.Start, hm.End, opts...)
	if err != nil {
		failSpan(span, err)
		return astar.Result{}, fmt.Errorf("solver: forward search: %w", err)
	}
	elapsed := time.Since(began)

	setSearchSpanResult(span, res.Steps, res.Expanded, res.Found)
	s.inst.recordSearch(ctx, "forward", elapsed, res.Expanded, res.Found)
	logger.Debug("forward search done",
		slog.Bool("found", res.Found),
		slog.Int("steps", res.Steps),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}

func (s *Solver) reverse(ctx context.Context, logger *slog.Logger, hm *heightmap.HeightMap) (descent.Result, error) {
	if err := ctx.Err(); err != nil {
		return descent.Result{}, err
	}
	ctx, span := s.tracer.Start(ctx, "descent.ShortestFromAnyZero")
	defer span.End()

	var opts []descent.Option
	if s.opts.ReturnPath {
		opts = append(opts, descent.WithReturnPath())
	}

	began := time.Now()
	res, err := descent.ShortestFromAnyZero(hm, hm.End, opts...)
	if err != nil {
		failSpan(span, err)
		return descent.Result{}, fmt.Errorf("solver: reverse search: %w", err)
	}
	elapsed := time.Since(began)

	setSearchSpanResult(span, res.Steps, res.Expanded, res.Found)
	s.inst.recordSearch(ctx, "reverse", elapsed, res.Expanded, res.Found)
	logger.Debug("reverse search done",
		slog.Bool("found", res.Found),
		slog.Int("steps", res.Steps),
		slog.Int("source", res.Source),
		slog.Int("expanded", res.Expanded),
		slog.Duration("elapsed", elapsed),
	)

	return res, nil
}
