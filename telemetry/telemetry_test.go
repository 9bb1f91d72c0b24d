package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/ridgeline/config"
	"github.com/katalvlaran/ridgeline/telemetry"
)

// restoreGlobals puts the providers that were installed before the test
// back once it finishes.
func restoreGlobals(t *testing.T) {
	t.Helper()
	tp, mp := otel.GetTracerProvider(), otel.GetMeterProvider()
	t.Cleanup(func() {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)
	})
}

func TestInit_NilContext(t *testing.T) {
	//nolint:staticcheck // nil context is the case under test
	_, err := telemetry.Init(nil, config.Default().Telemetry, &bytes.Buffer{})
	assert.ErrorIs(t, err, telemetry.ErrNilContext)
}

func TestInit_None(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer

	shutdown, err := telemetry.Init(context.Background(), config.Default().Telemetry, &buf)
	require.NoError(t, err)

	_, span := otel.Tracer("test").Start(context.Background(), "noop")
	span.End()
	require.NoError(t, shutdown(context.Background()))
	assert.Empty(t, buf.String())
}

func TestInit_Stdout(t *testing.T) {
	restoreGlobals(t)
	var buf bytes.Buffer
	cfg := config.TelemetryConfig{ServiceName: "ridgeline-test", TraceExporter: "stdout", MetricExporter: "stdout"}

	shutdown, err := telemetry.Init(context.Background(), cfg, &buf)
	require.NoError(t, err)

	ctx, span := otel.Tracer("test").Start(context.Background(), "climb")
	counter, err := otel.Meter("test").Int64Counter("steps_total")
	require.NoError(t, err)
	counter.Add(ctx, 31)
	span.End()

	require.NoError(t, shutdown(context.Background()))
	out := buf.String()
	assert.Contains(t, out, `"Name": "climb"`)
	assert.Contains(t, out, "steps_total")
	assert.Contains(t, out, "ridgeline-test")
}

func TestInit_UnknownExporter(t *testing.T) {
	restoreGlobals(t)

	_, err := telemetry.Init(context.Background(), config.TelemetryConfig{TraceExporter: "otlp", MetricExporter: "none"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, telemetry.ErrUnknownExporter)

	_, err = telemetry.Init(context.Background(), config.TelemetryConfig{TraceExporter: "none", MetricExporter: "prometheus"}, &bytes.Buffer{})
	assert.ErrorIs(t, err, telemetry.ErrUnknownExporter)
}
