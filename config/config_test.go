package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ridgeline/config"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Telemetry.TraceExporter)
	assert.Equal(t, "source", cfg.Search.Estimate)
	assert.False(t, cfg.Search.ReturnPath)
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := config.Parse([]byte(`
log:
  level: debug
  json: true
search:
  return_path: true
  estimate: target
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Search.ReturnPath)
	assert.Equal(t, "target", cfg.Search.Estimate)
	assert.Equal(t, "ridgeline", cfg.Telemetry.ServiceName, "unset keys keep defaults")
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"level":    "log: {level: loud}",
		"trace":    "telemetry: {trace_exporter: jaeger}",
		"metric":   "telemetry: {metric_exporter: prometheus}",
		"estimate": "search: {estimate: euclid}",
		"syntax":   "log: [level",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ridgeline.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\ntelemetry:\n  trace_exporter: stdout\n"), 0o600))

	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogJSON, "true")
	t.Setenv(config.EnvEstimate, "target")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level, "environment wins over the file")
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "stdout", cfg.Telemetry.TraceExporter)
	assert.Equal(t, "target", cfg.Search.Estimate)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv(config.EnvMetricExporter, "carrier-pigeon")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}
