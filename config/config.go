// Package config loads ridgeline's runtime settings from YAML, with
// defaults and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate and wrapped by Load and Parse.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables that override file and default values.
const (
	EnvLogLevel       = "RIDGELINE_LOG_LEVEL"
	EnvLogJSON        = "RIDGELINE_LOG_JSON"
	EnvTraceExporter  = "RIDGELINE_TRACE_EXPORTER"
	EnvMetricExporter = "RIDGELINE_METRIC_EXPORTER"
	EnvEstimate       = "RIDGELINE_ESTIMATE"
)

// Config is the full set of runtime settings.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Search    SearchConfig    `yaml:"search"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// JSON switches from the text handler to the JSON handler.
	JSON bool `yaml:"json"`
}

// TelemetryConfig selects the OpenTelemetry exporters.
type TelemetryConfig struct {
	// ServiceName identifies this process in spans and metrics.
	ServiceName string `yaml:"service_name"`

	// TraceExporter is "stdout" or "none".
	TraceExporter string `yaml:"trace_exporter"`

	// MetricExporter is "stdout" or "none".
	MetricExporter string `yaml:"metric_exporter"`
}

// SearchConfig tunes both searches.
type SearchConfig struct {
	// ReturnPath asks both searches for their routes.
	ReturnPath bool `yaml:"return_path"`

	// Estimate is the forward estimate anchor: "source" or "target".
	Estimate string `yaml:"estimate"`
}

// Default returns text logs at info level, no telemetry export, no paths
// and the source-anchored estimate.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		Telemetry: TelemetryConfig{
			ServiceName:    "ridgeline",
			TraceExporter:  "none",
			MetricExporter: "none",
		},
		Search: SearchConfig{
			ReturnPath: false,
			Estimate:   "source",
		},
	}
}

// Load reads the YAML file at path over Default, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalidConfig, path, err)
		}
	}
	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Parse decodes YAML over Default and validates it. Environment variables
// are not consulted.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects unknown log levels, exporters and estimate anchors.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	if !validExporter(c.Telemetry.TraceExporter) {
		return fmt.Errorf("%w: telemetry.trace_exporter %q", ErrInvalidConfig, c.Telemetry.TraceExporter)
	}
	if !validExporter(c.Telemetry.MetricExporter) {
		return fmt.Errorf("%w: telemetry.metric_exporter %q", ErrInvalidConfig, c.Telemetry.MetricExporter)
	}
	switch c.Search.Estimate {
	case "source", "target":
	default:
		return fmt.Errorf("%w: search.estimate %q", ErrInvalidConfig, c.Search.Estimate)
	}

	return nil
}

func validExporter(name string) bool {
	return name == "none" || name == "stdout"
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvLogJSON); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.JSON = b
		}
	}
	if v := os.Getenv(EnvTraceExporter); v != "" {
		cfg.Telemetry.TraceExporter = v
	}
	if v := os.Getenv(EnvMetricExporter); v != "" {
		cfg.Telemetry.MetricExporter = v
	}
	if v := os.Getenv(EnvEstimate); v != "" {
		cfg.Search.Estimate = v
	}
}
