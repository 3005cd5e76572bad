// Package observability sets up the logger, tracer and metrics registry
// shared by the tournament module.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Config describes the running service.
type Config struct {
	ServiceName string
	Environment string
	Version     string
	LogLevel    string
	LogFormat   string // json|text

	// Output defaults to os.Stdout.
	Output io.Writer
}

// Observability bundles the handles a module needs.
type Observability struct {
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Registry *prometheus.Registry
}

// Init builds a logger from cfg, a tracer from the global otel provider and
// a fresh Prometheus registry carrying the Go and process collectors.
func Init(cfg Config) (Observability, error) {
	logger, err := NewLogger(cfg)
	if err != nil {
		return Observability{}, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return Observability{
		Logger:   logger,
		Tracer:   otel.Tracer(cfg.ServiceName),
		Registry: reg,
	}, nil
}

// NewLogger returns a slog logger tagged with the service name, environment
// and version.
func NewLogger(cfg Config) (*slog.Logger, error) {
	var level slog.Level
	if cfg.LogLevel != "" {
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.LogFormat) {
	case "", "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("invalid log format %q (want json or text)", cfg.LogFormat)
	}

	return slog.New(handler).With(
		slog.String("service", cfg.ServiceName),
		slog.String("environment", cfg.Environment),
		slog.String("version", cfg.Version),
	), nil
}
