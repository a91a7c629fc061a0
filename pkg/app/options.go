package app

import (
	"log/slog"

	"github.com/vango-dev/vmini/pkg/reactive"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name for vmini applications.
const defaultTracerName = "vmini"

// config holds the host options.
type config struct {
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	registry *reactive.Registry
}

// Option configures CreateApp.
type Option func(*config)

// WithLogger sets the logger. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records render passes on m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithTracer sets the tracer. Default: the global provider's "vmini" tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		c.tracer = tracer
	}
}

// WithRegistry makes the app subscribe to an existing registry instead of
// creating its own. Apps sharing a registry re-render on each other's
// changes and share the one-watch-per-key rule.
func WithRegistry(r *reactive.Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

func defaultConfig() config {
	return config{
		logger: slog.Default(),
		tracer: otel.Tracer(defaultTracerName),
	}
}
