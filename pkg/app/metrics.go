package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Render phases used as metric labels and span attributes.
const (
	PhaseMount  = "mount"
	PhaseUpdate = "update"
)

// MetricsConfig configures the render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vmini").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithPrometheusRegistry sets the Prometheus registry.
func WithPrometheusRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vmini",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for render passes.
// A nil *Metrics records nothing.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	appsMounted    prometheus.Gauge
}

// NewMetrics creates and registers the render collectors.
//
// Metrics collected:
//   - vmini_renders_total: Counter of render passes by phase
//   - vmini_render_duration_seconds: Histogram of render pass duration by phase
//   - vmini_render_errors_total: Counter of failed render passes by phase and code
//   - vmini_apps_mounted: Gauge of apps whose first render pass succeeded
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"phase"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render pass duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"phase"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_errors_total",
			Help:        "Total number of failed render passes",
			ConstLabels: config.ConstLabels,
		}, []string{"phase", "code"}),

		appsMounted: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "apps_mounted",
			Help:        "Number of apps whose first render pass succeeded",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) observeRender(phase string, seconds float64) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(phase).Inc()
	m.renderDuration.WithLabelValues(phase).Observe(seconds)
	if phase == PhaseMount {
		m.appsMounted.Inc()
	}
}

func (m *Metrics) observeError(phase, code string) {
	if m == nil {
		return
	}
	m.renderErrors.WithLabelValues(phase, code).Inc()
}

// AppClosed decrements the mounted apps gauge. Hosts that discard apps
// (the live server, per session) call it when they drop one.
func (m *Metrics) AppClosed() {
	if m == nil {
		return
	}
	m.appsMounted.Dec()
}
