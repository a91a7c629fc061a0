package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/vmini/pkg/app"
)

// Config configures the live server.
type Config struct {
	// Address is the address to listen on.
	// Default: "localhost:3000"
	Address string

	// MetricsPath is the path the Prometheus handler is mounted on.
	// Empty disables the handler.
	MetricsPath string

	// Gatherer is scraped by the metrics handler.
	// Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	// Metrics records render passes of every session's app.
	// Nil records nothing.
	Metrics *app.Metrics

	// ReadBufferSize is the WebSocket read buffer size in bytes.
	// Default: 1024
	ReadBufferSize int

	// WriteBufferSize is the WebSocket write buffer size in bytes.
	// Default: 4096
	WriteBufferSize int

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: same-origin check
	CheckOrigin func(r *http.Request) bool

	// ReadTimeout is the maximum idle time between live messages.
	// Default: 5 minutes
	ReadTimeout time.Duration

	// WriteTimeout is the deadline for each live reply.
	// Default: 10 seconds
	WriteTimeout time.Duration

	// ReadHeaderTimeout is the HTTP server's header read timeout.
	// Default: 5 seconds
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	// Default: 10 seconds
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           "localhost:3000",
		MetricsPath:       "/metrics",
		Gatherer:          prometheus.DefaultGatherer,
		ReadBufferSize:    1024,
		WriteBufferSize:   4096,
		ReadTimeout:       5 * time.Minute,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig. MetricsPath is kept
// as given, so an empty path disables metrics.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.Gatherer == nil {
		out.Gatherer = defaults.Gatherer
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = defaults.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = defaults.WriteBufferSize
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = defaults.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	return &out
}

func (c *Config) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  c.ReadBufferSize,
		WriteBufferSize: c.WriteBufferSize,
		CheckOrigin:     c.CheckOrigin,
	}
}
