package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/vango-dev/vmini/internal/demo"
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/server"
)

func serveCmd(configDir *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the counter demo live",
		Long: `Serve the counter demo over HTTP. Each browser tab gets its own app,
driven over a WebSocket.

Examples:
  vmini serve
  vmini serve --port=8080
  vmini serve --host=0.0.0.0 --config=./deploy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configDir)
			if err != nil {
				return err
			}

			// Apply command-line overrides
			if port > 0 {
				cfg.Dev.Port = port
			}
			if host != "" {
				cfg.Dev.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := newLogger(cfg, os.Stderr)

			srvCfg := server.DefaultConfig()
			srvCfg.Address = cfg.Addr()
			srvCfg.MetricsPath = ""
			if cfg.Metrics.Enabled {
				srvCfg.MetricsPath = cfg.Metrics.Path
				srvCfg.Metrics = app.NewMetrics(app.WithPrometheusRegistry(prometheus.DefaultRegisterer))
			}

			srv := server.New(srvCfg, func() app.Component { return demo.Counter(nil) })
			srv.SetLogger(logger.With("component", "server"))

			printBanner()
			fmt.Println("  serve")
			fmt.Println()
			info("Listening on http://%s", cfg.Addr())
			if srvCfg.MetricsPath != "" {
				info("Metrics on   http://%s%s", cfg.Addr(), srvCfg.MetricsPath)
			}
			fmt.Println()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vmini.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vmini.json)")

	return cmd
}
