// Package server serves a component over HTTP and keeps one live app per
// WebSocket connection.
//
// Routes:
//
//	GET /         server-rendered page plus the live client script
//	GET /live     WebSocket: click messages in, HTML snapshots out
//	GET /metrics  Prometheus exposition (when Config.MetricsPath is set)
//	GET /healthz  liveness and active session count
//
// Live protocol (JSON text frames):
//
//	client → server  {"id": 7, "event": "click"}
//	server → client  {"html": "...", "renders": 2}
//	server → client  {"error": "...", "code": "E303"}
//
// Element IDs are the data-vmini-id attributes of the last snapshot.
//
// Usage:
//
//	srv := server.New(nil, func() app.Component { return demo.Counter(nil) })
//	log.Fatal(srv.Run(ctx))
package server
