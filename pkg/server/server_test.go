package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/vmini/internal/demo"
	"github.com/vango-dev/vmini/pkg/app"
)

var buttonID = regexp.MustCompile(`<button[^>]*data-vmini-id="(\d+)">`)

func newTestServer(t *testing.T) (*Server, *httptest.Server, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	s := New(&Config{
		MetricsPath: "/metrics",
		Gatherer:    reg,
		Metrics:     app.NewMetrics(app.WithPrometheusRegistry(reg)),
	}, func() app.Component { return demo.Counter(nil) })

	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts, reg
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/live"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readReply(t *testing.T, conn *websocket.Conn) Reply {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var r Reply
	require.NoError(t, conn.ReadJSON(&r))
	return r
}

func clickButton(t *testing.T, conn *websocket.Conn, html string) Reply {
	t.Helper()
	m := buttonID.FindStringSubmatch(html)
	require.Len(t, m, 2, "button not found in %s", html)
	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"id":`+m[1]+`,"event":"click"}`)))
	return readReply(t, conn)
}

func TestPage(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), `<div id="app">`)
	assert.Contains(t, string(body), "count is 0")
	assert.Contains(t, string(body), demo.GreetingMessage)
	assert.Contains(t, string(body), `new WebSocket`)
	assert.NotContains(t, string(body), "onclick=", "inline handlers must not reach the browser")

	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)
}

func TestLiveSession(t *testing.T) {
	s, ts, _ := newTestServer(t)
	conn := dial(t, ts)

	initial := readReply(t, conn)
	assert.Contains(t, initial.HTML, "count is 0")
	assert.Equal(t, 1, initial.Renders)
	assert.NotContains(t, initial.HTML, "onclick=")
	assert.Equal(t, int64(1), s.ActiveSessions())

	reply := clickButton(t, conn, initial.HTML)
	assert.Empty(t, reply.Error)
	assert.Contains(t, reply.HTML, "count is 1")
	assert.Contains(t, reply.HTML, demo.CelebrationMessage)
	assert.Equal(t, 2, reply.Renders)
	assert.NotContains(t, reply.HTML, "onclick=")

	reply = clickButton(t, conn, reply.HTML)
	assert.Contains(t, reply.HTML, "count is 2")
}

func TestLiveSessionsAreIndependent(t *testing.T) {
	_, ts, _ := newTestServer(t)
	first := dial(t, ts)
	second := dial(t, ts)

	clickButton(t, first, readReply(t, first).HTML)
	initial := readReply(t, second)

	assert.Contains(t, initial.HTML, "count is 0")
}

func TestLiveErrors(t *testing.T) {
	_, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	readReply(t, conn)

	tests := []struct {
		name string
		msg  string
		code string
	}{
		{"not json", `click`, "E302"},
		{"no event", `{"id":1}`, "E302"},
		{"unknown id", `{"id":99999,"event":"click"}`, "E303"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.msg)))
			reply := readReply(t, conn)
			assert.Equal(t, tt.code, reply.Code)
			assert.NotEmpty(t, reply.Error)
			assert.Empty(t, reply.HTML)
		})
	}
}

func TestHealthz(t *testing.T) {
	_, ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(0), body["sessions"])
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts, _ := newTestServer(t)
	conn := dial(t, ts)
	clickButton(t, conn, readReply(t, conn).HTML)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	assert.Contains(t, string(body), `vmini_renders_total{phase="mount"} 1`)
	assert.Contains(t, string(body), `vmini_renders_total{phase="update"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	s := New(&Config{}, func() app.Component { return demo.Counter(nil) })
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeShutsDownOnCancel(t *testing.T) {
	s := New(nil, func() app.Component { return demo.Counter(nil) })
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
