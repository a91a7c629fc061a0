package main

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/vango-dev/vmini/internal/config"
	"github.com/vango-dev/vmini/internal/demo"
	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/dom"
)

// loadConfig loads the config in dir. With no dir, the working directory
// is used when it holds a config file and defaults otherwise.
func loadConfig(dir string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case dir != "":
		loaded, err := config.Load(dir)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.Exists("."):
		loaded, err := config.Load(".")
		if err != nil {
			return nil, err
		}
		cfg = loaded
	default:
		cfg = config.New()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg, writing to w.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	level, _ := cfg.LogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Log.Format == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// renderResult is the outcome of driving the demo.
type renderResult struct {
	HTML       string
	Size       int
	Renders    int
	Listeners  int
	Celebrated bool
}

// renderDemo mounts the counter, clicks its button clicks times and
// serializes the result.
func renderDemo(clicks int, ids bool, logger *slog.Logger) (*renderResult, error) {
	if clicks < 0 {
		return nil, errors.New("E401").WithDetail("--clicks must not be negative")
	}

	doc := dom.NewDocument()
	node, err := doc.CreateElement("div")
	if err != nil {
		return nil, err
	}
	root := node.(*dom.Element)

	res := &renderResult{}
	a, err := app.CreateApp(demo.Counter(func() { res.Celebrated = true }), root, app.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	for i := 0; i < clicks; i++ {
		button := findButton(root)
		if button == nil {
			return nil, errors.New("E303").WithDetail("counter has no button")
		}
		button.Dispatch("click")
		if err := a.Err(); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dom.RenderChildren(&buf, root, dom.RenderOptions{IDs: ids}); err != nil {
		return nil, err
	}
	res.HTML = buf.String()
	res.Renders = a.Renders()
	res.Listeners = doc.ListenerCount()
	res.Size = buf.Len()
	return res, nil
}

func findButton(e *dom.Element) *dom.Element {
	if e.Tag() == "button" {
		return e
	}
	for _, c := range e.Children() {
		if found := findButton(c); found != nil {
			return found
		}
	}
	return nil
}
