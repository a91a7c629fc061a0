package app

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
	"github.com/vango-dev/vmini/pkg/reactive"
	"github.com/vango-dev/vmini/pkg/vdom"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// App is one mounted component instance.
// It is not safe for concurrent use; callers serialize access.
type App struct {
	component Component
	container dom.Node
	h         vdom.H
	ctx       *Context
	registry  *reactive.Registry

	tree      *vdom.VNode
	mounted   bool
	abandoned bool
	renders   int
	err       error

	logger  *slog.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// CreateApp mounts component into container. The first render pass runs
// before CreateApp returns; its failure is returned as the error.
func CreateApp(component Component, container dom.Node, opts ...Option) (*App, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = reactive.NewRegistry()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	if component.Render == nil {
		return nil, errors.New("E105")
	}
	if container == nil {
		return nil, errors.New("E102").WithDetail("CreateApp needs a container")
	}
	for name := range component.Methods {
		if _, ok := component.Data[name]; ok {
			return nil, errors.New("E106").WithDetailf("method %q is also a data key", name)
		}
	}

	a := &App{
		component: component,
		container: container,
		h:         vdom.NewH(container.OwnerDocument()),
		ctx:       &Context{state: reactive.New(cfg.registry, component.Data)},
		registry:  cfg.registry,
		logger:    cfg.logger,
		metrics:   cfg.metrics,
		tracer:    cfg.tracer,
	}

	a.registry.WatchEffect(a.render)
	if !a.mounted {
		// The registry cannot drop the effect; a shared registry would
		// otherwise keep rendering into the container.
		a.abandoned = true
		return nil, a.err
	}
	return a, nil
}

// render is the effect subscribed to the registry. Each pass re-wires the
// context, then mounts the first tree or replaces the previous one.
func (a *App) render() {
	if a.abandoned {
		return
	}
	phase := PhaseUpdate
	if !a.mounted {
		phase = PhaseMount
	}
	a.renders++

	_, span := a.tracer.Start(context.Background(), "vmini.render",
		trace.WithAttributes(
			attribute.String("vmini.phase", phase),
			attribute.Int("vmini.render", a.renders),
		))
	defer span.End()
	start := time.Now()

	a.wire()

	var err error
	if phase == PhaseMount {
		err = a.mount()
	} else {
		err = a.update()
	}

	if err != nil {
		code := errors.Code(err)
		a.err = err
		a.metrics.observeError(phase, code)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.logger.Error("render failed", "phase", phase, "render", a.renders, "code", code, "error", err)
		return
	}

	elapsed := time.Since(start)
	span.SetStatus(codes.Ok, "")
	a.metrics.observeRender(phase, elapsed.Seconds())
	a.logger.Debug("rendered", "phase", phase, "render", a.renders, "duration", elapsed)

	if phase == PhaseMount {
		if a.component.Mounted != nil {
			a.component.Mounted(a.ctx)
		}
		return
	}
	if a.component.Updated != nil {
		a.component.Updated(a.ctx)
	}
}

// wire stores methods and computed results on the context and registers
// watchers. Names are processed in sorted order.
func (a *App) wire() {
	for _, name := range sortedKeys(a.component.Methods) {
		method := a.component.Methods[name]
		a.ctx.Set(name, func() { method(a.ctx) })
	}

	for _, name := range sortedKeys(a.component.Computed) {
		a.ctx.Set(name, a.component.Computed[name](a.ctx))
	}

	for _, key := range sortedKeys(a.component.Watch) {
		cb := a.component.Watch[key]
		a.registry.Watch(func(newValue, oldValue any) {
			cb(a.ctx, newValue, oldValue)
		}, key)
	}
}

func (a *App) mount() error {
	tree := a.component.Render(a.ctx, a.h)
	if tree == nil {
		return errors.New("E103")
	}
	a.tree = tree
	if err := vdom.Mount(tree, a.container, nil); err != nil {
		return errors.New("E104").Wrap(err)
	}
	a.mounted = true
	return nil
}

func (a *App) update() error {
	next := a.component.Render(a.ctx, a.h)
	if next == nil {
		return errors.New("E103")
	}
	if err := vdom.Diff(a.tree, next, a.container); err != nil {
		return errors.New("E104").Wrap(err)
	}
	a.tree = next
	return nil
}

// Context returns the app's reactive context.
func (a *App) Context() *Context { return a.ctx }

// Tree returns the currently mounted tree.
func (a *App) Tree() *vdom.VNode { return a.tree }

// Container returns the node the app is mounted into.
func (a *App) Container() dom.Node { return a.container }

// Registry returns the registry the app's render pass is subscribed to.
func (a *App) Registry() *reactive.Registry { return a.registry }

// Renders returns the number of render passes run so far.
func (a *App) Renders() int { return a.renders }

// Err returns the error of the most recent failed render pass, if any.
func (a *App) Err() error { return a.err }

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
