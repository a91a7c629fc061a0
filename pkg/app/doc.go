// Package app hosts a vmini component: it builds the reactive context,
// wires methods, computed values and watchers onto it, and drives the
// mount-then-update cycle.
//
// # Components
//
//	counter := app.Component{
//	    Data: map[string]any{"count": 0},
//	    Methods: map[string]func(*app.Context){
//	        "increment": func(ctx *app.Context) {
//	            ctx.Set("count", app.Value[int](ctx, "count")+1)
//	        },
//	    },
//	    Render: func(ctx *app.Context, h vdom.H) *vdom.VNode {
//	        return h("button",
//	            vdom.Props{"onClick": vdom.On(ctx.Method("increment"))},
//	            vdom.Textf("count is %d", app.Value[int](ctx, "count")))
//	    },
//	}
//
//	a, err := app.CreateApp(counter, container)
//
// CreateApp mounts synchronously. Every later change to a data key re-runs
// the render pass before Set returns: methods and computed values are
// re-wired, the component renders again and the previous tree is replaced
// in full.
//
// # Observability
//
// Render passes are logged with log/slog, counted and timed through
// Prometheus collectors (see NewMetrics) and traced with one OpenTelemetry
// span each. All three are optional.
package app
