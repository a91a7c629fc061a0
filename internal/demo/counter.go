// Package demo holds the counter component used by the CLI, the live
// server and the end-to-end tests.
package demo

import (
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// Messages shown by the counter's heading.
const (
	GreetingMessage     = "Hello vmini!"
	CelebrationMessage  = "Congratulations, you have a mini framework! \U0001F680"
	buttonClass         = "p-2 border-2 border-black rounded cursor-pointer"
	headingClass        = "font-sans font-bold text-center text-gray-800"
	headingClassInitial = headingClass + " text-4xl"
	headingClassCounted = headingClass + " text-3xl"
)

// Counter returns the counter component. celebrate, when non-nil, runs the
// first time the count reaches one.
func Counter(celebrate func()) app.Component {
	return app.Component{
		Data: map[string]any{
			"count": 0,
		},
		Methods: map[string]func(*app.Context){
			"increment": func(ctx *app.Context) {
				ctx.Set("count", app.Value[int](ctx, "count")+1)
				if app.Value[int](ctx, "count") == 1 && celebrate != nil {
					celebrate()
				}
			},
		},
		Computed: map[string]func(*app.Context) any{
			"message": func(ctx *app.Context) any {
				if app.Value[int](ctx, "count") > 0 {
					return CelebrationMessage
				}
				return GreetingMessage
			},
		},
		Render: render,
	}
}

func render(ctx *app.Context, h vdom.H) *vdom.VNode {
	count := app.Value[int](ctx, "count")
	heading := headingClassInitial
	if count > 0 {
		heading = headingClassCounted
	}

	return h("div",
		vdom.Props{"class": vdom.Str("min-h-screen flex flex-col gap-y-6 justify-center items-center")},
		vdom.List(
			h("div", vdom.Props{"class": vdom.Str("flex gap-x-6")}, vdom.List(
				h("a", vdom.Props{"href": vdom.Str("https://go.dev"), "target": vdom.Str("_blank")},
					vdom.Child(h("img", vdom.Props{"src": vdom.Str("/go.svg"), "class": vdom.Str("logo w-24 h-24")}, vdom.NoChildren)),
				),
			)),
			h("h1", vdom.Props{"class": vdom.Str(heading)}, vdom.Text(app.Value[string](ctx, "message"))),
			h("button",
				vdom.Props{
					"onClick": vdom.On(ctx.Method("increment")),
					"class":   vdom.Str(buttonClass),
				},
				vdom.Textf("count is %d", count),
			),
		),
	)
}
