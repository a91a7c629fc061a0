package app

import (
	"github.com/vango-dev/vmini/pkg/reactive"
	"github.com/vango-dev/vmini/pkg/vdom"
)

// Component describes a component. The host reads it at setup and on every
// render pass; it never modifies it.
type Component struct {
	// Render returns the tree for the current context. It is called once
	// per render pass and must return a new tree each time.
	Render func(ctx *Context, h vdom.H) *vdom.VNode

	// Data is the initial state. Every key becomes reactive.
	Data map[string]any

	// Methods are wired onto the context as zero-argument functions.
	Methods map[string]func(ctx *Context)

	// Computed values are evaluated on every render pass and stored on
	// the context under their name.
	Computed map[string]func(ctx *Context) any

	// Watch callbacks run when the named data key changes.
	Watch map[string]func(ctx *Context, newValue, oldValue any)

	// Mounted runs after the first render pass is mounted.
	Mounted func(ctx *Context)

	// Updated runs after every later render pass replaced the tree.
	Updated func(ctx *Context)
}

// Context is the reactive context handed to render functions, methods,
// computed values and hooks. It exposes component state, wired methods
// and computed results under one namespace.
type Context struct {
	state *reactive.State
}

// Get returns the value stored under key: a data value, a computed
// result or a wired method.
func (c *Context) Get(key string) any {
	return c.state.Get(key)
}

// Set writes key. Data keys notify on change and re-render; other keys
// are stored as plain values.
func (c *Context) Set(key string, value any) {
	c.state.Set(key, value)
}

// Method returns the wired method name, or nil if there is none.
func (c *Context) Method(name string) func() {
	fn, _ := c.state.Get(name).(func())
	return fn
}

// Call invokes the wired method name. It reports whether the method exists.
func (c *Context) Call(name string) bool {
	fn := c.Method(name)
	if fn == nil {
		return false
	}
	fn()
	return true
}

// State returns the underlying reactive state.
func (c *Context) State() *reactive.State {
	return c.state
}

// Value returns the value under key as a T, or T's zero value when the key
// is missing or holds another type.
func Value[T any](c *Context, key string) T {
	v, _ := c.Get(key).(T)
	return v
}
