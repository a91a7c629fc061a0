package reactive

import "sort"

// cell holds the current value of an intercepted key.
type cell struct {
	value any
}

// State is a key/value bag whose initial keys are intercepted.
// Keys written later without having been in the initial data are stored
// as plain values and never notify.
type State struct {
	registry *Registry
	cells    map[string]*cell
	plain    map[string]any
}

// New wraps data. Every key of data becomes an intercepted cell that
// notifies registry on change. data itself is not retained.
func New(registry *Registry, data map[string]any) *State {
	s := &State{
		registry: registry,
		cells:    make(map[string]*cell, len(data)),
		plain:    make(map[string]any),
	}
	for k, v := range data {
		s.cells[k] = &cell{value: v}
	}
	return s
}

// Registry returns the registry the state notifies.
func (s *State) Registry() *Registry {
	return s.registry
}

// Get returns the value stored under key, or nil.
func (s *State) Get(key string) any {
	v, _ := s.Lookup(key)
	return v
}

// Lookup returns the value stored under key and whether the key exists.
func (s *State) Lookup(key string) (any, bool) {
	if c, ok := s.cells[key]; ok {
		return c.value, true
	}
	v, ok := s.plain[key]
	return v, ok
}

// Has reports whether key is intercepted.
func (s *State) Has(key string) bool {
	_, ok := s.cells[key]
	return ok
}

// Set writes value under key. For an intercepted key an equal value is
// ignored; any other value is stored and then notified as
// (key, value, previous). Keys that are not intercepted are stored plainly.
func (s *State) Set(key string, value any) {
	c, ok := s.cells[key]
	if !ok {
		s.plain[key] = value
		return
	}

	old := c.value
	if Equal(old, value) {
		return
	}
	c.value = value
	if s.registry != nil {
		s.registry.Notify(key, value, old)
	}
}

// Keys returns the intercepted keys, sorted.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.cells))
	for k := range s.cells {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Snapshot returns a copy of every intercepted and plain value.
func (s *State) Snapshot() map[string]any {
	out := make(map[string]any, len(s.cells)+len(s.plain))
	for k, v := range s.plain {
		out[k] = v
	}
	for k, c := range s.cells {
		out[k] = c.value
	}
	return out
}
