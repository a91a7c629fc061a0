package reactive

import mapset "github.com/deckarep/golang-set/v2"

// Effect is a plain observer. It runs on every notification.
type Effect func()

// WatchFunc observes a single key and receives its new and old values.
type WatchFunc func(newValue, oldValue any)

// observer is a registry entry: either a plain effect or a watch pair.
type observer struct {
	effect   Effect
	state    string
	callback WatchFunc
}

// Registry is an append-only list of observers notified on state change.
// It is not safe for concurrent use.
type Registry struct {
	observers []observer

	// watched holds every key that already has a watch entry.
	watched mapset.Set[string]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		watched: mapset.NewThreadUnsafeSet[string](),
	}
}

// Subscribe appends a plain effect. Subscribing the same effect twice adds
// two entries.
func (r *Registry) Subscribe(effect Effect) {
	r.observers = append(r.observers, observer{effect: effect})
}

// Watch registers callback for state unless state already has a watch
// entry, in which case the call is dropped. It reports whether the
// callback was registered.
func (r *Registry) Watch(callback WatchFunc, state string) bool {
	if callback == nil || r.watched.Contains(state) {
		return false
	}
	r.watched.Add(state)
	r.observers = append(r.observers, observer{state: state, callback: callback})
	return true
}

// WatchEffect subscribes effect and runs it once immediately.
func (r *Registry) WatchEffect(effect Effect) {
	r.Subscribe(effect)
	if effect != nil {
		effect()
	}
}

// Notify runs the observers registered when the call started, in
// subscription order. Observers added while notifying run from the next
// notification on.
func (r *Registry) Notify(state string, newValue, oldValue any) {
	for _, o := range r.observers {
		switch {
		case o.callback != nil:
			if o.state == state {
				o.callback(newValue, oldValue)
			}
		case o.effect != nil:
			o.effect()
		}
	}
}

// Len returns the number of registered observers.
func (r *Registry) Len() int {
	return len(r.observers)
}

// Watched reports whether state has a watch entry.
func (r *Registry) Watched(state string) bool {
	return r.watched.Contains(state)
}
