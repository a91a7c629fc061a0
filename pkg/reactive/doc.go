// Package reactive provides the state container and dependency registry
// behind a vmini application.
//
// A State wraps a plain key/value bag. Every key present when the State is
// created becomes an intercepted cell: reads are plain, writes go through
// change detection and, on a real change, notify the Registry.
//
//	reg := reactive.NewRegistry()
//	st := reactive.New(reg, map[string]any{"count": 0})
//
//	reg.WatchEffect(func() {
//	    fmt.Println("count is", st.Get("count"))
//	})                     // prints "count is 0"
//	st.Set("count", 1)     // prints "count is 1"
//	st.Set("count", 1)     // equal value, nothing printed
//
// # Change detection
//
// A write is skipped when the old and new values are both primitives (nil,
// booleans, strings, numbers) and equal, or when both are composites whose
// canonical JSON encodings are identical. Every other write is stored and
// notified, including writes of values that cannot be encoded (functions,
// channels, cyclic structures).
//
// # Registry
//
// The Registry is an append-only observer list. Plain effects run on every
// notification, whichever key changed. Watch entries run only for their own
// key and receive the new and old values. Only the first Watch for a key is
// kept. Notification is synchronous: Set returns after every observer ran.
//
// Registries are owned by whoever creates them; nothing is shared between
// applications unless the same Registry is passed to both.
package reactive
