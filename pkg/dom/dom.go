package dom

// Document creates display-tree nodes.
type Document interface {
	// CreateElement creates a detached element for tag.
	// It fails when the tag is not a valid element name.
	CreateElement(tag string) (Node, error)

	// CreateTextNode creates a detached text node.
	CreateTextNode(text string) Node
}

// Node is a live display-tree node.
type Node interface {
	// Parent returns the node's parent, or nil when detached.
	Parent() Node

	// OwnerDocument returns the document that created the node.
	OwnerDocument() Document

	// AppendChild attaches child as the last child of this node.
	AppendChild(child Node) error

	// InsertBefore attaches child immediately before ref, which must be a
	// child of this node.
	InsertBefore(child, ref Node) error

	// RemoveChild detaches child, which must be a child of this node.
	RemoveChild(child Node) error

	// SetAttribute sets a literal attribute, replacing any previous value.
	SetAttribute(name, value string)

	// AddEventListener attaches l for event. Adding the same listener
	// twice for one event attaches it once.
	AddEventListener(event string, l *Listener)

	// RemoveEventListener detaches l for event. Unknown listeners are
	// ignored.
	RemoveEventListener(event string, l *Listener)

	// SetInnerHTML replaces the node's children with raw markup.
	SetInnerHTML(html string)
}

// Event is delivered to listeners.
type Event struct {
	// Type is the event name, e.g. "click".
	Type string

	// Target is the node the event was dispatched on.
	Target Node

	// CurrentTarget is the node whose listener is running.
	CurrentTarget Node
}

// Listener wraps an event callback. Listeners are compared by identity,
// so the pointer handed to AddEventListener is the one that removes it.
type Listener struct {
	fn func(Event)
}

// NewListener creates a listener for fn.
func NewListener(fn func(Event)) *Listener {
	return &Listener{fn: fn}
}

// Handle invokes the listener's callback.
func (l *Listener) Handle(e Event) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(e)
}
