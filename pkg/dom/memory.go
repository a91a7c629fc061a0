package dom

import (
	"fmt"
	"strings"

	"github.com/vango-dev/vmini/internal/errors"
)

// NodeKind is the in-memory node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <button>, etc.
	KindText                    // Text node, escaped on render
	KindRaw                     // Content set through SetInnerHTML
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Memory is an in-memory Document.
// It is not safe for concurrent use; callers serialize access.
type Memory struct {
	nextID    uint64
	listeners int
}

// NewDocument creates an empty in-memory document.
func NewDocument() *Memory {
	return &Memory{}
}

// CreateElement implements Document.
func (d *Memory) CreateElement(tag string) (Node, error) {
	if err := ValidateTag(tag); err != nil {
		return nil, err
	}
	d.nextID++
	return &Element{
		doc:  d,
		kind: KindElement,
		id:   d.nextID,
		tag:  strings.ToLower(tag),
	}, nil
}

// CreateTextNode implements Document.
func (d *Memory) CreateTextNode(text string) Node {
	return &Element{doc: d, kind: KindText, text: text}
}

// ListenerCount returns the number of listeners attached anywhere in the
// document, attached or detached nodes alike.
func (d *Memory) ListenerCount() int {
	return d.listeners
}

type attr struct {
	name  string
	value string
}

// Element is a node of a Memory document. Text and raw content nodes are
// Elements of the corresponding kind.
type Element struct {
	doc       *Memory
	kind      NodeKind
	id        uint64
	tag       string
	text      string
	attrs     []attr
	parent    *Element
	children  []*Element
	listeners map[string][]*Listener
}

// Kind returns the node kind.
func (e *Element) Kind() NodeKind { return e.kind }

// ID returns the document-unique element ID. Text nodes have ID 0.
func (e *Element) ID() uint64 { return e.id }

// Tag returns the lowercased tag name.
func (e *Element) Tag() string { return e.tag }

// Children returns the node's children. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Parent implements Node.
func (e *Element) Parent() Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// OwnerDocument implements Node.
func (e *Element) OwnerDocument() Document {
	return e.doc
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// SetAttribute implements Node.
func (e *Element) SetAttribute(name, value string) {
	if e.kind != KindElement {
		return
	}
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
}

// AddEventListener implements Node. Adding a listener that is already
// attached for the same event does nothing.
func (e *Element) AddEventListener(event string, l *Listener) {
	if l == nil {
		return
	}
	for _, existing := range e.listeners[event] {
		if existing == l {
			return
		}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	e.listeners[event] = append(e.listeners[event], l)
	e.doc.listeners++
}

// RemoveEventListener implements Node.
func (e *Element) RemoveEventListener(event string, l *Listener) {
	ls := e.listeners[event]
	for i, existing := range ls {
		if existing == l {
			e.listeners[event] = append(ls[:i:i], ls[i+1:]...)
			if len(e.listeners[event]) == 0 {
				delete(e.listeners, event)
			}
			e.doc.listeners--
			return
		}
	}
}

// ListenerCount returns the number of listeners attached for event.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// SetInnerHTML implements Node.
func (e *Element) SetInnerHTML(html string) {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	if html == "" {
		return
	}
	raw := &Element{doc: e.doc, kind: KindRaw, text: html, parent: e}
	e.children = []*Element{raw}
}

// AppendChild implements Node.
func (e *Element) AppendChild(child Node) error {
	c, err := e.adopt(child)
	if err != nil {
		return err
	}
	e.children = append(e.children, c)
	return nil
}

// InsertBefore implements Node.
func (e *Element) InsertBefore(child, ref Node) error {
	r, ok := ref.(*Element)
	if !ok || r.parent != e {
		return errors.New("E102").WithDetail("insert-before reference is not a child of the target node")
	}
	if child == ref {
		return nil
	}
	c, err := e.adopt(child)
	if err != nil {
		return err
	}
	idx := e.indexOf(r)
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = c
	return nil
}

// RemoveChild implements Node.
func (e *Element) RemoveChild(child Node) error {
	c, ok := child.(*Element)
	if !ok || c.parent != e {
		return errors.New("E102").WithDetail("node to remove is not a child of the target node")
	}
	e.detach(c)
	return nil
}

// adopt validates child and detaches it from its current parent.
func (e *Element) adopt(child Node) (*Element, error) {
	c, ok := child.(*Element)
	if !ok || c == nil {
		return nil, fmt.Errorf("dom: foreign node %T", child)
	}
	if c.doc != e.doc {
		return nil, fmt.Errorf("dom: node belongs to another document")
	}
	if e.kind != KindElement {
		return nil, fmt.Errorf("dom: %s node cannot have children", e.kind)
	}
	for p := e; p != nil; p = p.parent {
		if p == c {
			return nil, fmt.Errorf("dom: cannot insert a node into its own subtree")
		}
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = e
	return c, nil
}

func (e *Element) detach(c *Element) {
	if i := e.indexOf(c); i >= 0 {
		e.children = append(e.children[:i], e.children[i+1:]...)
	}
	c.parent = nil
}

func (e *Element) indexOf(c *Element) int {
	for i, existing := range e.children {
		if existing == c {
			return i
		}
	}
	return -1
}

// TextContent returns the concatenated text of the subtree.
// Raw content is included as written.
func (e *Element) TextContent() string {
	if e.kind != KindElement {
		return e.text
	}
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Dispatch delivers an event of type typ to this node and then to each
// ancestor, in the manner of a bubbling DOM event. The propagation path is
// fixed before the first listener runs, so listeners that rebuild the tree
// do not change who receives the event.
func (e *Element) Dispatch(typ string) int {
	var path []*Element
	for n := e; n != nil; n = n.parent {
		path = append(path, n)
	}

	delivered := 0
	for _, n := range path {
		ls := append([]*Listener(nil), n.listeners[typ]...)
		for _, l := range ls {
			l.Handle(Event{Type: typ, Target: e, CurrentTarget: n})
			delivered++
		}
	}
	return delivered
}

// Find returns the element with the given ID in root's subtree, or nil.
func Find(root *Element, id uint64) *Element {
	if root == nil || id == 0 {
		return nil
	}
	if root.id == id {
		return root
	}
	for _, c := range root.children {
		if found := Find(c, id); found != nil {
			return found
		}
	}
	return nil
}
