package vdom

import (
	"fmt"
	"strconv"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
)

// VNode is the virtual DOM node.
type VNode struct {
	Handle   dom.Node // Native handle, created by H
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers
	Children Children // Nested content
	Err      error    // Handle creation failure, reported by Mount

	text   string
	isText bool
}

// Props holds attributes and event handlers.
type Props map[string]AttrValue

// H creates a VNode and its native handle.
type H func(tag string, props Props, children Children) *VNode

// NewH returns an H bound to doc. Handles are created immediately; a tag
// the document refuses leaves the VNode without a handle and with Err set.
func NewH(doc dom.Document) H {
	return func(tag string, props Props, children Children) *VNode {
		v := &VNode{Tag: tag, Props: props, Children: children}
		handle, err := doc.CreateElement(tag)
		if err != nil {
			v.Err = errors.FromError(err, "E101")
			return v
		}
		v.Handle = handle
		return v
	}
}

// TextNode creates a VNode that mounts as a plain text node.
func TextNode(text string) *VNode {
	return &VNode{text: text, isText: true}
}

// IsText reports whether v is a text node.
func (v *VNode) IsText() bool {
	return v != nil && v.isText
}

// Text returns the content of a text node.
func (v *VNode) Text() string {
	return v.text
}

// IsInteractive returns true if this node has event handler props.
func (v *VNode) IsInteractive() bool {
	if v == nil {
		return false
	}
	for key, val := range v.Props {
		if isHandlerProp(key, val) {
			return true
		}
	}
	return false
}

// AttrKind is the prop value discriminator.
type AttrKind uint8

const (
	AttrString  AttrKind = iota // Literal attribute value
	AttrNumber                  // Numeric attribute value
	AttrHandler                 // Event handler
	AttrStyle                   // Style declarations, serialized on mount
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrString:
		return "String"
	case AttrNumber:
		return "Number"
	case AttrHandler:
		return "Handler"
	case AttrStyle:
		return "Style"
	default:
		return "Unknown"
	}
}

// HandlerText is the literal attribute value written for handler props.
const HandlerText = "[handler]"

// AttrValue is a prop value.
type AttrValue struct {
	kind    AttrKind
	str     string
	num     float64
	handler *dom.Listener
	style   Style
}

// Str creates a string prop value.
func Str(s string) AttrValue {
	return AttrValue{kind: AttrString, str: s}
}

// Num creates a numeric prop value.
func Num(n float64) AttrValue {
	return AttrValue{kind: AttrNumber, num: n}
}

// On creates an event handler prop value from a zero-argument function.
func On(fn func()) AttrValue {
	return OnEvent(func(dom.Event) {
		if fn != nil {
			fn()
		}
	})
}

// OnEvent creates an event handler prop value that receives the event.
func OnEvent(fn func(dom.Event)) AttrValue {
	return AttrValue{kind: AttrHandler, handler: dom.NewListener(fn)}
}

// StyleValue creates a style prop value.
func StyleValue(s Style) AttrValue {
	return AttrValue{kind: AttrStyle, style: s}
}

// Kind returns the value's kind.
func (a AttrValue) Kind() AttrKind { return a.kind }

// Listener returns the handler of a handler value, or nil.
func (a AttrValue) Listener() *dom.Listener { return a.handler }

// Style returns the declarations of a style value, or nil.
func (a AttrValue) Style() Style { return a.style }

// String returns the literal attribute text of the value.
func (a AttrValue) String() string {
	switch a.kind {
	case AttrNumber:
		return formatNumber(a.num)
	case AttrHandler:
		return HandlerText
	case AttrStyle:
		return SerializeStyle(a.style)
	default:
		return a.str
	}
}

// Decl is one style declaration with a camelCase property name.
type Decl struct {
	Name  string
	Value string
}

// Style is an ordered list of style declarations.
type Style []Decl

// ChildKind is the children discriminator.
type ChildKind uint8

const (
	ChildNone   ChildKind = iota // No children
	ChildText                    // Inner markup
	ChildNumber                  // Number rendered as inner markup
	ChildNode                    // Single nested node
	ChildList                    // Sequence of nodes
)

// String returns the string representation of the ChildKind.
func (k ChildKind) String() string {
	switch k {
	case ChildNone:
		return "None"
	case ChildText:
		return "Text"
	case ChildNumber:
		return "Number"
	case ChildNode:
		return "Node"
	case ChildList:
		return "List"
	default:
		return "Unknown"
	}
}

// Children is the content of a VNode. The zero value has no children.
type Children struct {
	kind ChildKind
	text string
	num  float64
	node *VNode
	list []*VNode
}

// NoChildren is the empty Children value.
var NoChildren = Children{}

// Text creates markup children. The content is set as raw inner markup.
func Text(content string) Children {
	return Children{kind: ChildText, text: content}
}

// Textf creates formatted markup children.
func Textf(format string, args ...any) Children {
	return Text(fmt.Sprintf(format, args...))
}

// Number creates numeric children.
func Number(n float64) Children {
	return Children{kind: ChildNumber, num: n}
}

// Child creates children holding a single node.
func Child(node *VNode) Children {
	if node == nil {
		return NoChildren
	}
	return Children{kind: ChildNode, node: node}
}

// List creates children holding a sequence of nodes. Nil entries are
// skipped when mounting.
func List(nodes ...*VNode) Children {
	return Children{kind: ChildList, list: nodes}
}

// Kind returns the children's kind.
func (c Children) Kind() ChildKind { return c.kind }

// Nodes returns the nested nodes: the single node or the list.
func (c Children) Nodes() []*VNode {
	switch c.kind {
	case ChildNode:
		return []*VNode{c.node}
	case ChildList:
		return c.list
	}
	return nil
}

// Markup returns the inner markup for text and number children, and
// whether the children produce any.
func (c Children) Markup() (string, bool) {
	switch c.kind {
	case ChildText:
		return c.text, c.text != ""
	case ChildNumber:
		return formatNumber(c.num), true
	}
	return "", false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
