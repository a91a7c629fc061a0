package vdom

import (
	"sort"
	"strings"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
)

// Mount materializes v under container. With a non-nil nextSibling the
// node is inserted immediately before it; otherwise it is appended.
// Mounting a nil node does nothing.
func Mount(v *VNode, container, nextSibling dom.Node) error {
	if v == nil {
		return nil
	}

	if v.isText {
		if container == nil {
			return errors.New("E102").WithDetail("text node mounted without a container")
		}
		v.Handle = container.OwnerDocument().CreateTextNode(v.text)
		return attach(v.Handle, container, nextSibling)
	}

	if v.Err != nil {
		return v.Err
	}
	if v.Handle == nil {
		return errors.New("E101").
			WithDetailf("node %q has no native handle", v.Tag).
			WithSuggestion("Create nodes with the H passed to Render")
	}

	applyProps(v)

	if markup, ok := v.Children.Markup(); ok {
		v.Handle.SetInnerHTML(markup)
	} else {
		for _, child := range v.Children.Nodes() {
			if err := Mount(child, v.Handle, nil); err != nil {
				return err
			}
		}
	}

	return attach(v.Handle, container, nextSibling)
}

// applyProps sets every prop on the handle. Style lists are serialized and
// stored back into Props as strings, so remounting the same node sets the
// serialized text as-is.
func applyProps(v *VNode) {
	for _, key := range sortedKeys(v.Props) {
		val := v.Props[key]
		if key == "style" && val.kind == AttrStyle {
			val = Str(SerializeStyle(val.style))
			v.Props[key] = val
		}
		if isHandlerProp(key, val) {
			v.Handle.AddEventListener(eventName(key), val.handler)
		}
		v.Handle.SetAttribute(key, val.String())
	}
}

func attach(node, container, nextSibling dom.Node) error {
	if nextSibling != nil {
		parent := nextSibling.Parent()
		if parent == nil {
			return errors.New("E102").WithDetail("next sibling is not attached")
		}
		return parent.InsertBefore(node, nextSibling)
	}
	if container == nil {
		return errors.New("E102").WithDetail("node mounted without a container")
	}
	return container.AppendChild(node)
}

// Unmount detaches the handler listeners of v's subtree and removes v's
// handle from its parent. A node without a handle is ignored.
func Unmount(v *VNode) error {
	if v == nil || v.Handle == nil {
		return nil
	}

	detachListeners(v)

	parent := v.Handle.Parent()
	if parent == nil {
		return errors.New("E102").WithDetailf("node %q is not attached", v.Tag)
	}
	return parent.RemoveChild(v.Handle)
}

func detachListeners(v *VNode) {
	if v == nil || v.Handle == nil {
		return
	}
	for key, val := range v.Props {
		if isHandlerProp(key, val) {
			v.Handle.RemoveEventListener(eventName(key), val.handler)
		}
	}
	for _, child := range v.Children.Nodes() {
		detachListeners(child)
	}
}

// Diff replaces the mounted oldTree with newTree: the old tree is unmounted
// in full, then the new tree is appended to container.
func Diff(oldTree, newTree *VNode, container dom.Node) error {
	if err := Unmount(oldTree); err != nil {
		return err
	}
	return Mount(newTree, container, nil)
}

// SerializeStyle converts style declarations to CSS text. Property names go
// from camelCase to kebab-case; declarations are joined with ';'.
func SerializeStyle(s Style) string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, kebab(d.Name)+":"+d.Value)
	}
	return strings.Join(parts, ";")
}

// kebab converts a camelCase name to kebab-case.
func kebab(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func isHandlerProp(key string, val AttrValue) bool {
	return strings.HasPrefix(key, "on") && val.kind == AttrHandler
}

// eventName returns the event for an on* prop: "onClick" -> "click".
func eventName(key string) string {
	return strings.ToLower(key[2:])
}

func sortedKeys(p Props) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
