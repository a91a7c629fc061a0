package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// voidElements cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IDAttr is the attribute written for element IDs when RenderOptions.IDs is set.
const IDAttr = "data-vmini-id"

// RenderOptions configures HTML serialization.
type RenderOptions struct {
	// IDs writes each element's ID as a data-vmini-id attribute.
	IDs bool

	// OmitHandlers skips on* attributes. Listeners are unaffected.
	OmitHandlers bool
}

// Render writes the HTML of n and its subtree to w.
func Render(w io.Writer, n *Element, opts RenderOptions) error {
	if n == nil {
		return nil
	}

	switch n.kind {
	case KindText:
		_, err := io.WriteString(w, escapeHTML(n.text))
		return err
	case KindRaw:
		_, err := io.WriteString(w, n.text)
		return err
	}

	if _, err := fmt.Fprintf(w, "<%s", n.tag); err != nil {
		return err
	}
	for _, a := range n.attrs {
		if opts.OmitHandlers && strings.HasPrefix(a.name, "on") {
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, a.name, escapeAttr(a.value)); err != nil {
			return err
		}
	}
	if opts.IDs {
		if _, err := fmt.Fprintf(w, ` %s="%d"`, IDAttr, n.id); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[n.tag] {
		return nil
	}

	if err := RenderChildren(w, n, opts); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "</%s>", n.tag)
	return err
}

// RenderChildren writes the HTML of n's children to w.
func RenderChildren(w io.Writer, n *Element, opts RenderOptions) error {
	for _, c := range n.children {
		if err := Render(w, c, opts); err != nil {
			return err
		}
	}
	return nil
}

// OuterHTML returns the HTML of the element and its subtree.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	Render(&buf, e, RenderOptions{})
	return buf.String()
}

// InnerHTML returns the HTML of the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	RenderChildren(&buf, e, RenderOptions{})
	return buf.String()
}

// escapeHTML escapes text for inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// escapeAttr escapes text for inclusion in a double-quoted attribute value.
// Whitespace that could break attribute parsing is escaped as well.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}
