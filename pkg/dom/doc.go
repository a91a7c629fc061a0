// Package dom defines the display-tree boundary used by the vmini renderer
// and provides an in-memory implementation of it.
//
// The renderer never talks to a platform directly. Everything it needs is
// expressed by two interfaces:
//
//	Document: CreateElement, CreateTextNode
//	Node:     Parent, AppendChild, InsertBefore, RemoveChild,
//	          SetAttribute, AddEventListener, RemoveEventListener, SetInnerHTML
//
// # In-memory tree
//
// NewDocument returns a Memory document whose nodes behave like their DOM
// counterparts where the renderer can observe it:
//
//   - attribute names are lowercased, values keep insertion order
//   - the same listener added twice for one event is attached once
//   - AppendChild moves a node that already has a parent
//   - SetInnerHTML replaces every child with raw, unescaped content
//
// Elements get a document-unique numeric ID, used by Find and by the live
// server to route client events back to the element that received them:
//
//	doc := dom.NewDocument()
//	root, _ := doc.CreateElement("div")
//	...
//	if el := dom.Find(root, id); el != nil {
//	    el.Dispatch("click")
//	}
//
// Render serializes a subtree to HTML.
package dom
