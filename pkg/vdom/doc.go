// Package vdom provides the virtual node model and the mount, unmount and
// diff routines of vmini.
//
// A VNode describes one element: its tag, its props and its children. The
// native display-tree handle is created eagerly by H, bound to a
// dom.Document:
//
//	h := vdom.NewH(doc)
//	tree := h("div", vdom.Props{"class": vdom.Str("card")}, vdom.List(
//	    h("h1", nil, vdom.Text("Title")),
//	    h("button", vdom.Props{"onClick": vdom.On(increment)}, vdom.Textf("count is %d", n)),
//	))
//
// # Props and children
//
// Prop values and children are closed variants. A prop holds a string
// (Str), a number (Num), an event handler (On, OnEvent) or a style list
// (StyleValue). Children are nothing, text (Text), a number (Number), a
// single node (Child) or a list of nodes (List). Plain text inside a list
// is a TextNode.
//
// # Mounting
//
// Mount walks a tree, applies props, attaches listeners for on* handler
// props and inserts the handles into the display tree. Unmount detaches the
// listeners and removes the root handle from its parent. Diff replaces one
// mounted tree with another by unmounting the old tree in full and
// mounting the new one; there is no keyed matching and no subtree reuse.
package vdom
