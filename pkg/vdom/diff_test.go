package vdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/vmini/internal/errors"
	"github.com/vango-dev/vmini/pkg/dom"
)

func TestDiffReplacesWholeTree(t *testing.T) {
	doc, root, h := newContainer(t)

	render := func(n int) *VNode {
		return h("div", nil, List(
			h("h1", nil, Text("Hello")),
			h("button", Props{"onClick": On(func() {})}, Textf("count is %d", n)),
		))
	}

	oldTree := render(0)
	require.NoError(t, Mount(oldTree, root, nil))
	oldHandle := oldTree.Handle.(*dom.Element)

	newTree := render(1)
	require.NoError(t, Diff(oldTree, newTree, root))

	assert.Nil(t, oldHandle.Parent(), "old tree should be detached")
	require.Len(t, root.Children(), 1, "container should hold only the new tree")
	assert.Same(t, newTree.Handle, root.Children()[0])
	assert.Equal(t, "Hellocount is 1", root.TextContent())
	assert.Equal(t, 1, doc.ListenerCount())
}

func TestDiffDoesNotReuseIdenticalTrees(t *testing.T) {
	_, root, h := newContainer(t)

	a := h("p", nil, Text("same"))
	b := h("p", nil, Text("same"))
	require.NoError(t, Mount(a, root, nil))

	require.NoError(t, Diff(a, b, root))
	assert.Same(t, b.Handle, root.Children()[0], "new handle should replace the old one even when content matches")
}

func TestDiffKeepsSiblingsAndAppends(t *testing.T) {
	_, root, h := newContainer(t)

	require.NoError(t, Mount(h("header", nil, NoChildren), root, nil))
	oldTree := h("main", nil, NoChildren)
	require.NoError(t, Mount(oldTree, root, nil))
	require.NoError(t, Mount(h("footer", nil, NoChildren), root, nil))

	require.NoError(t, Diff(oldTree, h("main", Props{"id": Str("new")}, NoChildren), root))

	assert.Equal(t, `<header></header><footer></footer><main id="new"></main>`, root.InnerHTML())
}

func TestDiffFromNil(t *testing.T) {
	_, root, h := newContainer(t)

	require.NoError(t, Diff(nil, h("p", nil, NoChildren), root))
	assert.Len(t, root.Children(), 1, "new tree should be mounted")
}

func TestDiffStopsOnUnmountFailure(t *testing.T) {
	_, root, h := newContainer(t)

	neverMounted := h("p", nil, NoChildren)
	err := Diff(neverMounted, h("p", nil, NoChildren), root)
	assert.Equal(t, "E102", errors.Code(err))
	assert.Empty(t, root.Children(), "new tree should not be mounted after a failed unmount")
}
