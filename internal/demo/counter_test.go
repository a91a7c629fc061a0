package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vango-dev/vmini/pkg/app"
	"github.com/vango-dev/vmini/pkg/dom"
)

func mountCounter(t *testing.T, celebrate func()) (*dom.Memory, *dom.Element, *app.App) {
	t.Helper()
	doc := dom.NewDocument()
	node, err := doc.CreateElement("div")
	require.NoError(t, err)
	root := node.(*dom.Element)

	a, err := app.CreateApp(Counter(celebrate), root)
	require.NoError(t, err)
	return doc, root, a
}

func findTag(e *dom.Element, tag string) *dom.Element {
	if e.Tag() == tag {
		return e
	}
	for _, c := range e.Children() {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestCounterInitialTree(t *testing.T) {
	_, root, _ := mountCounter(t, nil)

	btn := findTag(root, "button")
	require.NotNil(t, btn)
	assert.Equal(t, "count is 0", btn.TextContent())

	h1 := findTag(root, "h1")
	require.NotNil(t, h1)
	assert.Equal(t, GreetingMessage, h1.TextContent())
	class, _ := h1.Attr("class")
	assert.True(t, strings.HasSuffix(class, "text-4xl"))

	img := findTag(root, "img")
	require.NotNil(t, img)
	src, _ := img.Attr("src")
	assert.Equal(t, "/go.svg", src)
}

func TestCounterIncrement(t *testing.T) {
	celebrations := 0
	doc, root, a := mountCounter(t, func() { celebrations++ })

	a.Context().Call("increment")

	assert.Equal(t, "count is 1", findTag(root, "button").TextContent())
	h1 := findTag(root, "h1")
	assert.Equal(t, CelebrationMessage, h1.TextContent())
	class, _ := h1.Attr("class")
	assert.True(t, strings.HasSuffix(class, "text-3xl"))
	assert.Equal(t, 1, doc.ListenerCount())
	assert.Equal(t, 1, celebrations)

	findTag(root, "button").Dispatch("click")
	assert.Equal(t, "count is 2", findTag(root, "button").TextContent())
	assert.Equal(t, 1, celebrations, "celebrate only runs on the first increment")
}

func TestCounterHTML(t *testing.T) {
	_, root, _ := mountCounter(t, nil)

	html := root.InnerHTML()
	assert.Contains(t, html, `<button class="p-2 border-2 border-black rounded cursor-pointer" onclick="[handler]">count is 0</button>`)
	assert.Contains(t, html, `<img class="logo w-24 h-24" src="/go.svg">`)
}
