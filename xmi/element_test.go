package xmi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAttrReplacesInPlace(t *testing.T) {
	assert := assert.New(t)

	e := &Element{Tag: "packagedElement"}
	e.SetAttr("name", "first")
	e.SetAttr("visibility", "public")
	e.SetAttr("name", "second")

	assert.Equal("second", e.Attr("name"))
	assert.Len(e.Attrs, 2)
	// Replacement keeps the original position.
	assert.Equal("name", e.Attrs[0].Key)
}

func TestFindAndWalk(t *testing.T) {
	assert := assert.New(t)

	root := &Element{Tag: "root"}
	a := &Element{Tag: "child"}
	b := &Element{Tag: "child"}
	c := &Element{Tag: "other"}
	root.Append(a)
	root.Append(b)
	root.Append(c)
	a.Append(&Element{Tag: "leaf"})

	assert.Equal(a, root.Find("child"))
	assert.Nil(root.Find("missing"))
	assert.Len(root.FindAll("child"), 2)

	count := 0
	root.Walk(func(*Element) { count++ })
	assert.Equal(5, count)
}

func TestRenderShape(t *testing.T) {
	assert := assert.New(t)

	root := &Element{Tag: "root"}
	root.SetAttr("name", "top")
	child := &Element{Tag: "child"}
	child.SetAttr("name", "empty")
	root.Append(child)
	text := &Element{Tag: "body", Text: "hello"}
	root.Append(text)

	var b strings.Builder
	root.render(&b, 0)
	out := b.String()

	assert.Contains(out, `<root name="top">`)
	assert.Contains(out, `  <child name="empty"/>`)
	assert.Contains(out, "<body>hello</body>")
	assert.Contains(out, "</root>")
}

func TestRenderEscaping(t *testing.T) {
	assert := assert.New(t)

	e := &Element{Tag: "elem"}
	e.SetAttr("name", `a<b>"c"&d`)
	e.Text = "x < y & z"

	var b strings.Builder
	e.render(&b, 0)
	out := b.String()

	assert.Contains(out, `name="a&lt;b&gt;&quot;c&quot;&amp;d"`)
	assert.Contains(out, "x &lt; y &amp; z")
}
