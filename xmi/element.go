package xmi

import "strings"

// Attr is a single XML attribute. Attributes keep insertion order so
// rendering is deterministic.
type Attr struct {
	Key   string
	Value string
}

// Element is one node of the document tree: a tag, ordered attributes,
// ordered children and optional text content.
type Element struct {
	Tag      string
	Attrs    []Attr
	Children []*Element
	Text     string
}

// SetAttr sets key to value, replacing an existing attribute in place
// or appending a new one.
func (e *Element) SetAttr(key, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{key, value})
}

// Attr returns the value of the attribute under key, or "".
func (e *Element) Attr(key string) string {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value
		}
	}
	return ""
}

// Append adds child as the last child of e.
func (e *Element) Append(child *Element) {
	e.Children = append(e.Children, child)
}

// Find returns the first direct child with the given tag, or nil.
func (e *Element) Find(tag string) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// FindAll returns all direct children with the given tag.
func (e *Element) FindAll(tag string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Tag == tag {
			out = append(out, c)
		}
	}
	return out
}

// Walk calls fn for e and every descendant, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

func (e *Element) render(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString("<")
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(a.Value))
		b.WriteString(`"`)
	}

	if len(e.Children) == 0 && e.Text == "" {
		b.WriteString("/>\n")
		return
	}
	b.WriteString(">")

	if e.Text != "" {
		b.WriteString(escapeText(e.Text))
	}
	if len(e.Children) > 0 {
		b.WriteString("\n")
		for _, c := range e.Children {
			c.render(b, depth+1)
		}
		b.WriteString(indent)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteString(">\n")
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"\n", "&#xA;",
	"\t", "&#x9;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
func escapeText(s string) string { return textEscaper.Replace(s) }
