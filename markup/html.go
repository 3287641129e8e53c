package markup

import (
	"bytes"
	"io"
	"maps"
	"slices"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLNode converts the subtree at idx into an x/net/html node tree.
// Attributes are emitted in key order so output is stable.
func (t *Tree) HTMLNode(idx int) *html.Node {
	n := t.Nodes[idx]
	if n.Type == NodeText {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}

	for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
		el.AppendChild(t.HTMLNode(c))
	}

	return el
}

// RenderHTML writes the tree as HTML. Text and attribute values are escaped.
func (t *Tree) RenderHTML(w io.Writer) error {
	return html.Render(w, t.HTMLNode(0))
}

// HTML returns the tree rendered as an HTML string.
func (t *Tree) HTML() string {
	var b bytes.Buffer
	// writes to a bytes.Buffer only fail on malformed void elements,
	// which the parser never produces
	_ = t.RenderHTML(&b)
	return b.String()
}
