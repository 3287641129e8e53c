package markup

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Found lists what a body refers to, in text order.
type Found struct {
	// Refs are the IDs of all ">>N" references outside code spans.
	Refs []uint64

	// Markers are the hash command markers outside code spans.
	Markers []Marker
}

var scanner = &Renderer{lexer: chroma.Coalesce(lexers.Fallback)}

// Scan runs body through the same pipeline as rendering and reports the
// references and command markers it would resolve. Resolving the markers in
// order yields the command list the renderer expects.
func Scan(body string) Found {
	var found Found

	tree := NewTree("blockquote")
	var s State
	s.Reset(tree, 0)

	pr := parser{
		r:       scanner,
		post:    &Post{},
		state:   &s,
		inlined: map[uint64]bool{},
		found:   &found,
	}
	pr.parseBody(body)

	return found
}
