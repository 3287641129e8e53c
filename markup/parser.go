package markup

import (
	"math"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

const (
	// DefaultMaxInlineDepth limits how deep inlined posts may nest.
	DefaultMaxInlineDepth = 4

	// DefaultLexer is the chroma lexer used for code spans.
	DefaultLexer = "c"
)

// PostSource looks up posts that may be inlined into the rendered one.
type PostSource interface {
	Post(id uint64) (*Post, bool)
}

// PostMap is a PostSource backed by a plain map.
type PostMap map[uint64]*Post

func (m PostMap) Post(id uint64) (*Post, bool) {
	p, ok := m[id]
	return p, ok
}

// Renderer turns post bodies into node trees. It holds no per-pass state
// and is safe for concurrent use.
type Renderer struct {
	posts          PostSource
	lexer          chroma.Lexer
	maxInlineDepth int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPostSource sets where inlined posts are looked up.
func WithPostSource(ps PostSource) Option {
	return func(r *Renderer) {
		r.posts = ps
	}
}

// WithLexer selects the chroma lexer for code spans by name.
// Unknown names fall back to plain-text highlighting.
func WithLexer(name string) Option {
	return func(r *Renderer) {
		r.lexer = lookupLexer(name)
	}
}

// WithMaxInlineDepth bounds recursive post inlining.
func WithMaxInlineDepth(depth int) Option {
	return func(r *Renderer) {
		r.maxInlineDepth = max(depth, 0)
	}
}

// NewRenderer creates a Renderer with the given options applied.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		lexer:          lookupLexer(DefaultLexer),
		maxInlineDepth: DefaultMaxInlineDepth,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func lookupLexer(name string) chroma.Lexer {
	l := lexers.Get(name)
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}

// parser carries everything one render pass needs.
type parser struct {
	r     *Renderer
	post  *Post
	state *State

	// inlined holds the IDs of the posts on the current inlining path.
	inlined map[uint64]bool

	// found collects references and markers in scan mode.
	found *Found

	// lineBase is the depth of the insertion stack below the span elements
	// of the current line.
	lineBase int
}

// Parse renders body into the tree s is attached to, continuing from the
// flags and counters already in s. Call [State.Reset] before the first
// pass of a post and [State.Resume] to carry state over to another pass.
func (r *Renderer) Parse(s *State, p *Post, body string) {
	pr := parser{
		r:       r,
		post:    p,
		state:   s,
		inlined: map[uint64]bool{p.ID: true},
	}
	pr.parseBody(body)
}

// RenderBody renders the body of p from a clean state.
func (r *Renderer) RenderBody(p *Post) *Tree {
	tree, _ := r.ResumeBody(p, Snapshot{})
	return tree
}

// ResumeBody renders the body of p starting from snap and returns the tree
// together with the state the pass ended in.
func (r *Renderer) ResumeBody(p *Post, snap Snapshot) (*Tree, Snapshot) {
	tree := NewTree("blockquote")
	var s State
	s.Reset(tree, 0)
	s.Restore(snap)
	r.Parse(&s, p, p.Body)
	return tree, s.Snapshot()
}

// parseBody is the line processor.
func (p *parser) parseBody(body string) {
	s := p.state
	base := s.Depth()

	for i, line := range strings.Split(body, "\n") {
		s.Quote = false

		// at most one empty line is shown between paragraphs
		if i != 0 && s.SuccessiveNewlines < 2 {
			s.Append(Element("br"), false)
		}

		if line == "" {
			s.SuccessiveNewlines++
			continue
		}
		s.SuccessiveNewlines = 0

		if !s.open[SpanCode] && isQuoteLine(line) {
			s.Quote = true
			s.Append(Element("em", "class", "quote"), true)
		}
		p.lineBase = s.Depth()

		p.reopen(0)
		p.parseSpans(line, 0)
		p.closeSpans(p.lineBase)
		s.ascendTo(base)
	}
}

// isQuoteLine reports whether line starts with a quote marker that is not
// a post reference.
func isQuoteLine(line string) bool {
	if line[0] != '>' {
		return false
	}
	_, ok := parsePostRef(line)
	return !ok
}

// parsePostRef parses a leading ">>N" reference, returning N.
func parsePostRef(s string) (uint64, bool) {
	if !strings.HasPrefix(s, ">>") {
		return 0, false
	}
	var id uint64
	n := 0
	for _, c := range []byte(s[2:]) {
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		if id > (math.MaxUint64-d)/10 {
			return 0, false
		}
		id = id*10 + d
		n++
	}
	return id, n > 0
}

// parseWords is the innermost filler. It recognizes post references, hash
// command markers and URLs, and merges everything else into text nodes.
func (p *parser) parseWords(frag string) {
	var text strings.Builder
	flush := func() {
		if text.Len() != 0 {
			p.state.Append(Text(text.String()), false)
			text.Reset()
		}
	}

	for i, word := range strings.Split(frag, " ") {
		if i != 0 {
			text.WriteByte(' ')
		}
		if word == "" {
			continue
		}

		lead, core, trail := splitPunctuation(word)
		text.WriteString(lead)

		switch {
		case isReference(core):
			id, _ := parsePostRef(core)
			if p.found != nil {
				p.found.Refs = append(p.found.Refs, id)
			}
			flush()
			p.renderReference(id, p.post.Links)
		case p.hasCommand(core):
			m, _ := ParseMarker(core)
			flush()
			p.renderCommand(m, p.nextCommand())
		case isURL(core):
			flush()
			p.state.Append(Element("a", "href", core, "rel", "noreferrer", "target", "_blank"), true)
			p.state.Append(Text(core), false)
			p.state.Ascend()
		default:
			text.WriteString(core)
		}

		text.WriteString(trail)
	}

	flush()
}

// isReference reports whether word is exactly a ">>N" post reference.
func isReference(word string) bool {
	if _, ok := parsePostRef(word); !ok {
		return false
	}
	return strings.Trim(word[2:], "0123456789") == ""
}

func isURL(word string) bool {
	for _, prefix := range [...]string{"http://", "https://"} {
		if strings.HasPrefix(word, prefix) && len(word) > len(prefix) {
			return true
		}
	}
	return false
}

// splitPunctuation separates opening brackets and trailing punctuation from
// a word so "(>>12)," still links.
func splitPunctuation(word string) (lead, core, trail string) {
	start := 0
	for start < len(word) && word[start] == '(' {
		start++
	}
	end := len(word)
	for end > start && strings.IndexByte(".,:;!?)", word[end-1]) != -1 {
		end--
	}
	return word[:start], word[start:end], word[end:]
}
