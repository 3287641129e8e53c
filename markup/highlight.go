package markup

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
)

// parseCode renders a fragment inside an open code span. Leading quote
// markers are kept as literal text instead of being highlighted.
func (p *parser) parseCode(frag string) {
	n := 0
	for n < len(frag) && frag[n] == '>' {
		n++
	}
	if n != 0 {
		p.state.Append(Element("span", "class", "quote-marker"), true)
		p.state.Append(Text(frag[:n]), false)
		p.state.Ascend()
		frag = frag[n:]
	}

	p.r.highlight(p.state, frag)
}

// highlight appends code as chroma tokens. Tokens with a style class become
// spans with that class, plain text and whitespace stay text nodes.
func (r *Renderer) highlight(s *State, code string) {
	if code == "" {
		return
	}

	it, err := r.lexer.Tokenise(nil, code)
	if err != nil {
		s.Append(Text(code), false)
		return
	}

	rest := code
	for _, tok := range it.Tokens() {
		v := tok.Value
		if !strings.HasPrefix(rest, v) {
			// lexers may append a newline the input never had
			if !strings.HasPrefix(v, rest) {
				break
			}
			v = rest
		}
		if v == "" {
			continue
		}
		rest = rest[len(v):]

		class := chroma.StandardTypes[tok.Type]
		if class == "" || tok.Type == chroma.Text || tok.Type == chroma.TextWhitespace {
			s.Append(Text(v), false)
			continue
		}
		s.Append(Element("span", "class", class), true)
		s.Append(Text(v), false)
		s.Ascend()
	}

	if rest != "" {
		s.Append(Text(rest), false)
	}
}
