package markup

import "strings"

// SpanKind identifies a toggleable formatting span. The numeric order is the
// canonical nesting order: lower kinds always wrap higher ones.
type SpanKind int

const (
	SpanCode SpanKind = iota
	SpanSpoiler
	SpanBold
	SpanItalic

	numSpans
)

// span describes one level of the formatting pipeline.
type span struct {
	delim string
	tag   string

	// literal spans bypass all inner levels while open.
	literal bool
}

var spans = [numSpans]span{
	SpanCode:    {delim: "``", tag: "code", literal: true},
	SpanSpoiler: {delim: "**", tag: "del"},
	SpanBold:    {delim: "__", tag: "b"},
	SpanItalic:  {delim: "~~", tag: "i"},
}

// Delimiter returns the two-character sequence toggling the span.
func (k SpanKind) Delimiter() string {
	return spans[k].delim
}

// Tag returns the element name the span is rendered as.
func (k SpanKind) Tag() string {
	return spans[k].tag
}

// scanToggle splits frag on sep, calling filler on the text between
// separators and toggle on every separator found.
func scanToggle(frag, sep string, filler func(string), toggle func()) {
	for {
		i := strings.Index(frag, sep)
		if i == -1 {
			filler(frag)
			return
		}
		filler(frag[:i])
		frag = frag[i+len(sep):]
		toggle()
	}
}

// parseSpans runs the pipeline from level k inwards over frag.
func (p *parser) parseSpans(frag string, k SpanKind) {
	if k == numSpans {
		p.parseWords(frag)
		return
	}

	scanToggle(frag, spans[k].delim,
		func(s string) {
			if s == "" {
				return
			}
			if spans[k].literal && p.state.open[k] {
				p.parseCode(s)
				return
			}
			p.parseSpans(s, k+1)
		},
		func() { p.toggle(k) },
	)
}

// rendered reports whether span k currently has an element on the
// insertion stack. Spans inside an open literal span keep their flag but
// are not rendered.
func (s *State) rendered(k SpanKind) bool {
	if !s.open[k] {
		return false
	}
	for outer := SpanKind(0); outer < k; outer++ {
		if spans[outer].literal && s.open[outer] {
			return false
		}
	}
	return true
}

// toggle flips span k, rebuilding the elements of the rendered inner spans
// around the new or removed wrapper so nesting stays canonical.
func (p *parser) toggle(k SpanKind) {
	s := p.state

	var inner [numSpans]bool
	for i := k + 1; i < numSpans; i++ {
		inner[i] = s.rendered(i)
	}
	for i := numSpans - 1; i > k; i-- {
		if inner[i] {
			s.closeElement()
		}
	}

	if s.open[k] {
		s.closeElement()
	} else {
		s.Append(Element(spans[k].tag), true)
	}
	s.open[k] = !s.open[k]

	p.reopen(k + 1)
}

// closeSpans pops the span elements above depth. Spans left without
// content are removed.
func (p *parser) closeSpans(depth int) {
	for p.state.Depth() > depth {
		p.state.closeElement()
	}
}

// reopen appends and descends into every rendered span from k inwards.
func (p *parser) reopen(k SpanKind) {
	for i := k; i < numSpans; i++ {
		if p.state.rendered(i) {
			p.state.Append(Element(spans[i].tag), true)
		}
	}
}
