package markup

import (
	"maps"
	"slices"
	"strconv"
)

// LinkData is stored per linked post, keyed by the linked post's ID.
type LinkData struct {
	// Inlined is true when the linked post is expanded in place.
	Inlined bool `json:"inlined,omitempty"`

	// OP is the ID of the thread the linked post belongs to.
	OP uint64 `json:"op"`
}

// renderReference is the link resolver. It renders ">>id" using the link
// data found in links.
func (p *parser) renderReference(id uint64, links map[uint64]LinkData) {
	s := p.state
	label := ">>" + strconv.FormatUint(id, 10)

	data, ok := links[id]
	if !ok {
		s.Append(Element("span", "class", "dead-link"), true)
		s.Append(Text(label), false)
		s.Ascend()
		return
	}

	s.Append(Element("a",
		"class", "post-link",
		"data-id", strconv.FormatUint(id, 10),
		"data-op", strconv.FormatUint(data.OP, 10),
		"href", p.postURL(id, data.OP),
	), true)
	s.Append(Text(label), false)
	if data.OP != p.post.OP {
		s.Append(Text(" ➡"), false)
	}
	s.Ascend()

	if !data.Inlined {
		return
	}
	sub := p.inline(id)
	if sub == nil {
		return
	}

	// the inlined post goes outside the open spans of the line, which are
	// continued after it
	spansOpen := s.Depth() > p.lineBase
	p.closeSpans(p.lineBase)
	s.graft(sub)
	if spansOpen {
		p.reopen(0)
	}
}

func (p *parser) postURL(id, op uint64) string {
	anchor := "#p" + strconv.FormatUint(id, 10)
	if op == p.post.OP {
		return anchor
	}
	board := p.post.Board
	if board == "" {
		board = "all"
	}
	return "/" + board + "/" + strconv.FormatUint(op, 10) + anchor
}

// inline renders the post with the given ID for splicing. It returns nil
// when the post is unknown, already on the inlining path, or too deep.
func (p *parser) inline(id uint64) *Tree {
	if p.r.posts == nil || p.inlined[id] || len(p.inlined) > p.r.maxInlineDepth {
		return nil
	}
	target, ok := p.r.posts.Post(id)
	if !ok {
		return nil
	}

	p.inlined[id] = true
	defer delete(p.inlined, id)

	return p.r.renderPost(target, "post inlined", p.inlined)
}

// renderBacklinks renders the posts linking to this one in ascending ID order.
func (p *parser) renderBacklinks() {
	if len(p.post.Backlinks) == 0 {
		return
	}

	s := p.state
	s.Append(Element("span", "class", "backlinks"), true)
	p.lineBase = s.Depth()
	for i, id := range slices.Sorted(maps.Keys(p.post.Backlinks)) {
		if i != 0 {
			s.Append(Text(" "), false)
		}
		p.renderReference(id, p.post.Backlinks)
	}
	s.Ascend()
}
