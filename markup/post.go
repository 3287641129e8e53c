package markup

import "strconv"

// Post is the part of a post the renderer needs.
type Post struct {
	ID        uint64              `json:"id"`
	OP        uint64              `json:"op"`
	Board     string              `json:"board"`
	Time      int64               `json:"time"`
	Editing   bool                `json:"editing"`
	Body      string              `json:"body"`
	Commands  Commands            `json:"commands,omitempty"`
	Links     map[uint64]LinkData `json:"links,omitempty"`
	Backlinks map[uint64]LinkData `json:"backlinks,omitempty"`
}

// Render renders the whole post: its body followed by its backlinks.
func (r *Renderer) Render(p *Post) *Tree {
	return r.renderPost(p, "post", map[uint64]bool{p.ID: true})
}

func (r *Renderer) renderPost(p *Post, class string, inlined map[uint64]bool) *Tree {
	if p.Editing {
		class += " editing"
	}
	tree := NewTree("article", "id", "p"+strconv.FormatUint(p.ID, 10), "class", class)

	var s State
	s.Reset(tree, 0)

	pr := parser{
		r:       r,
		post:    p,
		state:   &s,
		inlined: inlined,
	}

	s.Append(Element("blockquote"), true)
	pr.parseBody(p.Body)
	s.Ascend()

	pr.renderBacklinks()

	return tree
}
