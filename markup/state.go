package markup

// Snapshot is the tree-independent part of [State]. It is what survives
// between render passes of a post that is still being edited.
type Snapshot struct {
	Code               bool `json:"code"`
	Spoiler            bool `json:"spoiler"`
	Bold               bool `json:"bold"`
	Italic             bool `json:"italic"`
	Quote              bool `json:"quote"`
	HaveSyncwatch      bool `json:"have_syncwatch"`
	SuccessiveNewlines int  `json:"successive_newlines"`
	CommandIndex       int  `json:"command_index"`
}

// State holds the mutable parser state of a render pass.
//
// The insertion point is tracked by crumbs: indices into [Tree.Nodes] forming
// the path from the root to the node new children get appended to. The
// bottom element is always the root.
type State struct {
	// open holds the span flags, indexed by span level.
	open [numSpans]bool

	// Quote is true while the current line is quoted.
	Quote bool

	// HaveSyncwatch is set once a #sw command has been rendered.
	HaveSyncwatch bool

	// SuccessiveNewlines counts empty lines since the last non-empty one.
	SuccessiveNewlines int

	// CommandIndex is the index of the next resolved command to consume.
	CommandIndex int

	tree   *Tree
	crumbs []int
}

// Reset clears all flags and counters and makes root the sole insertion point.
func (s *State) Reset(tree *Tree, root int) {
	*s = State{crumbs: s.crumbs[:0]}
	s.Resume(tree, root)
}

// Resume makes root the sole insertion point, keeping flags and counters
// from the previous pass.
func (s *State) Resume(tree *Tree, root int) {
	s.tree = tree
	s.crumbs = append(s.crumbs[:0], root)
}

// Append inserts n as the last child of the current insertion point and
// returns its index. With descend, n becomes the new insertion point.
func (s *State) Append(n Node, descend bool) int {
	idx := s.tree.appendNode(s.peekCrumb(), n)
	if descend {
		s.crumbs = append(s.crumbs, idx)
	}
	return idx
}

// Ascend pops the current insertion point. It panics with an
// [*InvariantError] when only the root is left.
func (s *State) Ascend() {
	if len(s.crumbs) < 2 {
		invariant(ErrAscendPastRoot, "depth %d", len(s.crumbs))
	}
	s.crumbs = s.crumbs[:len(s.crumbs)-1]
}

// Depth returns the number of insertion points on the stack, root included.
func (s *State) Depth() int {
	return len(s.crumbs)
}

// ascendTo pops insertion points until depth of them are left.
func (s *State) ascendTo(depth int) {
	for len(s.crumbs) > depth {
		s.Ascend()
	}
}

// closeElement pops the current insertion point and removes its element
// from the tree when nothing was appended to it.
func (s *State) closeElement() {
	idx := s.peekCrumb()
	s.Ascend()
	if idx == len(s.tree.Nodes)-1 && s.tree.Nodes[idx].ChildCount == 0 {
		s.tree.dropLast(s.peekCrumb())
	}
}

// graft splices other under the current insertion point.
func (s *State) graft(other *Tree) int {
	return s.tree.graft(s.peekCrumb(), other)
}

func (s *State) peekCrumb() int {
	// root is always present while parsing
	return s.crumbs[len(s.crumbs)-1]
}

// IsOpen reports whether the span of the given kind is currently open.
func (s *State) IsOpen(k SpanKind) bool {
	return s.open[k]
}

// Snapshot returns the flags and counters of the state.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Code:               s.open[SpanCode],
		Spoiler:            s.open[SpanSpoiler],
		Bold:               s.open[SpanBold],
		Italic:             s.open[SpanItalic],
		Quote:              s.Quote,
		HaveSyncwatch:      s.HaveSyncwatch,
		SuccessiveNewlines: s.SuccessiveNewlines,
		CommandIndex:       s.CommandIndex,
	}
}

// Restore loads flags and counters from snap. The insertion stack is
// untouched; call [State.Resume] afterwards.
func (s *State) Restore(snap Snapshot) {
	s.open[SpanCode] = snap.Code
	s.open[SpanSpoiler] = snap.Spoiler
	s.open[SpanBold] = snap.Bold
	s.open[SpanItalic] = snap.Italic
	s.Quote = snap.Quote
	s.HaveSyncwatch = snap.HaveSyncwatch
	s.SuccessiveNewlines = snap.SuccessiveNewlines
	s.CommandIndex = snap.CommandIndex
}
