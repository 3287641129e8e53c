package markup

// NodeType defines the semantic kind of a tree node.
type NodeType int

const (
	NodeRoot NodeType = iota
	NodeElement
	NodeText
)

// Node represents a single element or text leaf of the rendered post.
// Nodes are stored in the [Tree] arena and linked via indices.
type Node struct {
	// Type indicates whether this node is the root, an element or text.
	Type NodeType

	// Tag is the element name, e.g. "b" or "del". Empty for text nodes.
	Tag string

	// Attrs holds the element attributes. Order is irrelevant.
	Attrs map[string]string

	// Text is the content of a text node.
	Text string

	FirstChild  int
	LastChild   int
	NextSibling int

	// ChildCount is the number of direct children of this node.
	ChildCount int
}

// Element creates a detached element node. Attributes are given as
// key, value pairs; a trailing odd key is ignored.
func Element(tag string, attrs ...string) Node {
	n := newNode(NodeElement)
	n.Tag = tag
	if len(attrs) > 1 {
		n.Attrs = make(map[string]string, len(attrs)/2)
		for i := 0; i+1 < len(attrs); i += 2 {
			n.Attrs[attrs[i]] = attrs[i+1]
		}
	}
	return n
}

// Text creates a detached text node.
func Text(s string) Node {
	n := newNode(NodeText)
	n.Text = s
	return n
}

func newNode(t NodeType) Node {
	return Node{
		Type:        t,
		FirstChild:  -1,
		LastChild:   -1,
		NextSibling: -1,
	}
}

// Tree is the arena-backed output of a render pass. Index 0 is always the root.
type Tree struct {
	Nodes []Node
}

// NewTree creates a tree whose root is an element with the given tag.
func NewTree(tag string, attrs ...string) *Tree {
	root := Element(tag, attrs...)
	root.Type = NodeRoot
	return &Tree{Nodes: []Node{root}}
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.Nodes[0]
}

// appendNode appends node to the arena and links it as the last child of
// the parent at parentIdx. Returns the index of the new node.
func (t *Tree) appendNode(parentIdx int, node Node) int {
	nodeIdx := len(t.Nodes)
	t.Nodes = append(t.Nodes, node)

	parent := &t.Nodes[parentIdx]
	parent.ChildCount++

	if parent.FirstChild == -1 {
		parent.FirstChild = nodeIdx
		parent.LastChild = nodeIdx
		return nodeIdx
	}

	t.Nodes[parent.LastChild].NextSibling = nodeIdx
	parent.LastChild = nodeIdx

	return nodeIdx
}

// graft copies the whole of other under the node at parentIdx. The root of
// other becomes a regular element. Returns the index of the copied root.
func (t *Tree) graft(parentIdx int, other *Tree) int {
	offset := len(t.Nodes)
	for _, n := range other.Nodes {
		if n.FirstChild != -1 {
			n.FirstChild += offset
			n.LastChild += offset
		}
		if n.NextSibling != -1 {
			n.NextSibling += offset
		}
		t.Nodes = append(t.Nodes, n)
	}

	root := &t.Nodes[offset]
	root.Type = NodeElement
	root.NextSibling = -1

	parent := &t.Nodes[parentIdx]
	parent.ChildCount++
	if parent.FirstChild == -1 {
		parent.FirstChild = offset
	} else {
		t.Nodes[parent.LastChild].NextSibling = offset
	}
	parent.LastChild = offset

	return offset
}

// dropLast removes the last node of the arena, which must be a childless
// last child of the node at parentIdx.
func (t *Tree) dropLast(parentIdx int) {
	idx := len(t.Nodes) - 1
	parent := &t.Nodes[parentIdx]
	parent.ChildCount--

	if parent.FirstChild == idx {
		parent.FirstChild = -1
		parent.LastChild = -1
	} else {
		prev := parent.FirstChild
		for t.Nodes[prev].NextSibling != idx {
			prev = t.Nodes[prev].NextSibling
		}
		t.Nodes[prev].NextSibling = -1
		parent.LastChild = prev
	}

	t.Nodes = t.Nodes[:idx]
}

// Children returns the indices of the direct children of the node at idx.
func (t *Tree) Children(idx int) []int {
	n := t.Nodes[idx]
	out := make([]int, 0, n.ChildCount)
	for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
		out = append(out, c)
	}
	return out
}

// TextContent concatenates all text below the node at idx in document order.
func (t *Tree) TextContent(idx int) string {
	var b []byte
	var walk func(i int)
	walk = func(i int) {
		n := t.Nodes[i]
		if n.Type == NodeText {
			b = append(b, n.Text...)
			return
		}
		for c := n.FirstChild; c != -1; c = t.Nodes[c].NextSibling {
			walk(c)
		}
	}
	walk(idx)
	return string(b)
}
