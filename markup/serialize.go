package markup

// SerializableNode is a pointer-free, JSON friendly form of a tree node.
type SerializableNode struct {
	Tag      string             `json:"tag,omitempty"`
	Attrs    map[string]string  `json:"attrs,omitempty"`
	Text     string             `json:"text,omitempty"`
	Children []SerializableNode `json:"children,omitempty"`
}

type serializeTask struct {
	parent   *SerializableNode
	childIdx int // index in parent.Children
	nodeIdx  int // index in Tree.Nodes
}

// Serialize converts the arena into nested nodes without recursion.
func (t *Tree) Serialize() SerializableNode {
	root := t.Nodes[0]
	tree := SerializableNode{
		Tag:   root.Tag,
		Attrs: root.Attrs,
	}
	if root.ChildCount > 0 {
		tree.Children = make([]SerializableNode, root.ChildCount)
	}

	stack := make([]serializeTask, 0, root.ChildCount)
	childIdx := root.FirstChild
	for i := 0; i < root.ChildCount; i++ {
		stack = append(stack, serializeTask{&tree, i, childIdx})
		childIdx = t.Nodes[childIdx].NextSibling
	}

	for len(stack) > 0 {
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.Nodes[task.nodeIdx]

		sn := SerializableNode{
			Tag:   node.Tag,
			Attrs: node.Attrs,
			Text:  node.Text,
		}
		if node.ChildCount > 0 {
			sn.Children = make([]SerializableNode, node.ChildCount)
		}

		task.parent.Children[task.childIdx] = sn

		// children are pushed with a pointer to the node placed above
		placed := &task.parent.Children[task.childIdx]
		childIdx := node.FirstChild
		for i := 0; i < node.ChildCount; i++ {
			stack = append(stack, serializeTask{
				parent:   placed,
				childIdx: i,
				nodeIdx:  childIdx,
			})
			childIdx = t.Nodes[childIdx].NextSibling
		}
	}

	return tree
}
