package markup

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func el(tag string, children ...SerializableNode) SerializableNode {
	return SerializableNode{Tag: tag, Children: children}
}

func elAttrs(tag string, attrs map[string]string, children ...SerializableNode) SerializableNode {
	return SerializableNode{Tag: tag, Attrs: attrs, Children: children}
}

func txt(s string) SerializableNode {
	return SerializableNode{Text: s}
}

func quote(children ...SerializableNode) SerializableNode {
	return elAttrs("em", map[string]string{"class": "quote"}, children...)
}

// renderBody renders body as post 1 of thread 1 from a clean state.
func renderBody(t *testing.T, body string) *Tree {
	t.Helper()
	return NewRenderer().RenderBody(&Post{ID: 1, OP: 1, Body: body})
}

func requireTree(t *testing.T, want SerializableNode, tree *Tree) {
	t.Helper()
	if diff := cmp.Diff(want, tree.Serialize()); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

// requireInvariantPanic runs fn and checks it panics with an *InvariantError
// wrapping target.
func requireInvariantPanic(t *testing.T, target error, fn func()) {
	t.Helper()

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()

	require.NotNil(t, recovered, "expected a panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %T is not an error", recovered)

	var ie *InvariantError
	require.True(t, errors.As(err, &ie), "expected *InvariantError, got %T (%v)", err, err)
	require.ErrorIs(t, err, target)
}

// findAll returns the indices of all elements with the given tag and,
// when class is not empty, that class.
func findAll(tree *Tree, tag, class string) []int {
	var out []int
	for i, n := range tree.Nodes {
		if n.Type == NodeText || n.Tag != tag {
			continue
		}
		if class != "" && n.Attrs["class"] != class {
			continue
		}
		out = append(out, i)
	}
	return out
}

var spanByTag = map[string]SpanKind{
	"code": SpanCode,
	"del":  SpanSpoiler,
	"b":    SpanBold,
	"i":    SpanItalic,
}

// checkNesting walks the tree and fails when a span element has an ancestor
// span of the same or a later kind.
func checkNesting(t *testing.T, input string, tree *Tree) {
	t.Helper()

	var walk func(idx int, ancestors []SpanKind)
	walk = func(idx int, ancestors []SpanKind) {
		n := tree.Nodes[idx]
		if n.Type == NodeText {
			return
		}
		if k, ok := spanByTag[n.Tag]; ok {
			for _, a := range ancestors {
				if a >= k {
					t.Fatalf("input %q: %s nested inside %s", input, k.Tag(), a.Tag())
				}
			}
			ancestors = append(ancestors, k)
		}
		for c := n.FirstChild; c != -1; c = tree.Nodes[c].NextSibling {
			walk(c, ancestors)
		}
	}

	walk(0, nil)
}
