package markup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBody_BlankLines_CollapseToOneEmptyLine(t *testing.T) {
	tree := renderBody(t, "a\n\n\n\nb")

	requireTree(t, el("blockquote",
		txt("a"), el("br"), el("br"), txt("b"),
	), tree)
}

func TestParseBody_QuoteLine_WrappedInQuote(t *testing.T) {
	tree := renderBody(t, "plain\n>quoted **s**")

	requireTree(t, el("blockquote",
		txt("plain"),
		el("br"),
		quote(txt(">quoted "), el("del", txt("s"))),
	), tree)
}

func TestParseBody_ReferenceAtLineStart_NotAQuote(t *testing.T) {
	tree := renderBody(t, ">>42 hi")

	require.Empty(t, findAll(tree, "em", "quote"))
	require.Len(t, findAll(tree, "span", "dead-link"), 1)
}

func TestParseBody_SpoilerAcrossLines_ReopenedAfterBreak(t *testing.T) {
	tree := renderBody(t, "**a\nb**")

	requireTree(t, el("blockquote",
		el("del", txt("a")),
		el("br"),
		el("del", txt("b")),
	), tree)
}

func TestParseBody_QuoteInsideCode_RenderedLiterally(t *testing.T) {
	tree := renderBody(t, "``\n>not a quote\n``")

	require.Empty(t, findAll(tree, "em", "quote"))

	markers := findAll(tree, "span", "quote-marker")
	require.Len(t, markers, 1)
	require.Equal(t, ">", tree.TextContent(markers[0]))

	var found bool
	for _, idx := range findAll(tree, "code", "") {
		if tree.TextContent(idx) == ">not a quote" {
			found = true
		}
	}
	require.True(t, found, "code span with the quoted line not found")
}

func TestParseWords_URL_BecomesLink(t *testing.T) {
	tree := renderBody(t, "see https://example.org, ok")

	requireTree(t, el("blockquote",
		txt("see "),
		elAttrs("a", map[string]string{
			"href":   "https://example.org",
			"rel":    "noreferrer",
			"target": "_blank",
		}, txt("https://example.org")),
		txt(", ok"),
	), tree)
}

func TestParseWords_BareScheme_StaysText(t *testing.T) {
	tree := renderBody(t, "http://")
	requireTree(t, el("blockquote", txt("http://")), tree)
}

func TestParsePostRef(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		id    uint64
		ok    bool
	}{
		{"Plain", ">>42", 42, true},
		{"TrailingText", ">>7abc", 7, true},
		{"NoDigits", ">>x", 0, false},
		{"SingleMarker", ">42", 0, false},
		{"Max", ">>18446744073709551615", 18446744073709551615, true},
		{"Overflow", ">>18446744073709551616", 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := parsePostRef(tc.input)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.id, id)
		})
	}
}

func TestParse_ResumeKeepsFlags_ResetClearsThem(t *testing.T) {
	r := NewRenderer()
	post := &Post{ID: 1, OP: 1}

	var s State
	first := NewTree("blockquote")
	s.Reset(first, 0)
	r.Parse(&s, post, "**a")
	require.True(t, s.IsOpen(SpanSpoiler))

	second := NewTree("blockquote")
	s.Resume(second, 0)
	r.Parse(&s, post, "b**c")
	requireTree(t, el("blockquote", el("del", txt("b")), txt("c")), second)

	s.Restore(Snapshot{Spoiler: true})
	third := NewTree("blockquote")
	s.Reset(third, 0)
	r.Parse(&s, post, "b**c")
	requireTree(t, el("blockquote", txt("b"), el("del", txt("c"))), third)
}

func TestResumeBody_SnapshotCarriesOpenSpans(t *testing.T) {
	r := NewRenderer()

	_, snap := r.ResumeBody(&Post{ID: 1, OP: 1, Body: "__a"}, Snapshot{})
	require.Equal(t, Snapshot{Bold: true}, snap)

	tree, snap := r.ResumeBody(&Post{ID: 1, OP: 1, Body: "b__"}, snap)
	requireTree(t, el("blockquote", el("b", txt("b"))), tree)
	require.Equal(t, Snapshot{}, snap)
}

func TestResumeBody_CodeSpanAcrossPasses(t *testing.T) {
	r := NewRenderer()

	_, snap := r.ResumeBody(&Post{ID: 1, OP: 1, Body: "``x"}, Snapshot{})
	require.True(t, snap.Code)

	tree, snap := r.ResumeBody(&Post{ID: 1, OP: 1, Body: "**y``"}, snap)
	require.False(t, snap.Code)
	require.False(t, snap.Spoiler, "spoiler delimiter inside code must not toggle")
	require.Empty(t, findAll(tree, "del", ""))
	require.Equal(t, "**y", tree.TextContent(0))
}

func TestState_AscendPastRoot_Panics(t *testing.T) {
	var s State
	s.Reset(NewTree("blockquote"), 0)

	requireInvariantPanic(t, ErrAscendPastRoot, s.Ascend)
}

func TestState_Snapshot_RoundTrip(t *testing.T) {
	snap := Snapshot{
		Code:               true,
		Italic:             true,
		Quote:              true,
		HaveSyncwatch:      true,
		SuccessiveNewlines: 2,
		CommandIndex:       3,
	}

	var s State
	s.Restore(snap)
	require.Equal(t, snap, s.Snapshot())
	require.True(t, s.IsOpen(SpanCode))
	require.False(t, s.IsOpen(SpanBold))
}

func TestRender_EditingPost_HasEditingClass(t *testing.T) {
	tree := NewRenderer().Render(&Post{ID: 3, OP: 1, Editing: true, Body: "hi"})

	root := tree.Root()
	require.Equal(t, "article", root.Tag)
	require.Equal(t, "p3", root.Attrs["id"])
	require.Equal(t, "post editing", root.Attrs["class"])
	require.Equal(t, "hi", tree.TextContent(0))
}
