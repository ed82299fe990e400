package boxtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/style/cssom"
	"github.com/npillmayer/boxflow/dom/styledtree"
	"github.com/npillmayer/boxflow/maybe"
	"github.com/npillmayer/boxflow/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func displaySheet(rules map[string]string) []*cssom.StyleSheet {
	sheet := cssom.NewStyleSheet(cssom.Author)
	for tag, display := range rules {
		sheet.AddRule(cssom.NewRule(
			[]cssom.SimpleSelector{{Tag: maybe.Just(tag)}},
			cssom.Declaration{Name: "display", Value: style.Keyword(display)},
		))
	}
	return []*cssom.StyleSheet{sheet}
}

func TestBuildSimpleTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	doc := dom.Elem("div", nil,
		dom.Elem("span", nil, dom.Text("a")),
		dom.Text("b"),
		dom.Elem("p", nil),
		dom.Elem("span", nil),
	)
	sheets := displaySheet(map[string]string{"div": "block", "p": "block"})
	root, err := BuildLayoutTree(styledtree.Style(doc, sheets))
	require.NoError(t, err)
	t.Logf("box tree:\n%s", root.Dump())
	assert.Equal(t, BlockNode, root.Type)
	children := root.ChildBoxes()
	require.Len(t, children, 3)
	assert.Equal(t, AnonymousBlock, children[0].Type)
	assert.Equal(t, 2, children[0].ChildCount(), "span and text share one anonymous box")
	assert.Equal(t, BlockNode, children[1].Type)
	assert.Equal(t, AnonymousBlock, children[2].Type)
	span := children[0].ChildBoxes()[0]
	assert.Equal(t, InlineNode, span.Type)
	assert.Equal(t, 1, span.ChildCount(), "inline boxes contain inline children directly")
}

func TestAnonymousBoxInvariant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	doc := dom.Elem("body", nil,
		dom.Elem("h1", nil, dom.Text("title")),
		dom.Text("x"), dom.Elem("em", nil), dom.Comment("c"),
		dom.Elem("div", nil, dom.Elem("div", nil, dom.Text("deep"))),
		dom.Elem("b", nil, dom.Elem("div", nil)),
	)
	sheets := displaySheet(map[string]string{"body": "block", "h1": "block", "div": "block"})
	root, err := BuildLayoutTree(styledtree.Style(doc, sheets))
	require.NoError(t, err)
	root.Walk(func(n *tree.Node[*Box], depth int) bool {
		box := Node(n)
		if box.IsAnonymous() {
			require.NotNil(t, box.ParentBox())
			if box.ParentBox().Type != BlockNode {
				t.Errorf("expected anonymous box to have a block parent, has %s", box.ParentBox())
			}
			for _, ch := range box.ChildBoxes() {
				if ch.Type != InlineNode {
					t.Errorf("expected anonymous box to contain inline boxes only, has %s", ch)
				}
			}
		}
		assertNoAdjacentAnonymous(t, box)
		return true
	})
	// the inline <b> keeps its block child
	last := root.ChildBoxes()[len(root.ChildBoxes())-1]
	require.Equal(t, AnonymousBlock, last.Type)
	b := last.ChildBoxes()[0]
	require.Equal(t, 1, b.ChildCount())
	assert.Equal(t, BlockNode, b.ChildBoxes()[0].Type)
}

func TestDisplayNoneDropsSubtree(t *testing.T) {
	doc := dom.Elem("div", nil,
		dom.Elem("head", nil, dom.Elem("div", nil)),
		dom.Elem("p", nil),
	)
	sheets := displaySheet(map[string]string{"div": "block", "p": "block", "head": "none"})
	root, err := BuildLayoutTree(styledtree.Style(doc, sheets))
	require.NoError(t, err)
	require.Equal(t, 1, root.ChildCount())
	assert.Equal(t, "p", root.ChildBoxes()[0].StyleNode().DOMNode().NodeName())
}

func TestRootDisplayNone(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	doc := dom.Elem("html", nil, dom.Elem("p", nil))
	sheets := displaySheet(map[string]string{"html": "none"})
	_, err := BuildLayoutTree(styledtree.Style(doc, sheets))
	require.Error(t, err)
	if !errors.Is(err, ErrRootDisplayNone) {
		t.Errorf("expected error to wrap ErrRootDisplayNone, is %v", err)
	}
}

func TestAnonymousStyleNodePanics(t *testing.T) {
	anon := NewBox(AnonymousBlock, nil)
	assert.Panics(t, func() { anon.StyleNode() })
	assert.Panics(t, func() { NewBox(BlockNode, nil) })
}

func TestDimensionBoxes(t *testing.T) {
	d := Dimensions{
		Content: Rect{X: 20, Y: 30, Width: 100, Height: 50},
		Padding: EdgeSizes{Left: 1, Top: 2, Right: 3, Bottom: 4},
		Border:  EdgeSizes{Left: 1, Top: 1, Right: 1, Bottom: 1},
		Margin:  EdgeSizes{Left: 10, Top: 10, Right: 10, Bottom: 10},
	}
	assert.Equal(t, Rect{X: 19, Y: 28, Width: 104, Height: 56}, d.PaddingBox())
	assert.Equal(t, Rect{X: 18, Y: 27, Width: 106, Height: 58}, d.BorderBox())
	assert.Equal(t, Rect{X: 8, Y: 17, Width: 126, Height: 78}, d.MarginBox())
	vp := Viewport(800, 600)
	assert.Equal(t, vp.Content, vp.MarginBox())
}

func assertNoAdjacentAnonymous(t *testing.T, box *Box) {
	t.Helper()
	children := box.ChildBoxes()
	for i := 1; i < len(children); i++ {
		if children[i-1].IsAnonymous() && children[i].IsAnonymous() {
			t.Errorf("expected no adjacent anonymous boxes in %s, found them at %d and %d", box, i-1, i)
		}
	}
}

func TestInlineRunAcrossHiddenElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.frame")
	defer teardown()
	//
	doc := dom.Elem("div", nil,
		dom.Text("a"), dom.Elem("script", nil), dom.Text("b"),
		dom.Elem("p", nil),
		dom.Text("c"), dom.Elem("em", nil),
	)
	sheets := displaySheet(map[string]string{"div": "block", "p": "block", "script": "none"})
	root, err := BuildLayoutTree(styledtree.Style(doc, sheets))
	require.NoError(t, err)
	t.Logf("box tree:\n%s", root.Dump())
	assertNoAdjacentAnonymous(t, root)
	children := root.ChildBoxes()
	require.Len(t, children, 3)
	assert.Equal(t, AnonymousBlock, children[0].Type)
	assert.Equal(t, 2, children[0].ChildCount(), "text around a hidden element shares one anonymous box")
	assert.Equal(t, BlockNode, children[1].Type)
	assert.Equal(t, AnonymousBlock, children[2].Type)
	assert.Equal(t, 2, children[2].ChildCount())
}
