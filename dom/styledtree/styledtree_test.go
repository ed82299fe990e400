package styledtree

import (
	"testing"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/style/cssom"
	"github.com/npillmayer/boxflow/maybe"
	"github.com/npillmayer/boxflow/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *dom.Node {
	return dom.Elem("html", nil,
		dom.Elem("body", dom.AttrMap{"class": "main"},
			dom.Elem("p", nil,
				dom.Text("Hello "),
				dom.Elem("b", nil, dom.Text("World")),
			),
			dom.Comment("no style for me"),
			dom.Elem("div", dom.AttrMap{"id": "box"}),
		),
	)
}

func testSheets() []*cssom.StyleSheet {
	sel := func(t string) []cssom.SimpleSelector {
		return []cssom.SimpleSelector{{Tag: maybe.Just(t)}}
	}
	author := cssom.NewStyleSheet(cssom.Author).
		AddRule(cssom.NewRule(
			[]cssom.SimpleSelector{{Classes: []string{"main"}}},
			cssom.Declaration{Name: "color", Value: style.Color{R: 0xff, A: 0xff}},
			cssom.Declaration{Name: "margin-left", Value: style.Pixels(8)},
		)).
		AddRule(cssom.NewRule(sel("div"),
			cssom.Declaration{Name: "width", Value: style.Pixels(100)},
		))
	return []*cssom.StyleSheet{cssom.UserDefaults(), author}
}

func TestStyleTreeIsomorphic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	doc := testDocument()
	root := Style(doc, testSheets())
	require.NotNil(t, root)
	var check func(sn *StyNode, n *dom.Node)
	check = func(sn *StyNode, n *dom.Node) {
		if sn.DOMNode() != n {
			t.Fatalf("expected styled node to reference %s, references %s", n, sn.DOMNode())
		}
		if sn.Styles() == nil {
			t.Errorf("expected %s to have a property map", sn)
		}
		require.Equal(t, len(n.Children), sn.ChildCount(), "children of %s", n)
		for i, ch := range sn.ChildNodes() {
			if ch.ParentNode() != sn {
				t.Errorf("expected parent link of %s to point to %s", ch, sn)
			}
			check(ch, n.Children[i])
		}
	}
	check(root, doc)
	t.Logf("styled tree:\n%s", root.Dump())
}

func TestStyleTreeInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxflow.style")
	defer teardown()
	//
	root := Style(testDocument(), testSheets())
	body := root.ChildNodes()[0]
	p := body.ChildNodes()[0]
	b := p.ChildNodes()[1]
	red := style.Color{R: 0xff, A: 0xff}
	assert.Equal(t, red, body.Styles().Lookup("color", "", nil))
	assert.Equal(t, red, p.Styles().Lookup("color", "", nil))
	assert.Equal(t, red, b.Styles().Lookup("color", "", nil), "color inherits transitively")
	assert.Equal(t, style.Pixels(8), body.Styles().Lookup("margin-left", "", nil))
	assert.False(t, p.Styles().IsSet("margin-left"), "margin does not inherit")
	assert.Equal(t, style.Keyword("block"), p.Styles().Lookup("display", "", nil))
	assert.False(t, b.Styles().IsSet("display"))
	// closure: every inheritable property of a parent is set in its element children
	root.Walk(func(n *tree.Node[*StyNode], depth int) bool {
		sn := Node(n)
		parent := sn.ParentNode()
		if parent == nil || !sn.DOMNode().IsElement() {
			return true
		}
		for _, kv := range parent.Styles().Properties() {
			if style.IsInherited(kv.Key) && !sn.Styles().IsSet(kv.Key) {
				t.Errorf("expected %s to inherit %s from %s", sn, kv.Key, parent)
			}
		}
		return true
	})
}

func TestStyleTreeTextNodes(t *testing.T) {
	root := Style(testDocument(), testSheets())
	text := root.ChildNodes()[0].ChildNodes()[0].ChildNodes()[0]
	assert.Equal(t, dom.TextNode, text.DOMNode().Type)
	assert.Equal(t, 0, text.Styles().Size())
	comment := root.ChildNodes()[0].ChildNodes()[1]
	assert.Equal(t, 0, comment.Styles().Size())
	assert.Nil(t, Style(nil, nil))
}

func TestDumpShowsDisplayMode(t *testing.T) {
	root := Style(testDocument(), testSheets())
	dump := root.Dump()
	t.Logf("styled tree:\n%s", dump)
	assert.Contains(t, dump, "▩ <html>", "expected <html> to be marked as block")
	assert.Contains(t, dump, "► <b>", "expected <b> to be marked as inline")
}
