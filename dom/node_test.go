package dom_test

import (
	"testing"

	"github.com/npillmayer/boxflow/dom"
	"github.com/stretchr/testify/assert"
)

func TestElementID(t *testing.T) {
	div := dom.Elem("div", dom.AttrMap{"id": "main"})
	var id string
	switch m := div.Element.ID().Match(); m {
	case m.Just(&id):
	default:
		t.Fatalf("expected <div id=main> to have an id, hasn't")
	}
	assert.Equal(t, "main", id)

	p := dom.Elem("p", nil)
	assert.True(t, p.Element.ID().IsNothing(), "expected <p> without id attribute to have no id")
	blank := dom.Elem("p", dom.AttrMap{"id": "  "})
	assert.True(t, blank.Element.ID().IsNothing(), "expected blank id attribute to be no id")
	padded := dom.Elem("p", dom.AttrMap{"id": " intro "})
	assert.Equal(t, "intro", padded.Element.ID().WithDefault(""))
}

func TestNodeStringKeepsRunes(t *testing.T) {
	txt := dom.Text("Grüße aus Österreich, schöne Grüße")
	assert.Equal(t, `#text("Grüße aus Österr…")`, txt.String())
}

func TestElementClasses(t *testing.T) {
	p := dom.Elem("p", dom.AttrMap{"class": "  note  warning\tnote "})
	cs := p.Element.Classes()
	assert.Len(t, cs, 2)
	assert.True(t, cs.Contains("note"))
	assert.True(t, cs.Contains("warning"))
	assert.False(t, cs.Contains("error"))

	empty := dom.Elem("p", nil).Element.Classes()
	assert.Empty(t, empty)
}

func TestNodeNames(t *testing.T) {
	doc := dom.Elem("html", nil,
		dom.Elem("body", nil,
			dom.Text("Hello"),
			dom.Comment("note to self"),
		),
	)
	body := doc.Children[0]
	assert.Equal(t, "body", body.NodeName())
	assert.Equal(t, "#text", body.Children[0].NodeName())
	assert.Equal(t, "#comment", body.Children[1].NodeName())
	assert.True(t, body.IsElement())
	assert.False(t, body.Children[0].IsElement())
	t.Logf("nodes: %s %s %s", body, body.Children[0], body.Children[1])
}
