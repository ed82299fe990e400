package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/boxflow/maybe"
)

// NodeType discriminates the variants of a document node.
type NodeType uint8

// Node variants.
const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	case CommentNode:
		return "comment"
	}
	return fmt.Sprintf("NodeType(%d)", t)
}

// AttrMap holds the attributes of an element. Keys are unique.
type AttrMap map[string]string

// ElementData is the payload of an element node.
type ElementData struct {
	TagName string
	Attrs   AttrMap
}

// Node is the building block of a document tree.
// Exactly one of Element (for ElementNode) or Data (for text and comments)
// is meaningful, depending on Type.
type Node struct {
	Type     NodeType
	Element  *ElementData
	Data     string
	Children []*Node
}

// Elem creates an element node. attrs may be nil.
func Elem(tag string, attrs AttrMap, children ...*Node) *Node {
	if attrs == nil {
		attrs = AttrMap{}
	}
	return &Node{
		Type:     ElementNode,
		Element:  &ElementData{TagName: tag, Attrs: attrs},
		Children: children,
	}
}

// Text creates a text node.
func Text(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// Comment creates a comment node.
func Comment(data string) *Node {
	return &Node{Type: CommentNode, Data: data}
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementNode
}

// NodeName returns the tag name for elements, "#text" or "#comment" otherwise.
func (n *Node) NodeName() string {
	switch n.Type {
	case ElementNode:
		return n.Element.TagName
	case TextNode:
		return "#text"
	}
	return "#comment"
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Type == ElementNode {
		return fmt.Sprintf("<%s>", n.Element.TagName)
	}
	return fmt.Sprintf("%s(%q)", n.NodeName(), shorten(n.Data, 16))
}

// Attr returns the value of an attribute, if present.
func (e *ElementData) Attr(key string) (string, bool) {
	if e == nil || e.Attrs == nil {
		return "", false
	}
	v, ok := e.Attrs[key]
	return v, ok
}

// ID returns the value of the 'id' attribute. An empty id is no id.
func (e *ElementData) ID() maybe.Maybe[string] {
	id := maybe.Nothing[string]()
	if v, ok := e.Attr("id"); ok {
		id = maybe.Just(v)
	}
	return maybe.AndThen(id, nonBlank)
}

func nonBlank(s string) maybe.Maybe[string] {
	if s = strings.TrimSpace(s); s == "" {
		return maybe.Nothing[string]()
	}
	return maybe.Just(s)
}

// ClassSet is a set of class names.
type ClassSet map[string]struct{}

// Contains is a predicate for membership of class c.
func (cs ClassSet) Contains(c string) bool {
	_, ok := cs[c]
	return ok
}

// Classes returns the whitespace-separated tokens of the 'class' attribute.
func (e *ElementData) Classes() ClassSet {
	attr, ok := e.Attr("class")
	if !ok {
		return ClassSet{}
	}
	fields := strings.Fields(attr)
	cs := make(ClassSet, len(fields))
	for _, c := range fields {
		cs[c] = struct{}{}
	}
	return cs
}

func shorten(s string, l int) string {
	if r := []rune(s); len(r) > l {
		return string(r[:l]) + "…"
	}
	return s
}
