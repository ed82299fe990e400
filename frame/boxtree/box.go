package boxtree

import (
	"fmt"

	"github.com/npillmayer/boxflow/dom/styledtree"
	"github.com/npillmayer/boxflow/tree"
)

// BoxType is the type of a layout box.
type BoxType uint8

// Box types.
const (
	BlockNode BoxType = iota
	InlineNode
	AnonymousBlock
)

func (t BoxType) String() string {
	switch t {
	case BlockNode:
		return "block"
	case InlineNode:
		return "inline"
	case AnonymousBlock:
		return "anonymous"
	}
	return fmt.Sprintf("BoxType(%d)", t)
}

// --- Geometry ---------------------------------------------------------

// Rect is a rectangle in pixels, with origin top left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// ExpandedBy returns r, grown outwards by edge sizes e.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %g×%g)", r.X, r.Y, r.Width, r.Height)
}

// EdgeSizes are the sizes of the four edges of a box, in pixels.
type EdgeSizes struct {
	Left, Top, Right, Bottom float64
}

// Dimensions are the dimensions of a box: its content rectangle and the
// sizes of the surrounding edges.
type Dimensions struct {
	Content Rect // position and size of the content area
	Padding EdgeSizes
	Border  EdgeSizes
	Margin  EdgeSizes
}

// Viewport returns dimensions usable as the containing block of a root box:
// content at (0,0) with the given width and height, without edges.
func Viewport(width, height float64) Dimensions {
	return Dimensions{Content: Rect{Width: width, Height: height}}
}

// PaddingBox is the content area plus padding.
func (d Dimensions) PaddingBox() Rect {
	return d.Content.ExpandedBy(d.Padding)
}

// BorderBox is the padding box plus borders.
func (d Dimensions) BorderBox() Rect {
	return d.PaddingBox().ExpandedBy(d.Border)
}

// MarginBox is the border box plus margins.
func (d Dimensions) MarginBox() Rect {
	return d.BorderBox().ExpandedBy(d.Margin)
}

// --- Boxes ------------------------------------------------------------

// Box is a layout box, the building block of the box tree.
type Box struct {
	tree.Node[*Box] // we build on top of general purpose tree
	Type            BoxType
	Dimensions      Dimensions // zero until layout
	styleNode       *styledtree.StyNode
}

// NewBox creates a new box of a given type for a styled node. styleNode must
// be nil for anonymous boxes, and non-nil otherwise.
func NewBox(t BoxType, styleNode *styledtree.StyNode) *Box {
	if (t == AnonymousBlock) != (styleNode == nil) {
		panic(fmt.Sprintf("box of type %s with style node %v", t, styleNode))
	}
	box := &Box{Type: t, styleNode: styleNode}
	box.Payload = box // Payload will always reference the box itself
	return box
}

// Node gets the box from a generic tree node.
func Node(n *tree.Node[*Box]) *Box {
	if n == nil {
		return nil
	}
	return n.Payload
}

// StyleNode returns the styled node a box has been generated from.
// Anonymous boxes do not have a styled node; calling StyleNode on them
// panics.
func (box *Box) StyleNode() *styledtree.StyNode {
	if box.Type == AnonymousBlock || box.styleNode == nil {
		panic("boxtree: anonymous box has no style node")
	}
	return box.styleNode
}

// IsAnonymous is a predicate for anonymous boxes.
func (box *Box) IsAnonymous() bool {
	return box.Type == AnonymousBlock
}

// ParentBox returns the parent box, or nil for the root.
func (box *Box) ParentBox() *Box {
	return Node(box.Parent())
}

// ChildBoxes returns the children of a box, in order.
func (box *Box) ChildBoxes() []*Box {
	return box.ChildPayloads()
}

// AddChildBox appends a child box and returns the parent box.
func (box *Box) AddChildBox(ch *Box) *Box {
	if ch != nil {
		box.AddChild(&ch.Node)
	}
	return box
}

func (box *Box) String() string {
	if box.Type == AnonymousBlock {
		return "anonymous"
	}
	return fmt.Sprintf("%s %s", box.Type, box.styleNode.DOMNode())
}
