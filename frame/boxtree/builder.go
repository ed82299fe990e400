package boxtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boxflow/dom/style/css"
	"github.com/npillmayer/boxflow/dom/styledtree"
	tp "github.com/xlab/treeprint"
)

// ErrRootDisplayNone is flagged if the root of a styled tree has display mode
// "none". There is nothing to lay out in this case.
var ErrRootDisplayNone = errors.New("root node has display: none")

// BuildLayoutTree creates a tree of layout boxes for a styled tree.
// Nodes with display mode "none" are dropped together with their subtrees.
// If the root has display mode "none", BuildLayoutTree returns an error
// wrapping ErrRootDisplayNone.
func BuildLayoutTree(root *styledtree.StyNode) (*Box, error) {
	if root == nil {
		return nil, errors.New("cannot build layout tree for nil styled tree")
	}
	box := buildBox(root)
	if box == nil {
		tracer().Errorf("root %s has display: none", root)
		return nil, fmt.Errorf("building layout tree for %s: %w", root.DOMNode(), ErrRootDisplayNone)
	}
	return box, nil
}

// buildBox returns nil for nodes with display mode "none".
func buildBox(sn *styledtree.StyNode) *Box {
	var box *Box
	switch d := css.DisplayOf(sn.Styles()); d {
	case css.BlockMode:
		box = NewBox(BlockNode, sn)
	case css.InlineMode:
		box = NewBox(InlineNode, sn)
	default:
		tracer().Debugf("dropping %s with display %s", sn, d)
		return nil
	}
	for _, ch := range sn.ChildNodes() {
		child := buildBox(ch)
		if child == nil {
			continue
		}
		if child.Type == BlockNode {
			box.AddChildBox(child)
		} else {
			box.inlineContainer().AddChildBox(child)
		}
	}
	return box
}

// inlineContainer returns the box an inline child of box is appended to.
// Inline and anonymous boxes contain their inline children directly. Block
// boxes collect them in an anonymous box, re-using the last child if it is
// anonymous.
func (box *Box) inlineContainer() *Box {
	switch box.Type {
	case InlineNode, AnonymousBlock:
		return box
	}
	if last, ok := box.LastChild(); ok && Node(last).Type == AnonymousBlock {
		return Node(last)
	}
	anon := NewBox(AnonymousBlock, nil)
	box.AddChildBox(anon)
	return anon
}

// --- Debugging --------------------------------------------------------

// Dump returns a textual tree representation of a box tree, including the
// dimensions of every box.
func (box *Box) Dump() string {
	printer := tp.New()
	dumpBoxes(box, printer.AddBranch(boxLabel(box)))
	return printer.String()
}

func dumpBoxes(box *Box, branch tp.Tree) {
	for _, ch := range box.ChildBoxes() {
		if ch.ChildCount() == 0 {
			branch.AddNode(boxLabel(ch))
			continue
		}
		dumpBoxes(ch, branch.AddBranch(boxLabel(ch)))
	}
}

func boxLabel(box *Box) string {
	return fmt.Sprintf("%s %s", box, box.Dimensions.Content)
}
