package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/boxflow/dom"
	"github.com/npillmayer/boxflow/dom/style"
	"github.com/npillmayer/boxflow/dom/style/css"
	"github.com/npillmayer/boxflow/dom/style/cssom"
	"github.com/npillmayer/boxflow/tree"
	tp "github.com/xlab/treeprint"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	domNode             *dom.Node
	computedStyles      *style.PropertyMap
}

// NewNodeForDOMNode creates a new styled node linked to a document node.
func NewNodeForDOMNode(n *dom.Node) *StyNode {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.domNode = n
	return sn
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// DOMNode gets the document node corresponding to this styled node.
func (sn *StyNode) DOMNode() *dom.Node {
	return sn.domNode
}

// Styles returns the computed property map of a styled node.
// It is never nil for nodes created by Style.
func (sn *StyNode) Styles() *style.PropertyMap {
	return sn.computedStyles
}

// SetStyles sets the styling properties of a styled node.
func (sn *StyNode) SetStyles(styles *style.PropertyMap) {
	sn.computedStyles = styles
}

// ParentNode returns the parent styled node, or nil for the root.
func (sn *StyNode) ParentNode() *StyNode {
	return Node(sn.Parent())
}

// ChildNodes returns the children of a styled node, in document order.
func (sn *StyNode) ChildNodes() []*StyNode {
	return sn.ChildPayloads()
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("Sty(%s)", sn.domNode)
}

// --- Building the styled tree -----------------------------------------

// Style creates a styled tree for a document tree, given a list of
// stylesheets. Style never fails; a nil root yields a nil styled tree.
func Style(root *dom.Node, sheets []*cssom.StyleSheet) *StyNode {
	if root == nil {
		return nil
	}
	tracer().Infof("styling document tree with %d stylesheets", len(sheets))
	return styleNode(root, sheets, nil)
}

func styleNode(n *dom.Node, sheets []*cssom.StyleSheet, parent *style.PropertyMap) *StyNode {
	sn := NewNodeForDOMNode(n)
	if n.IsElement() {
		sn.SetStyles(cssom.SpecifiedValues(n.Element, sheets, parent))
	} else {
		sn.SetStyles(style.NewPropertyMap())
	}
	for _, ch := range n.Children {
		sn.AddChild(&styleNode(ch, sheets, sn.Styles()).Node)
	}
	return sn
}

// --- Debugging --------------------------------------------------------

// Dump returns a textual tree representation of a styled tree, listing the
// computed properties of every element.
func (sn *StyNode) Dump() string {
	printer := tp.New()
	dumpChildren(sn, printer.AddBranch(nodeLabel(sn)))
	return printer.String()
}

func dumpChildren(sn *StyNode, branch tp.Tree) {
	for _, ch := range sn.ChildNodes() {
		if ch.ChildCount() == 0 {
			branch.AddNode(nodeLabel(ch))
			continue
		}
		dumpChildren(ch, branch.AddBranch(nodeLabel(ch)))
	}
}

func nodeLabel(sn *StyNode) string {
	if sn.domNode.IsElement() {
		return fmt.Sprintf("%s %s %s", css.DisplayOf(sn.Styles()).Symbol(), sn.domNode, sn.Styles())
	}
	return sn.domNode.String()
}
