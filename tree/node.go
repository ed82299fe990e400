package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain an ordered slice of children.

Both the styled tree and the box tree are built on top of this type. The
styled tree is shaped once and then frozen; the box tree is shaped once and
afterwards only its payloads (dimensions) are mutated during layout.
*/

// Node is the base type our trees are built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes carry a payload, usually referencing the embedding node
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the list of children.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		node.children.addChild(ch, node)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// LastChild returns the last child of a node, if any.
func (node *Node[T]) LastChild() (*Node[T], bool) {
	return node.Child(node.ChildCount() - 1)
}

// Children returns a slice with all children of a node, in order.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// ChildPayloads returns the payloads of all children of a node, in order.
// This is the usual way for embedding types to iterate over their children.
func (node *Node[T]) ChildPayloads() []T {
	children := node.children.asSlice()
	payloads := make([]T, len(children))
	for i, ch := range children {
		payloads[i] = ch.Payload
	}
	return payloads
}

// Walk visits the sub-tree rooted at node depth-first, parents before their
// children, calling f with each node and its depth relative to node.
// If f returns false, the children of the current node are skipped.
//
// Walk is synchronous; it must not be used while another goroutine is
// adding children to nodes of the sub-tree.
func (node *Node[T]) Walk(f func(n *Node[T], depth int) bool) {
	node.walk(f, 0)
}

func (node *Node[T]) walk(f func(*Node[T], int) bool, depth int) {
	if node == nil || !f(node, depth) {
		return
	}
	for _, ch := range node.children.asSlice() {
		ch.walk(f, depth+1)
	}
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) addChild(child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
