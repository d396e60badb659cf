// Package core declares the Node type, its constructors, and the sentinel
// errors for structural validation.
package core

import "errors"

// Sentinel errors for structural validation.
var (
	// ErrSharedNode indicates a node reachable through more than one parent.
	ErrSharedNode = errors.New("core: node has multiple parents")

	// ErrCyclicTree indicates a node that is its own ancestor.
	ErrCyclicTree = errors.New("core: tree contains a cycle")
)

// Node is one binary-tree node.
//
// Value is the payload; Left and Right are owned child links, each either
// nil (no child) or the unique parent-side reference to that child.
// A nil *Node denotes the empty tree at the root position.
type Node struct {
	// Value is the integer payload of this node.
	Value int64

	// Left is the root of the left subtree, or nil.
	Left *Node

	// Right is the root of the right subtree, or nil.
	Right *Node
}

// New returns a leaf node holding value.
// Complexity: O(1)
func New(value int64) *Node {
	return &Node{Value: value}
}

// NewWithChildren returns a node holding value with the given subtrees
// attached. Either child may be nil.
// Complexity: O(1)
func NewWithChildren(value int64, left, right *Node) *Node {
	return &Node{Value: value, Left: left, Right: right}
}
