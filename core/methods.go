// File: methods.go
// Role: Structural helpers over *Node — size, height, deep copy, equality,
//       inversion, and single-owner validation.

package core

import "fmt"

// Size returns the number of nodes in the tree rooted at n.
// A nil root counts as zero.
// Complexity: O(n)
func (n *Node) Size() int {
	if n == nil {
		return 0
	}

	return 1 + n.Left.Size() + n.Right.Size()
}

// Height returns the number of nodes on the longest root-to-leaf path.
// A nil root has height 0; a single node has height 1.
// Complexity: O(n)
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	lh, rh := n.Left.Height(), n.Right.Height()
	if lh > rh {
		return 1 + lh
	}

	return 1 + rh
}

// Clone returns a deep copy of the tree rooted at n.
// The copy shares no nodes with the original.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	return &Node{Value: n.Value, Left: n.Left.Clone(), Right: n.Right.Clone()}
}

// Equal reports whether the trees rooted at n and other have identical
// shape and identical values at every position.
// Complexity: O(min(n₁,n₂))
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	return n.Value == other.Value && n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Invert swaps the left and right subtrees of every node in place and
// returns the (unchanged) root pointer for chaining.
// Complexity: O(n)
func (n *Node) Invert() *Node {
	if n == nil {
		return nil
	}
	n.Left, n.Right = n.Right.Invert(), n.Left.Invert()

	return n
}

// Validate checks the single-owner invariant of the tree rooted at n:
// every node is reachable exactly once, and no node is its own ancestor.
// Returns nil for well-formed trees (including the empty tree),
// ErrCyclicTree if a node appears on its own ancestor path, or
// ErrSharedNode if a node is linked from two parents.
// Complexity: O(n) time, O(n) memory for the seen set.
func (n *Node) Validate() error {
	seen := make(map[*Node]struct{})
	onPath := make(map[*Node]struct{})

	var walk func(cur *Node) error
	walk = func(cur *Node) error {
		if cur == nil {
			return nil
		}
		if _, ok := onPath[cur]; ok {
			return fmt.Errorf("%w: node with value %d is its own ancestor", ErrCyclicTree, cur.Value)
		}
		if _, ok := seen[cur]; ok {
			return fmt.Errorf("%w: node with value %d reached twice", ErrSharedNode, cur.Value)
		}
		seen[cur] = struct{}{}
		onPath[cur] = struct{}{}
		if err := walk(cur.Left); err != nil {
			return err
		}
		if err := walk(cur.Right); err != nil {
			return err
		}
		delete(onPath, cur)

		return nil
	}

	return walk(n)
}

// HasDistinctValues reports whether every value in the tree rooted at n
// occurs exactly once. The empty tree is vacuously distinct.
// Complexity: O(n)
func (n *Node) HasDistinctValues() bool {
	values := make(map[int64]struct{}, n.Size())
	distinct := true

	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur == nil || !distinct {
			return
		}
		if _, dup := values[cur.Value]; dup {
			distinct = false
			return
		}
		values[cur.Value] = struct{}{}
		walk(cur.Left)
		walk(cur.Right)
	}
	walk(n)

	return distinct
}
