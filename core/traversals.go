// File: traversals.go
// Role: The four canonical visit orders over a tree, each returning a fresh
//       value slice. These slices are the contract currency of rebuild and
//       the test oracle for codec round-trips.

package core

// Preorder returns the values of the tree rooted at n in root-left-right
// order. The empty tree yields an empty (non-nil) slice.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Preorder() []int64 {
	out := make([]int64, 0, n.Size())

	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		out = append(out, cur.Value)
		walk(cur.Left)
		walk(cur.Right)
	}
	walk(n)

	return out
}

// Inorder returns the values of the tree rooted at n in left-root-right
// order. The empty tree yields an empty (non-nil) slice.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Inorder() []int64 {
	out := make([]int64, 0, n.Size())

	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		walk(cur.Left)
		out = append(out, cur.Value)
		walk(cur.Right)
	}
	walk(n)

	return out
}

// Postorder returns the values of the tree rooted at n in left-right-root
// order. The empty tree yields an empty (non-nil) slice.
// Complexity: O(n) time, O(h) stack.
func (n *Node) Postorder() []int64 {
	out := make([]int64, 0, n.Size())

	var walk func(cur *Node)
	walk = func(cur *Node) {
		if cur == nil {
			return
		}
		walk(cur.Left)
		walk(cur.Right)
		out = append(out, cur.Value)
	}
	walk(n)

	return out
}

// LevelOrder returns the values of the tree rooted at n in breadth-first
// order: all nodes at depth d before any node at depth d+1, siblings
// left-before-right. Missing children emit nothing here; codec.Serialize is
// the variant that records explicit null markers.
// Complexity: O(n) time, O(w) memory, w = maximum level width.
func (n *Node) LevelOrder() []int64 {
	if n == nil {
		return []int64{}
	}
	out := make([]int64, 0, n.Size())
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur.Value)
		if cur.Left != nil {
			queue = append(queue, cur.Left)
		}
		if cur.Right != nil {
			queue = append(queue, cur.Right)
		}
	}

	return out
}
