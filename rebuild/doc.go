// Package rebuild reconstructs a binary tree from a pair of its traversal
// orders: (preorder, inorder) or (postorder, inorder).
//
// What
//
//   - FromPreorderInorder(pre, in): the unique tree whose Preorder is pre
//     and Inorder is in.
//   - FromPostorderInorder(post, in): the same, anchored on postorder.
//   - Both run in O(n) via a value→position map over inorder, built once per
//     call; each recursive split locates its root in O(1) instead of
//     rescanning inorder.
//
// Why
//
//   - A single traversal never fixes a shape; a depth-first order paired
//     with inorder does, provided every value is distinct. Preorder (or
//     postorder) names each subtree's root, inorder splits its left and
//     right descendants around that root.
//
// Contract
//
//	Inputs must be two same-length listings of one tree with all-distinct
//	values. Distinctness is not optional: with duplicates the pair no
//	longer identifies one tree, so duplicates are rejected rather than
//	resolved by guesswork. Empty inputs (n = 0) yield a nil root and no
//	error. Inputs are never mutated; the result shares no memory with them.
//
// Determinism
//
//	The reconstruction is exact, not heuristic: for a valid pair the result
//	is shape- and value-identical to the originating tree, and two calls
//	with equal inputs yield structurally equal, independently allocated
//	trees.
//
// Complexity (n = number of values)
//
//   - Time:   O(n) — one map build plus one O(1) split per node.
//   - Memory: O(n) for the index map, O(h) recursion stack, h = height.
//
// Usage
//
//	root, err := rebuild.FromPreorderInorder(
//	    []int64{3, 9, 20, 15, 7},
//	    []int64{9, 3, 15, 20, 7},
//	)
//	...
//	root, err = rebuild.FromPostorderInorder(post, in, rebuild.WithContext(ctx))
//
// Errors
//
//   - ErrInconsistentTraversalPair  if lengths differ, a value repeats in
//     inorder, or the orders disagree on membership or subtree layout. No
//     partial tree is ever returned.
//   - context.Canceled / DeadlineExceeded if a supplied context ends.
package rebuild
