// Package core defines the shared binary-tree Node type used by every
// lvltree package, together with traversals and structural helpers.
//
// What
//
//   - Node: one tree node holding an int64 Value and two owned child links,
//     Left and Right. A nil *Node is the explicit "no node" variant: the
//     empty tree is a nil root, a missing child is a nil link. No value
//     sentinel is ever used to mean "absent".
//   - Traversals: Preorder, Inorder, Postorder, LevelOrder — each walks the
//     tree once and returns the visited values as a fresh []int64.
//   - Structure: Size, Height, Clone, Equal, Invert.
//   - Validation: Validate reports trees that violate the single-owner
//     invariant (a node reachable twice, which includes cycles);
//     HasDistinctValues reports whether every value occurs once.
//
// Why
//
//   - codec and rebuild both consume and produce *core.Node; keeping the
//     type in one leaf package avoids any dependency between them.
//   - Traversal slices are the ground truth for reconstruction contracts:
//     rebuild(pre, in) promises a tree whose Preorder and Inorder equal the
//     inputs.
//
// Ownership & invariants
//
//	A well-formed tree is finite, acyclic, and single-owner: no node is its
//	own ancestor and no node has two parents. Constructors here cannot
//	create a violating shape on their own; Validate exists for callers that
//	assemble nodes by hand.
//
// Concurrency
//
//	Nodes carry no locks and no hidden state. Trees are safe for concurrent
//	reads; callers that mutate a shared tree must synchronize externally.
//
// Complexity (n = number of nodes)
//
//   - All traversals, Size, Height, Clone, Equal, Invert, Validate: O(n)
//     time. Recursive helpers use O(h) stack, h = tree height.
//
// Errors
//
//   - ErrSharedNode  if a node is reachable through two parents.
//   - ErrCyclicTree  if a node is its own ancestor.
package core
