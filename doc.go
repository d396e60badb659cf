// Package lvltree is a small, focused toolkit for working with in-memory
// binary trees: lossless level-order serialization and reconstruction of a
// tree from its traversal orders.
//
// 🌳 What is lvltree?
//
//	A pure-Go, zero-runtime-dependency library built around one shared type:
//		• core/    — the Node type, traversals (preorder, inorder, postorder,
//		             level order), and structural helpers (Size, Height, Clone,
//		             Equal, Invert, Validate)
//		• codec/   — level-order token serialization with explicit null markers,
//		             plus an exact text form ("3,9,20,null,null,15,7,...")
//		• rebuild/ — reconstruct the unique tree from (preorder, inorder) or
//		             (postorder, inorder) pairs of distinct values in O(n)
//
// ✨ Why choose lvltree?
//
//   - Stateless & reentrant – every call owns its inputs and outputs; no
//     package-level state, safe under any concurrency without locks
//   - Strict failure semantics – malformed token streams and inconsistent
//     traversal pairs are rejected with sentinel errors, never guessed at
//   - Pure Go – no cgo, no hidden deps
//
// Quick ASCII example:
//
//	      3
//	     / \
//	    9  20
//	       / \
//	      15  7
//
//	serializes to the token sequence [3 9 20 null null 15 7 null null null null]
//	and is rebuilt from preorder [3 9 20 15 7] + inorder [9 3 15 20 7].
//
// Dive into each package's doc.go for contracts, complexity, and examples.
//
//	go get github.com/katalvlaran/lvltree
package lvltree
