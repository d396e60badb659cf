// Package codec provides lossless level-order serialization of a binary
// tree into a token sequence with explicit null markers, and the exact
// inverse.
//
// What
//
//   - Serialize(root): breadth-first walk emitting one token per visited
//     slot — the node's value for a real node, the null marker for a
//     missing child. Null slots are never expanded further. The empty tree
//     serializes to the single-token sequence [null].
//   - Deserialize(tokens): rebuilds the tree by feeding child tokens, two
//     at a time, to a FIFO queue of pending parents. Rejects anything that
//     is not an exact level-order encoding.
//   - Token / Tokens: the wire form. A Token is a tagged variant — either
//     an int64 value or null — so no integer is ever reserved as a
//     sentinel; every int64 is a legal node value.
//   - Text form: Tokens.String() renders "3,9,20,null,null,15,7,..." and
//     ParseTokens parses it back, token for token.
//
// Why
//
//   - Persist or transmit a tree with its exact shape, including which
//     children are absent; plain value traversals cannot express that.
//   - The sequence is self-delimiting: a tree of k nodes always encodes to
//     exactly 2k+1 tokens (one per node plus one null per empty slot).
//
// Round-trip guarantees
//
//	Deserialize(Serialize(t)) is shape- and value-identical to t, and
//	Serialize(Deserialize(x)) == x for every well-formed x. The same holds
//	for the text form via String/ParseTokens.
//
// Determinism
//
//	Emission order is strict FIFO level order: every slot at depth d before
//	any slot at depth d+1, siblings left-before-right. Identical trees
//	always produce identical sequences.
//
// Complexity (k = number of real nodes)
//
//   - Serialize:   O(k) time, O(w) queue memory, w = maximum level width.
//   - Deserialize: O(k) time, O(w) queue memory.
//
// Usage
//
//	tokens, err := codec.Serialize(root)
//	...
//	root2, err := codec.Deserialize(tokens)
//	...
//	root3, err := codec.Deserialize(tokens, codec.WithContext(ctx))
//
// Errors
//
//   - ErrMalformedTokenSequence  if the token count or layout does not
//     correspond to any level-order encoding (empty input, tokens after a
//     null root, a truncated child pair, or leftover tokens). No partial
//     tree is ever returned.
//   - ErrTokenSyntax             if ParseTokens meets text that is neither
//     an integer nor the null literal.
//   - context.Canceled / DeadlineExceeded if a supplied context ends.
package codec
