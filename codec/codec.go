// Package codec implements lossless level-order serialization between a
// binary tree and a token sequence with explicit null markers.
package codec

import (
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// Serialize converts the tree rooted at root into its level-order token
// sequence. Every visited slot emits exactly one token: a value token for a
// real node, the null marker for a missing child. Null slots are not
// expanded. A nil root yields the single-token sequence [null].
// Returns the context's error if a WithContext option is cancelled mid-walk.
func Serialize(root *core.Node, opts ...Option) (Tokens, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if root == nil {
		return Tokens{NullToken()}, nil
	}

	// A tree of k nodes encodes to exactly 2k+1 tokens.
	k := root.Size()
	out := make(Tokens, 0, 2*k+1)
	queue := make([]*core.Node, 0, k)
	queue = append(queue, root)

	for len(queue) > 0 {
		// cancellation check (once per slot)
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		cur := queue[0]
		queue = queue[1:]
		if cur == nil {
			// a missing child: one null token, nothing enqueued
			out = append(out, NullToken())
			continue
		}
		out = append(out, ValueToken(cur.Value))
		// enqueue both child slots verbatim, nil links included
		queue = append(queue, cur.Left, cur.Right)
	}

	return out, nil
}

// decoder encapsulates mutable Deserialize state: the unread token window
// and the FIFO queue of parents still awaiting their two child tokens.
type decoder struct {
	opts   CodecOptions
	tokens Tokens
	pos    int
	queue  []*core.Node
}

// Deserialize rebuilds the tree encoded by tokens. The inverse of
// Serialize: Deserialize(Serialize(t)) is shape- and value-identical to t,
// and Serialize(Deserialize(x)) == x for well-formed x.
// Returns ErrMalformedTokenSequence if tokens is not an exact level-order
// encoding (empty input, extra tokens after a null root, a stream ending
// before a parent's two child tokens, or unconsumed leftovers); no partial
// tree is returned in that case.
func Deserialize(tokens Tokens, opts ...Option) (*core.Node, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrMalformedTokenSequence)
	}
	// A null root encodes the empty tree and admits no further tokens.
	if tokens[0].IsNull() {
		if len(tokens) > 1 {
			return nil, fmt.Errorf("%w: %d token(s) after null root", ErrMalformedTokenSequence, len(tokens)-1)
		}

		return nil, nil
	}

	root := core.New(tokens[0].Value())
	d := &decoder{
		opts:   o,
		tokens: tokens,
		pos:    1,
		queue:  []*core.Node{root},
	}
	if err := d.run(); err != nil {
		return nil, err
	}

	return root, nil
}

// run drains the parent queue, attaching two children per parent.
// The queue empties exactly when all tokens are consumed; any imbalance is
// malformed input.
func (d *decoder) run() error {
	for len(d.queue) > 0 {
		// cancellation check (once per parent)
		select {
		case <-d.opts.Ctx.Done():
			return d.opts.Ctx.Err()
		default:
		}

		parent := d.queue[0]
		d.queue = d.queue[1:]

		left, err := d.child(parent)
		if err != nil {
			return err
		}
		parent.Left = left

		right, err := d.child(parent)
		if err != nil {
			return err
		}
		parent.Right = right
	}

	if d.pos != len(d.tokens) {
		return fmt.Errorf("%w: %d leftover token(s)", ErrMalformedTokenSequence, len(d.tokens)-d.pos)
	}

	return nil
}

// child consumes the next token as one child slot of parent: nil for the
// null marker, otherwise a fresh node that joins the parent queue.
func (d *decoder) child(parent *core.Node) (*core.Node, error) {
	if d.pos == len(d.tokens) {
		return nil, fmt.Errorf("%w: stream ends before both children of node %d", ErrMalformedTokenSequence, parent.Value)
	}
	tok := d.tokens[d.pos]
	d.pos++
	if tok.IsNull() {
		return nil, nil
	}
	node := core.New(tok.Value())
	d.queue = append(d.queue, node)

	return node, nil
}
