// Package rebuild implements O(n) reconstruction of a binary tree from a
// depth-first traversal paired with inorder.
package rebuild

import (
	"fmt"

	"github.com/katalvlaran/lvltree/core"
)

// builder encapsulates one reconstruction pass: the anchoring depth-first
// order and the value→position map over inorder.
type builder struct {
	opts  BuildOptions
	order []int64       // preorder or postorder, depending on entry point
	index map[int64]int // value → position in inorder
}

// FromPreorderInorder reconstructs the unique tree whose preorder and
// inorder traversals are the given sequences. Empty inputs yield a nil
// root. Inputs are read-only; the result shares no memory with them.
// Returns ErrInconsistentTraversalPair if the sequences differ in length,
// inorder repeats a value, or the two orders disagree; no partial tree is
// returned.
func FromPreorderInorder(preorder, inorder []int64, opts ...Option) (*core.Node, error) {
	b, err := newBuilder(preorder, inorder, opts)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	n := len(preorder)

	return b.fromPre(0, n-1, 0, n-1)
}

// FromPostorderInorder is the postorder-anchored counterpart of
// FromPreorderInorder, with the same contract and failure semantics.
func FromPostorderInorder(postorder, inorder []int64, opts ...Option) (*core.Node, error) {
	b, err := newBuilder(postorder, inorder, opts)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}

	n := len(postorder)

	return b.fromPost(0, n-1, 0, n-1)
}

// newBuilder validates lengths, builds the inorder index, and returns the
// shared pass state. A nil builder with nil error signals the empty input.
func newBuilder(order, inorder []int64, opts []Option) (*builder, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(order) != len(inorder) {
		return nil, fmt.Errorf("%w: lengths %d and %d differ", ErrInconsistentTraversalPair, len(order), len(inorder))
	}
	if len(order) == 0 {
		return nil, nil
	}

	// One up-front index makes every subtree split O(1); rescanning inorder
	// per node would cost O(n²) on degenerate shapes.
	index := make(map[int64]int, len(inorder))
	for i, v := range inorder {
		if prev, dup := index[v]; dup {
			return nil, fmt.Errorf("%w: value %d repeats in inorder at positions %d and %d", ErrInconsistentTraversalPair, v, prev, i)
		}
		index[v] = i
	}

	return &builder{opts: o, order: order, index: index}, nil
}

// locate maps a root value into the inorder window [inL, inR].
// A miss or an out-of-window hit means the two orders disagree.
func (b *builder) locate(rootValue int64, inL, inR int) (int, error) {
	mid, ok := b.index[rootValue]
	if !ok {
		return 0, fmt.Errorf("%w: value %d absent from inorder", ErrInconsistentTraversalPair, rootValue)
	}
	if mid < inL || mid > inR {
		return 0, fmt.Errorf("%w: value %d falls outside its subtree window", ErrInconsistentTraversalPair, rootValue)
	}

	return mid, nil
}

// fromPre rebuilds the subtree spanning order[preL..preR] (preorder) and
// inorder[inL..inR]. Preorder names the root first; everything before the
// root's inorder position is its left subtree.
func (b *builder) fromPre(preL, preR, inL, inR int) (*core.Node, error) {
	// cancellation check (once per split)
	select {
	case <-b.opts.Ctx.Done():
		return nil, b.opts.Ctx.Err()
	default:
	}

	if preL > preR {
		return nil, nil
	}

	rootValue := b.order[preL]
	mid, err := b.locate(rootValue, inL, inR)
	if err != nil {
		return nil, err
	}
	leftSize := mid - inL

	left, err := b.fromPre(preL+1, preL+leftSize, inL, mid-1)
	if err != nil {
		return nil, err
	}
	right, err := b.fromPre(preL+leftSize+1, preR, mid+1, inR)
	if err != nil {
		return nil, err
	}

	return core.NewWithChildren(rootValue, left, right), nil
}

// fromPost rebuilds the subtree spanning order[postL..postR] (postorder)
// and inorder[inL..inR]. Postorder names the root last; the split logic is
// otherwise identical to fromPre.
func (b *builder) fromPost(postL, postR, inL, inR int) (*core.Node, error) {
	// cancellation check (once per split)
	select {
	case <-b.opts.Ctx.Done():
		return nil, b.opts.Ctx.Err()
	default:
	}

	if postL > postR {
		return nil, nil
	}

	rootValue := b.order[postR]
	mid, err := b.locate(rootValue, inL, inR)
	if err != nil {
		return nil, err
	}
	leftSize := mid - inL

	left, err := b.fromPost(postL, postL+leftSize-1, inL, mid-1)
	if err != nil {
		return nil, err
	}
	right, err := b.fromPost(postL+leftSize, postR-1, mid+1, inR)
	if err != nil {
		return nil, err
	}

	return core.NewWithChildren(rootValue, left, right), nil
}
