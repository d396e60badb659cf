package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvltree/core"
)

// sampleTree builds
//
//	  3
//	 / \
//	9  20
//	   / \
//	  15  7
func sampleTree() *core.Node {
	return core.NewWithChildren(3,
		core.New(9),
		core.NewWithChildren(20, core.New(15), core.New(7)),
	)
}

func TestSize(t *testing.T) {
	var empty *core.Node
	assert.Equal(t, 0, empty.Size())
	assert.Equal(t, 1, core.New(5).Size())
	assert.Equal(t, 5, sampleTree().Size())
}

func TestHeight(t *testing.T) {
	var empty *core.Node
	assert.Equal(t, 0, empty.Height())
	assert.Equal(t, 1, core.New(5).Height())
	assert.Equal(t, 3, sampleTree().Height())

	// left-leaning chain of 4
	chain := core.NewWithChildren(1,
		core.NewWithChildren(2,
			core.NewWithChildren(3, core.New(4), nil), nil), nil)
	assert.Equal(t, 4, chain.Height())
}

func TestClone_DeepCopy(t *testing.T) {
	orig := sampleTree()
	cp := orig.Clone()

	require.True(t, orig.Equal(cp))
	// mutating the copy must not touch the original
	cp.Right.Left.Value = 99
	assert.False(t, orig.Equal(cp))
	assert.Equal(t, int64(15), orig.Right.Left.Value)
}

func TestClone_Empty(t *testing.T) {
	var empty *core.Node
	assert.Nil(t, empty.Clone())
}

func TestEqual(t *testing.T) {
	var empty *core.Node
	assert.True(t, empty.Equal(nil))
	assert.False(t, empty.Equal(core.New(1)))
	assert.False(t, core.New(1).Equal(nil))
	assert.True(t, sampleTree().Equal(sampleTree()))

	// same values, different shape
	a := core.NewWithChildren(1, core.New(2), nil)
	b := core.NewWithChildren(1, nil, core.New(2))
	assert.False(t, a.Equal(b))
}

func TestInvert(t *testing.T) {
	inv := sampleTree().Invert()
	want := core.NewWithChildren(3,
		core.NewWithChildren(20, core.New(7), core.New(15)),
		core.New(9),
	)
	assert.True(t, inv.Equal(want))
	// double inversion restores the original
	assert.True(t, inv.Invert().Equal(sampleTree()))
}

func TestValidate_WellFormed(t *testing.T) {
	var empty *core.Node
	assert.NoError(t, empty.Validate())
	assert.NoError(t, core.New(1).Validate())
	assert.NoError(t, sampleTree().Validate())
}

func TestValidate_SharedNode(t *testing.T) {
	shared := core.New(7)
	root := core.NewWithChildren(1, shared, shared)
	err := root.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrSharedNode))
}

func TestValidate_Cycle(t *testing.T) {
	root := core.New(1)
	child := core.New(2)
	root.Left = child
	child.Right = root // cycle back to the root
	err := root.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrCyclicTree))
}

func TestHasDistinctValues(t *testing.T) {
	var empty *core.Node
	assert.True(t, empty.HasDistinctValues())
	assert.True(t, sampleTree().HasDistinctValues())

	dup := core.NewWithChildren(1, core.New(2), core.New(2))
	assert.False(t, dup.HasDistinctValues())
}
