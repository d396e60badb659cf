package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvltree/core"
)

func TestTraversals_Empty(t *testing.T) {
	var empty *core.Node
	assert.Equal(t, []int64{}, empty.Preorder())
	assert.Equal(t, []int64{}, empty.Inorder())
	assert.Equal(t, []int64{}, empty.Postorder())
	assert.Equal(t, []int64{}, empty.LevelOrder())
}

func TestTraversals_SingleNode(t *testing.T) {
	n := core.New(42)
	assert.Equal(t, []int64{42}, n.Preorder())
	assert.Equal(t, []int64{42}, n.Inorder())
	assert.Equal(t, []int64{42}, n.Postorder())
	assert.Equal(t, []int64{42}, n.LevelOrder())
}

func TestTraversals_SampleTree(t *testing.T) {
	root := sampleTree()
	assert.Equal(t, []int64{3, 9, 20, 15, 7}, root.Preorder())
	assert.Equal(t, []int64{9, 3, 15, 20, 7}, root.Inorder())
	assert.Equal(t, []int64{9, 15, 7, 20, 3}, root.Postorder())
	assert.Equal(t, []int64{3, 9, 20, 15, 7}, root.LevelOrder())
}

func TestTraversals_LeftChain(t *testing.T) {
	// 3 ← 2 ← 1 (all left links)
	root := core.NewWithChildren(1, core.NewWithChildren(2, core.New(3), nil), nil)
	assert.Equal(t, []int64{1, 2, 3}, root.Preorder())
	assert.Equal(t, []int64{3, 2, 1}, root.Inorder())
	assert.Equal(t, []int64{3, 2, 1}, root.Postorder())
	assert.Equal(t, []int64{1, 2, 3}, root.LevelOrder())
}

func TestLevelOrder_SiblingsLeftBeforeRight(t *testing.T) {
	//      1
	//     / \
	//    2   3
	//     \    \
	//      4    5
	root := core.NewWithChildren(1,
		core.NewWithChildren(2, nil, core.New(4)),
		core.NewWithChildren(3, nil, core.New(5)),
	)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, root.LevelOrder())
}
