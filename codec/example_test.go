package codec_test

import (
	"fmt"

	"github.com/katalvlaran/lvltree/codec"
	"github.com/katalvlaran/lvltree/core"
)

// ExampleSerialize encodes a small tree and prints its text form.
func ExampleSerialize() {
	//      3
	//     / \
	//    9  20
	//       / \
	//      15  7
	root := core.NewWithChildren(3,
		core.New(9),
		core.NewWithChildren(20, core.New(15), core.New(7)),
	)

	tokens, err := codec.Serialize(root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tokens)
	// Output:
	// 3,9,20,null,null,15,7,null,null,null,null
}

// ExampleDeserialize rebuilds a tree from its text form and shows the shape
// survived intact.
func ExampleDeserialize() {
	tokens, err := codec.ParseTokens("1,null,2,null,3,null,null")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	root, err := codec.Deserialize(tokens)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", root.Size())
	fmt.Println("level order:", root.LevelOrder())
	// Output:
	// size: 3
	// level order: [1 2 3]
}
