package collections_test

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hasbyte1/go-seqs/collections"
)

func ExampleOf() {
	c := collections.Of(1, 2, 3, 4, 5)
	fmt.Println(c.Len(), c.ToSlice())
	// Output: 5 [1 2 3 4 5]
}

func ExampleCollect() {
	c := collections.Collect(slices.Values(slices.Sorted(maps.Keys(map[string]int{"b": 2, "a": 1}))))
	fmt.Println(c.ToSlice())
	// Output: [a b]
}

func ExampleCollection_Backward() {
	for v := range collections.Of("x", "y", "z").Backward() {
		fmt.Print(v)
	}
	fmt.Println()
	// Output: zyx
}

func ExampleCollection_Slice() {
	c := collections.Of(1, 2, 3, 4, 5)
	fmt.Println(c.Slice(1, 4).ToSlice())
	// Output: [2 3 4]
}

func ExamplePair() {
	p := collections.MakePair("answer", 42)
	fmt.Println(p)
	// Output: (answer, 42)
}
