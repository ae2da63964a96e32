package search_test

import (
	"fmt"

	"github.com/katalvlaran/numath/search"
)

// ExampleBinary finds a present value and decodes an absent one.
//
// The array [1 2 3 4 5] contains 3 at index 2. The value 10 is absent;
// the returned -6 decodes to insertion point -(-6)-1 = 5, the end of
// the array.
func ExampleBinary() {
	a := []int{1, 2, 3, 4, 5}

	fmt.Println(search.Binary(a, 3))
	fmt.Println(search.Binary(a, 10))
	// Output:
	// 2
	// -6
}

// ExampleBinaryHint walks a sorted array with correlated queries,
// seeding each search with the previous result.
func ExampleBinaryHint() {
	a := []float64{0.5, 1.5, 2.5, 3.5, 4.5}

	i := search.BinaryHint(a, 1.5, 0)
	fmt.Println(i)

	// The previous hit is one step away from the next target.
	fmt.Println(search.BinaryHint(a, 2.5, i))
	// Output:
	// 1
	// 2
}
