package arrays_test

import (
	"fmt"

	"github.com/katalvlaran/numath/arrays"
)

// ExampleRamp builds a linear sequence and adds a scalar to it.
func ExampleRamp() {
	x := arrays.Ramp(1.0, 0.5, 5)
	fmt.Println(x)

	y := make([]float64, len(x))
	if err := arrays.AddScalar(y, x, 10); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(y)
	// Output:
	// [1 1.5 2 2.5 3]
	// [11 11.5 12 12.5 13]
}

// ExampleReshape2 folds a flat slice into rows and checks the layout.
func ExampleReshape2() {
	flat := []int{1, 2, 3, 4, 5, 6}

	m, err := arrays.Reshape2(3, 2, flat)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	// Output:
	// [[1 2 3] [4 5 6]]
}
