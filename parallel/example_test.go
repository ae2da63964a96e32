package parallel_test

import (
	"fmt"

	"github.com/katalvlaran/numath/parallel"
)

// ExampleLoop squares every element of a slice with default options.
func ExampleLoop() {
	x := []int64{1, 2, 3, 4, 5}

	err := parallel.Loop(0, len(x), nil, func(i int) error {
		x[i] *= x[i]
		return nil
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(x)
	// Output:
	// [1 4 9 16 25]
}

// ExampleReduce sums squares across workers.
func ExampleReduce() {
	sum, err := parallel.Reduce(1, 11, nil,
		func(i int) (int64, error) { return int64(i * i), nil },
		func(a, b int64) int64 { return a + b },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sum)
	// Output:
	// 385
}
