package stats_test

import (
	"fmt"

	"github.com/katalvlaran/numath/stats"
)

// ExampleMedian resolves the middle value of an odd-length slice
// without sorting the caller's data.
func ExampleMedian() {
	x := []float64{5, 1, 4, 2, 3}

	m, err := stats.Median(x)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(m)
	fmt.Println(x)
	// Output:
	// 3
	// [5 1 4 2 3]
}

// ExampleQuantiler streams values through a fixed-size estimator and
// reads the running median.
func ExampleQuantiler() {
	qu, err := stats.NewQuantiler(0.5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 1; i <= 99; i++ {
		qu.Update(float64(i))
	}
	fmt.Printf("%.0f\n", qu.Estimate())
	// Output:
	// 50
}
