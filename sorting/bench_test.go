package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numath/sorting"
)

// benchmarkSort runs Sort on fresh copies of an n-element random slice.
func benchmarkSort(b *testing.B, n int) {
	r := rand.New(rand.NewSource(42))
	x := make([]float64, n)
	for i := range x {
		x[i] = r.Float64()
	}
	t := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(t, x)
		sorting.Sort(t)
	}
}

// BenchmarkSort_1e3 sorts 1 000 random float64 values.
func BenchmarkSort_1e3(b *testing.B) { benchmarkSort(b, 1_000) }

// BenchmarkSort_1e5 sorts 100 000 random float64 values.
func BenchmarkSort_1e5(b *testing.B) { benchmarkSort(b, 100_000) }

// BenchmarkSort_Duplicates sorts a slice with only eight distinct keys,
// the three-way partition's best case.
func BenchmarkSort_Duplicates(b *testing.B) {
	r := rand.New(rand.NewSource(43))
	n := 100_000
	x := make([]int32, n)
	for i := range x {
		x[i] = r.Int31n(8)
	}
	t := make([]int32, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(t, x)
		sorting.Sort(t)
	}
}

// BenchmarkPartialSort_Median resolves the median of 100 000 values.
func BenchmarkPartialSort_Median(b *testing.B) {
	r := rand.New(rand.NewSource(44))
	n := 100_000
	x := make([]float64, n)
	for i := range x {
		x[i] = r.Float64()
	}
	t := make([]float64, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(t, x)
		if err := sorting.PartialSort(n/2, t); err != nil {
			b.Fatalf("PartialSort failed: %v", err)
		}
	}
}

// BenchmarkIndexSort_1e5 index-sorts 100 000 random values.
func BenchmarkIndexSort_1e5(b *testing.B) {
	r := rand.New(rand.NewSource(45))
	n := 100_000
	x := make([]float64, n)
	for i := range x {
		x[i] = r.Float64()
	}
	idx := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sorting.Identity(idx)
		if err := sorting.IndexSort(x, idx); err != nil {
			b.Fatalf("IndexSort failed: %v", err)
		}
	}
}
