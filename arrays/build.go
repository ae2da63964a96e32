package arrays

import (
	"math/rand"

	"github.com/katalvlaran/numath"
)

// Zero returns a new slice of n zero elements.
func Zero[T numath.Real](n int) []T {
	return make([]T, n)
}

// Fill returns a new slice of n elements, each equal to v.
func Fill[T numath.Real](v T, n int) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = v
	}
	return x
}

// Ramp returns a new slice of n elements x[i] = first + i*delta.
//
// With first=0, delta=1 this is the identity permutation, the usual
// starting index slice for sorting.IndexSort.
func Ramp[T numath.Real](first, delta T, n int) []T {
	x := make([]T, n)
	v := first
	for i := range x {
		x[i] = v
		v += delta
	}
	return x
}

// Random returns a new slice of n pseudo-random values in [0, 1), drawn
// from r. Pass a seeded rand.Rand for reproducible data.
func Random[T numath.Float](r *rand.Rand, n int) []T {
	x := make([]T, n)
	for i := range x {
		x[i] = T(r.Float64())
	}
	return x
}
