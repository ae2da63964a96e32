package arrays

import "github.com/katalvlaran/numath"

// IsIncreasing reports whether the elements of x strictly increase with
// index: x[i] < x[i+1] for all i, with no equal neighbors. Slices of
// length < 2 are trivially increasing.
func IsIncreasing[T numath.Real](x []T) bool {
	for i := 1; i < len(x); i++ {
		if x[i-1] >= x[i] {
			return false
		}
	}
	return true
}

// IsDecreasing reports whether the elements of x strictly decrease with
// index: x[i] > x[i+1] for all i, with no equal neighbors. Slices of
// length < 2 are trivially decreasing.
func IsDecreasing[T numath.Real](x []T) bool {
	for i := 1; i < len(x); i++ {
		if x[i-1] <= x[i] {
			return false
		}
	}
	return true
}

// IsMonotonic reports whether x is strictly increasing or strictly
// decreasing — the precondition of search.Binary.
func IsMonotonic[T numath.Real](x []T) bool {
	return IsIncreasing(x) || IsDecreasing(x)
}
