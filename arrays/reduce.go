package arrays

import "github.com/katalvlaran/numath"

// Sum returns the sum of the elements of x. The sum of an empty slice is 0.
func Sum[T numath.Real](x []T) T {
	var s T
	for _, v := range x {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean of x as a float64.
// Returns ErrEmpty for an empty slice.
func Mean[T numath.Real](x []T) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmpty
	}
	var s float64
	for _, v := range x {
		s += float64(v)
	}
	return s / float64(len(x)), nil
}

// Min returns the smallest element of x.
// Returns ErrEmpty for an empty slice.
func Min[T numath.Real](x []T) (T, error) {
	v, _, err := MinIndex(x)
	return v, err
}

// Max returns the largest element of x.
// Returns ErrEmpty for an empty slice.
func Max[T numath.Real](x []T) (T, error) {
	v, _, err := MaxIndex(x)
	return v, err
}

// MinIndex returns the smallest element of x and the index of its first
// occurrence. Returns ErrEmpty for an empty slice.
func MinIndex[T numath.Real](x []T) (T, int, error) {
	if len(x) == 0 {
		var zero T
		return zero, -1, ErrEmpty
	}
	v, k := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] < v {
			v, k = x[i], i
		}
	}
	return v, k, nil
}

// MaxIndex returns the largest element of x and the index of its first
// occurrence. Returns ErrEmpty for an empty slice.
func MaxIndex[T numath.Real](x []T) (T, int, error) {
	if len(x) == 0 {
		var zero T
		return zero, -1, ErrEmpty
	}
	v, k := x[0], 0
	for i := 1; i < len(x); i++ {
		if x[i] > v {
			v, k = x[i], i
		}
	}
	return v, k, nil
}
