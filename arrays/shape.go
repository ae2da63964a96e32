package arrays

import "github.com/katalvlaran/numath"

// Copy returns a new slice with the same elements as x.
func Copy[T numath.Real](x []T) []T {
	y := make([]T, len(x))
	copy(y, x)
	return y
}

// Reverse returns a new slice with the elements of x in reverse order.
func Reverse[T numath.Real](x []T) []T {
	n := len(x)
	y := make([]T, n)
	for i := range x {
		y[n-1-i] = x[i]
	}
	return y
}

// ReverseInPlace reverses x in place.
func ReverseInPlace[T numath.Real](x []T) {
	for l, r := 0, len(x)-1; l < r; l, r = l+1, r-1 {
		x[l], x[r] = x[r], x[l]
	}
}

// Flatten2 concatenates the rows of a rectangular 2-D array into a new
// 1-D slice in row-major order. Returns ErrRagged if rows differ in length.
func Flatten2[T numath.Real](x [][]T) ([]T, error) {
	if len(x) == 0 {
		return []T{}, nil
	}
	n1 := len(x[0])
	y := make([]T, 0, len(x)*n1)
	for _, row := range x {
		if len(row) != n1 {
			return nil, ErrRagged
		}
		y = append(y, row...)
	}
	return y, nil
}

// Flatten3 concatenates the planes of a rectangular 3-D array into a new
// 1-D slice in row-major order. Returns ErrRagged on differing dimensions.
func Flatten3[T numath.Real](x [][][]T) ([]T, error) {
	y := []T{}
	planeLen := -1
	for _, plane := range x {
		f, err := Flatten2(plane)
		if err != nil {
			return nil, err
		}
		if planeLen < 0 {
			planeLen = len(f)
		} else if len(f) != planeLen {
			return nil, ErrRagged
		}
		y = append(y, f...)
	}
	return y, nil
}

// Reshape2 cuts a 1-D slice into a new n2×n1 row-major 2-D array.
// Returns ErrLength if len(x) != n1*n2.
func Reshape2[T numath.Real](n1, n2 int, x []T) ([][]T, error) {
	if n1 < 0 || n2 < 0 || len(x) != n1*n2 {
		return nil, ErrLength
	}
	y := make([][]T, n2)
	for i2 := 0; i2 < n2; i2++ {
		y[i2] = make([]T, n1)
		copy(y[i2], x[i2*n1:(i2+1)*n1])
	}
	return y, nil
}

// Reshape3 cuts a 1-D slice into a new n3×n2×n1 row-major 3-D array.
// Returns ErrLength if len(x) != n1*n2*n3.
func Reshape3[T numath.Real](n1, n2, n3 int, x []T) ([][][]T, error) {
	if n1 < 0 || n2 < 0 || n3 < 0 || len(x) != n1*n2*n3 {
		return nil, ErrLength
	}
	y := make([][][]T, n3)
	for i3 := 0; i3 < n3; i3++ {
		p, err := Reshape2(n1, n2, x[i3*n1*n2:(i3+1)*n1*n2])
		if err != nil {
			return nil, err
		}
		y[i3] = p
	}
	return y, nil
}

// Transpose returns a new array y with y[i][j] = x[j][i].
// Returns ErrRagged if rows of x differ in length.
func Transpose[T numath.Real](x [][]T) ([][]T, error) {
	n2 := len(x)
	if n2 == 0 {
		return [][]T{}, nil
	}
	n1 := len(x[0])
	for _, row := range x {
		if len(row) != n1 {
			return nil, ErrRagged
		}
	}
	y := make([][]T, n1)
	for i1 := 0; i1 < n1; i1++ {
		y[i1] = make([]T, n2)
		for i2 := 0; i2 < n2; i2++ {
			y[i1][i2] = x[i2][i1]
		}
	}
	return y, nil
}
