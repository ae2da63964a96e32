package arrays

import (
	"math"

	"github.com/katalvlaran/numath"
)

// Add writes x[i] + y[i] into dst. dst may alias x or y.
// Returns ErrLength unless len(x) == len(y) == len(dst).
func Add[T numath.Real](dst, x, y []T) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] + y[i]
	}
	return nil
}

// Sub writes x[i] - y[i] into dst. dst may alias x or y.
func Sub[T numath.Real](dst, x, y []T) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] - y[i]
	}
	return nil
}

// Mul writes x[i] * y[i] into dst. dst may alias x or y.
func Mul[T numath.Real](dst, x, y []T) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] * y[i]
	}
	return nil
}

// Div writes x[i] / y[i] into dst. dst may alias x or y.
// Integer division by zero panics as in ordinary Go; float division
// follows IEEE 754.
func Div[T numath.Real](dst, x, y []T) error {
	if len(x) != len(y) || len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] / y[i]
	}
	return nil
}

// AddScalar writes x[i] + s into dst. dst may alias x.
func AddScalar[T numath.Real](dst, x []T, s T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] + s
	}
	return nil
}

// SubScalar writes x[i] - s into dst. dst may alias x.
func SubScalar[T numath.Real](dst, x []T, s T) error {
	return AddScalar(dst, x, -s)
}

// MulScalar writes x[i] * s into dst. dst may alias x.
func MulScalar[T numath.Real](dst, x []T, s T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] * s
	}
	return nil
}

// DivScalar writes x[i] / s into dst. dst may alias x.
func DivScalar[T numath.Real](dst, x []T, s T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = x[i] / s
	}
	return nil
}

// Neg writes -x[i] into dst. dst may alias x.
func Neg[T numath.Real](dst, x []T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = -x[i]
	}
	return nil
}

// Abs writes the absolute value of x[i] into dst. dst may alias x.
func Abs[T numath.Real](dst, x []T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		if x[i] < 0 {
			dst[i] = -x[i]
		} else {
			dst[i] = x[i]
		}
	}
	return nil
}

// Sqrt writes sqrt(x[i]) into dst. dst may alias x.
func Sqrt[T numath.Float](dst, x []T) error {
	return apply(dst, x, math.Sqrt)
}

// Exp writes e**x[i] into dst. dst may alias x.
func Exp[T numath.Float](dst, x []T) error {
	return apply(dst, x, math.Exp)
}

// Log writes the natural logarithm of x[i] into dst. dst may alias x.
func Log[T numath.Float](dst, x []T) error {
	return apply(dst, x, math.Log)
}

// Pow writes x[i]**p into dst. dst may alias x.
func Pow[T numath.Float](dst, x []T, p T) error {
	return apply(dst, x, func(v float64) float64 { return math.Pow(v, float64(p)) })
}

// Clip writes x[i] clamped to [lo, hi] into dst. dst may alias x.
func Clip[T numath.Real](dst, x []T, lo, hi T) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		switch v := x[i]; {
		case v < lo:
			dst[i] = lo
		case v > hi:
			dst[i] = hi
		default:
			dst[i] = v
		}
	}
	return nil
}

// apply maps a float64 function over x into dst.
func apply[T numath.Float](dst, x []T, f func(float64) float64) error {
	if len(dst) != len(x) {
		return ErrLength
	}
	for i := range x {
		dst[i] = T(f(float64(x[i])))
	}
	return nil
}
