package cnum

import (
	"errors"
	"math"

	"github.com/katalvlaran/numath"
)

// ErrPackedLength indicates a packed slice of odd length.
var ErrPackedLength = errors.New("cnum: packed slice length must be even")

// Complex is a complex number with parts of floating-point kind T.
// The zero value is 0+0i.
type Complex[T numath.Float] struct {
	Re, Im T
}

// New returns the complex number re + im*i.
func New[T numath.Float](re, im T) Complex[T] {
	return Complex[T]{Re: re, Im: im}
}

// FromPolar returns the complex number with the given magnitude and phase.
func FromPolar[T numath.Float](r, theta T) Complex[T] {
	return Complex[T]{
		Re: r * T(math.Cos(float64(theta))),
		Im: r * T(math.Sin(float64(theta))),
	}
}

// Add returns x + y.
func (x Complex[T]) Add(y Complex[T]) Complex[T] {
	return Complex[T]{Re: x.Re + y.Re, Im: x.Im + y.Im}
}

// Sub returns x - y.
func (x Complex[T]) Sub(y Complex[T]) Complex[T] {
	return Complex[T]{Re: x.Re - y.Re, Im: x.Im - y.Im}
}

// Mul returns x * y.
func (x Complex[T]) Mul(y Complex[T]) Complex[T] {
	return Complex[T]{
		Re: x.Re*y.Re - x.Im*y.Im,
		Im: x.Re*y.Im + x.Im*y.Re,
	}
}

// Div returns x / y.
func (x Complex[T]) Div(y Complex[T]) Complex[T] {
	// Scale by the squared magnitude of y.
	d := y.Re*y.Re + y.Im*y.Im
	return Complex[T]{
		Re: (x.Re*y.Re + x.Im*y.Im) / d,
		Im: (x.Im*y.Re - x.Re*y.Im) / d,
	}
}

// AddReal returns x + r.
func (x Complex[T]) AddReal(r T) Complex[T] { return Complex[T]{Re: x.Re + r, Im: x.Im} }

// SubReal returns x - r.
func (x Complex[T]) SubReal(r T) Complex[T] { return Complex[T]{Re: x.Re - r, Im: x.Im} }

// MulReal returns x * r.
func (x Complex[T]) MulReal(r T) Complex[T] { return Complex[T]{Re: x.Re * r, Im: x.Im * r} }

// DivReal returns x / r.
func (x Complex[T]) DivReal(r T) Complex[T] { return Complex[T]{Re: x.Re / r, Im: x.Im / r} }

// Conj returns the complex conjugate of x.
func (x Complex[T]) Conj() Complex[T] { return Complex[T]{Re: x.Re, Im: -x.Im} }

// Neg returns -x.
func (x Complex[T]) Neg() Complex[T] { return Complex[T]{Re: -x.Re, Im: -x.Im} }

// Inv returns 1 / x.
func (x Complex[T]) Inv() Complex[T] {
	d := x.Re*x.Re + x.Im*x.Im
	return Complex[T]{Re: x.Re / d, Im: -x.Im / d}
}

// IsReal reports whether the imaginary part of x is zero.
func (x Complex[T]) IsReal() bool { return x.Im == 0 }

// IsImag reports whether the real part of x is zero.
func (x Complex[T]) IsImag() bool { return x.Re == 0 }

// Abs returns the magnitude |x|, computed without intermediate overflow.
func (x Complex[T]) Abs() T {
	return T(math.Hypot(float64(x.Re), float64(x.Im)))
}

// Arg returns the phase angle of x in (-π, π].
func (x Complex[T]) Arg() T {
	return T(math.Atan2(float64(x.Im), float64(x.Re)))
}

// Norm returns the squared magnitude |x|².
func (x Complex[T]) Norm() T {
	return x.Re*x.Re + x.Im*x.Im
}

// Sqrt returns the principal square root of x.
func (x Complex[T]) Sqrt() Complex[T] {
	r := math.Sqrt(float64(x.Abs()))
	t := float64(x.Arg()) / 2
	return FromPolar(T(r), T(t))
}

// Exp returns e**x.
func (x Complex[T]) Exp() Complex[T] {
	r := math.Exp(float64(x.Re))
	return Complex[T]{
		Re: T(r * math.Cos(float64(x.Im))),
		Im: T(r * math.Sin(float64(x.Im))),
	}
}

// Log returns the principal natural logarithm of x.
func (x Complex[T]) Log() Complex[T] {
	return Complex[T]{
		Re: T(math.Log(float64(x.Abs()))),
		Im: x.Arg(),
	}
}

// Pow returns x**y for a complex exponent, as Exp(y * Log(x)).
func (x Complex[T]) Pow(y Complex[T]) Complex[T] {
	return y.Mul(x.Log()).Exp()
}

// PowReal returns x**p for a real exponent.
func (x Complex[T]) PowReal(p T) Complex[T] {
	return x.Log().MulReal(p).Exp()
}

// Pack interleaves z into a new slice [re0, im0, re1, im1, ...] of
// length 2*len(z).
func Pack[T numath.Float](z []Complex[T]) []T {
	x := make([]T, 2*len(z))
	for i, v := range z {
		x[2*i] = v.Re
		x[2*i+1] = v.Im
	}
	return x
}

// Unpack converts an interleaved slice [re0, im0, re1, im1, ...] into a
// new []Complex of length len(x)/2.
// Returns ErrPackedLength if len(x) is odd.
func Unpack[T numath.Float](x []T) ([]Complex[T], error) {
	if len(x)%2 != 0 {
		return nil, ErrPackedLength
	}
	z := make([]Complex[T], len(x)/2)
	for i := range z {
		z[i] = Complex[T]{Re: x[2*i], Im: x[2*i+1]}
	}
	return z, nil
}
