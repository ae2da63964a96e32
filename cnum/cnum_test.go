package cnum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numath/cnum"
)

// assertClose compares two complex values part-wise within delta.
func assertClose(t *testing.T, want, got cnum.Complex[float64], delta float64) {
	t.Helper()
	assert.InDelta(t, want.Re, got.Re, delta, "real part")
	assert.InDelta(t, want.Im, got.Im, delta, "imaginary part")
}

// TestArithmetic covers Add, Sub, Mul, Div and their real-operand forms.
func TestArithmetic(t *testing.T) {
	x := cnum.New(3.0, 4.0)
	y := cnum.New(1.0, -2.0)

	assert.Equal(t, cnum.New(4.0, 2.0), x.Add(y))
	assert.Equal(t, cnum.New(2.0, 6.0), x.Sub(y))
	assert.Equal(t, cnum.New(11.0, -2.0), x.Mul(y))

	// Division inverts multiplication.
	assertClose(t, x, x.Mul(y).Div(y), 1e-12)

	assert.Equal(t, cnum.New(5.0, 4.0), x.AddReal(2))
	assert.Equal(t, cnum.New(1.0, 4.0), x.SubReal(2))
	assert.Equal(t, cnum.New(6.0, 8.0), x.MulReal(2))
	assert.Equal(t, cnum.New(1.5, 2.0), x.DivReal(2))
}

// TestUnary covers Conj, Neg, Inv, and the predicates.
func TestUnary(t *testing.T) {
	x := cnum.New(3.0, 4.0)

	assert.Equal(t, cnum.New(3.0, -4.0), x.Conj())
	assert.Equal(t, cnum.New(-3.0, -4.0), x.Neg())
	assertClose(t, cnum.New(1.0, 0.0), x.Mul(x.Inv()), 1e-12)

	assert.True(t, cnum.New(2.0, 0.0).IsReal())
	assert.False(t, x.IsReal())
	assert.True(t, cnum.New(0.0, 2.0).IsImag())
	assert.False(t, x.IsImag())
}

// TestPolar covers Abs, Arg, Norm, and FromPolar.
func TestPolar(t *testing.T) {
	x := cnum.New(3.0, 4.0)
	assert.InDelta(t, 5.0, x.Abs(), 1e-12)
	assert.InDelta(t, 25.0, x.Norm(), 1e-12)
	assert.InDelta(t, math.Atan2(4, 3), x.Arg(), 1e-12)

	// Round trip through polar form.
	assertClose(t, x, cnum.FromPolar(x.Abs(), x.Arg()), 1e-12)

	i := cnum.FromPolar(1.0, math.Pi/2)
	assertClose(t, cnum.New(0.0, 1.0), i, 1e-12)
}

// TestTranscendental covers Sqrt, Exp, Log, and Pow identities.
func TestTranscendental(t *testing.T) {
	x := cnum.New(3.0, 4.0)

	s := x.Sqrt()
	assertClose(t, x, s.Mul(s), 1e-9)

	// exp(log x) == x.
	assertClose(t, x, x.Log().Exp(), 1e-9)

	// e**(iπ) == -1.
	assertClose(t, cnum.New(-1.0, 0.0), cnum.New(0.0, math.Pi).Exp(), 1e-12)

	// x**2 via both exponent forms.
	assertClose(t, x.Mul(x), x.PowReal(2), 1e-9)
	assertClose(t, x.Mul(x), x.Pow(cnum.New(2.0, 0.0)), 1e-9)
}

// TestPackUnpack round-trips the interleaved layout and validates length.
func TestPackUnpack(t *testing.T) {
	z := []cnum.Complex[float32]{
		cnum.New[float32](1, 2),
		cnum.New[float32](3, 4),
	}
	packed := cnum.Pack(z)
	assert.Equal(t, []float32{1, 2, 3, 4}, packed)

	back, err := cnum.Unpack(packed)
	require.NoError(t, err)
	assert.Equal(t, z, back)

	_, err = cnum.Unpack([]float32{1, 2, 3})
	assert.ErrorIs(t, err, cnum.ErrPackedLength)
}
