package cnum_test

import (
	"fmt"

	"github.com/katalvlaran/numath/cnum"
)

// ExampleComplex_Mul multiplies two Gaussian integers.
func ExampleComplex_Mul() {
	a := cnum.New(1.0, 2.0)
	b := cnum.New(3.0, -1.0)

	c := a.Mul(b)
	fmt.Printf("%g%+gi\n", c.Re, c.Im)
	// Output:
	// 5+5i
}

// ExamplePack interleaves real and imaginary parts into a flat slice.
func ExamplePack() {
	z := []cnum.Complex[float64]{cnum.New(1.0, 2.0), cnum.New(3.0, 4.0)}

	fmt.Println(cnum.Pack(z))
	// Output:
	// [1 2 3 4]
}
