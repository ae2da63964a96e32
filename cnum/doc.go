// Package cnum provides generic complex numbers over both floating-point
// kinds, plus helpers for packed (interleaved) complex slices.
//
// What:
//
//   - Complex[T] — a complex value with real and imaginary parts of kind T
//     (float32 or float64), with the full arithmetic surface: Add, Sub,
//     Mul, Div, their real-operand forms, Conj, Inv, Neg, Abs, Arg, Norm,
//     Sqrt, Exp, Log, Pow, and FromPolar.
//   - Pack / Unpack — convert between []Complex[T] and the interleaved
//     [re0, im0, re1, im1, ...] layout of length 2n.
//
// Why:
//
//   - The standard library's complex64/complex128 and math/cmplx cover
//     only complex128 transcendentals; one generic value type serves both
//     kinds with a single implementation.
//   - The interleaved layout is the conventional wire/compute layout for
//     complex arrays; Pack/Unpack bridge it to the typed form.
//
// Complex values are plain structs operated on by value; no operation
// mutates its receiver.
package cnum
