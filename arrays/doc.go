// Package arrays provides generic building, copying, reshaping,
// element-wise math, and reductions for numeric slices.
//
// What:
//
//   - Builders: Zero, Fill, Ramp, Random.
//   - Shape: Copy, Reverse, ReverseInPlace, Flatten2, Flatten3, Reshape2,
//     Reshape3, Transpose.
//   - Element-wise: Add, Sub, Mul, Div (slice⊕slice and slice⊕scalar),
//     Neg, Abs; float-only Sqrt, Exp, Log, Pow, Clip.
//   - Reductions: Sum, Mean, Min, Max, MinIndex, MaxIndex.
//   - Predicates: IsIncreasing, IsDecreasing, IsMonotonic (strict).
//
// Why:
//
//   - One generic implementation per operation; no per-type copies.
//   - The binary element-wise forms write into a caller-supplied
//     destination so buffers can be reused across calls; the destination
//     may alias either operand.
//   - The monotonicity predicates state the precondition of the search
//     package's binary search.
//
// Conventions:
//
//   - Multi-dimensional arrays are rectangular [][]T (row-major) or
//     [][][]T; ragged inputs surface as ErrRagged.
//   - Element-wise and reduction inputs of mismatched lengths surface as
//     ErrLength; reductions of empty slices surface as ErrEmpty.
//   - Builders cannot fail.
//
// Errors:
//
//   - ErrLength — operand or destination length mismatch.
//   - ErrEmpty  — reduction over an empty slice.
//   - ErrRagged — rows of a 2-D or 3-D array have differing lengths.
package arrays
