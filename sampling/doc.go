// Package sampling describes sampled 1-D axes: finite sets of sample
// values, either uniform (count, delta, first) or explicit (a strictly
// increasing value slice), with tolerant value-to-index lookup.
//
// What:
//
//   - New / NewTolerance — uniform sampling x[i] = first + i*delta.
//   - FromValues / FromValuesTolerance — explicit strictly increasing values.
//   - Value, Values, Count, Delta, First, Last, IsUniform — accessors.
//   - IndexOf — index of the sample equal (within tolerance) to a value,
//     or -1.
//   - IndexOfNearest, ValueOfNearest — nearest sample, never -1.
//
// Why:
//
//   - Sampled axes are how interpolation, resampling, and plotting code
//     address continuous coordinates; tolerant lookup absorbs the rounding
//     noise such coordinates carry.
//   - Uniform lookups are O(1) arithmetic; explicit lookups delegate to
//     the search package's binary search, O(log n).
//
// Tolerance is expressed as a fraction of the sampling interval delta
// (DefaultTolerance if unspecified); two values within tolerance×delta of
// each other are considered equal.
//
// Errors:
//
//   - ErrCount         — sample count < 1.
//   - ErrDelta         — sampling interval ≤ 0.
//   - ErrTolerance     — negative tolerance.
//   - ErrNotIncreasing — explicit values not strictly increasing.
//   - ErrIndex         — sample index outside [0, count-1].
package sampling
