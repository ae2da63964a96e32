// Package sorting implements the generic sort engine: in-place three-way
// (Bentley–McIlroy) quicksort, index-sort variants that permute a companion
// index slice instead of the data, and partial (top-k) sorts that resolve a
// single order statistic without sorting the rest.
//
// What:
//
//   - Sort — sort a slice ascending in place.
//   - IndexSort — compute a sorted permutation into a caller-supplied index
//     slice, leaving the data untouched.
//   - PartialSort — place the k-th order statistic at position k, with every
//     element before it ≤ and every element after it ≥ (quickselect).
//   - PartialIndexSort — PartialSort through an index permutation.
//
// Why:
//
//   - One generic implementation serves every numeric kind (numath.Real).
//   - Three-way partitioning keeps duplicate-heavy inputs O(n log n); the
//     equal-to-pivot middle is final after one pass and never recursed into.
//   - Index sorts order large or externally owned payloads without moving them.
//   - Partial sorts answer rank queries in expected O(n).
//
// Algorithm Outline:
//  1. Ranges of length ≤ 8 are insertion sorted (adjacent-swap, stable).
//  2. Larger ranges choose a pivot by median-of-3 sampling; ranges longer
//     than 40 use the median of 3 medians over 9 samples (pseudo-median)
//     to resist adversarial orderings.
//  3. One partition pass splits the range into less / equal / greater using
//     four cursors; equal elements parked at the extremes during the scan
//     are swapped back into the middle afterwards.
//  4. Recursion visits only the strictly-less and strictly-greater sides.
//
// Complexity:
//
//   - Sort, IndexSort:               expected O(n log n) time, O(log n) stack.
//   - PartialSort, PartialIndexSort: expected O(n) time, O(1) extra memory.
//
// Errors:
//
//   - ErrIndexLength — index slice length differs from the data length.
//   - ErrRankRange   — rank k is outside [0, len(x)-1].
//
// Empty and singleton slices are no-ops for Sort and IndexSort. Slices
// containing floating-point NaN violate the total-order assumption and
// produce an unspecified order.
package sorting
