// Package search implements binary search over monotone numeric slices,
// in stateless and locality-biased (hinted) forms.
//
// What:
//
//   - Binary — locate a value in a monotone slice; returns the found index,
//     or the insertion point encoded as -(insertion+1) when absent.
//   - BinaryHint — same result, but first gallops outward from a caller
//     hint to bracket the value, so runs of nearby queries cost O(log d)
//     comparisons for query distance d instead of O(log n).
//
// Why:
//
//   - The negative encoding lets callers distinguish "found" from "not
//     found" and still recover the would-be insertion point: -(r)-1.
//   - Monotone direction (increasing or decreasing) is detected from the
//     first two elements, so decreasing axes need no reversal.
//   - Interpolation onto sampled axes issues long runs of spatially local
//     lookups; the hinted form serves those without caller-side bracketing.
//
// Complexity:
//
//   - Binary:     O(log n) comparisons, O(1) memory.
//   - BinaryHint: O(log d) comparisons for hint distance d, O(1) memory.
//
// Precondition (documented, unchecked): the slice is strictly monotone —
// strictly increasing or strictly decreasing, with no duplicate values.
// Violating it yields a logically wrong (never unsafe) result. Duplicates
// adjacent to index 0 defeat direction detection in particular.
package search
