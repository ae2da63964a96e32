package search

import "github.com/katalvlaran/numath"

// Binary searches the monotone slice a for x.
//
// If x is present, Binary returns its index. Otherwise it returns
// -(insertion+1), where insertion is the index at which x would be
// inserted to keep a monotone; the caller recovers it as -(r)-1.
// An empty slice yields -1 (insertion point 0).
//
// Direction is detected from the first two elements: a is taken as
// increasing when len(a) < 2 or a[0] < a[1], decreasing otherwise.
// See the package documentation for the strict-monotonicity precondition.
func Binary[T numath.Real](a []T, x T) int {
	return BinaryHint(a, x, len(a))
}

// BinaryHint is Binary with a locality hint: i is typically the result of
// a previous search for a nearby value (either a found index or a negative
// insertion encoding). The search first gallops outward from the hint with
// doubling steps to bracket x, then bisects the bracket.
//
// Any hint is legal — values outside [0, len(a)) merely forfeit the
// locality gain — and the result is always identical to Binary(a, x).
func BinaryHint[T numath.Real](a []T, x T, i int) int {
	n := len(a)
	nm1 := n - 1
	low, high := 0, nm1
	increasing := n < 2 || a[0] < a[1]
	if -n <= i && i < n {
		// Galloping: expand [low, high] outward from the hint with
		// doubling steps until it brackets x (or hits a slice end).
		if i >= 0 {
			high = i
		} else {
			high = -(i + 1)
		}
		low = high - 1
		step := 1
		if increasing {
			for ; 0 < low && x < a[low]; low -= step {
				high = low
				step += step
			}
			for ; high < nm1 && a[high] < x; high += step {
				low = high
				step += step
			}
		} else {
			for ; 0 < low && x > a[low]; low -= step {
				high = low
				step += step
			}
			for ; high < nm1 && a[high] > x; high += step {
				low = high
				step += step
			}
		}
		if low < 0 {
			low = 0
		}
		if high > nm1 {
			high = nm1
		}
	}
	if increasing {
		for low <= high {
			mid := (low + high) >> 1
			switch amid := a[mid]; {
			case amid < x:
				low = mid + 1
			case amid > x:
				high = mid - 1
			default:
				return mid
			}
		}
	} else {
		for low <= high {
			mid := (low + high) >> 1
			switch amid := a[mid]; {
			case amid > x:
				low = mid + 1
			case amid < x:
				high = mid - 1
			default:
				return mid
			}
		}
	}
	return -(low + 1)
}
