package sorting

import "github.com/katalvlaran/numath"

// Sort sorts x into non-decreasing order in place.
//
// The engine is the Bentley–McIlroy three-way quicksort: median-of-3
// (pseudo-median-of-9 for long ranges) pivoting, a single partition pass
// separating less / equal / greater, insertion sort on small ranges, and
// recursion on the strictly-less and strictly-greater sides only. Expected
// O(n log n) time with O(log n) stack; no heap allocation.
//
// Empty and singleton slices are no-ops.
func Sort[T numath.Real](x []T) {
	quickSort(x, 0, len(x)-1)
}

// PartialSort reorders x so that x[k] equals the k-th smallest element,
// every x[i] with i < k is ≤ x[k], and every x[j] with j > k is ≥ x[k].
// The remainder of x is left in unspecified order.
//
// Quickselect: partition the active range, narrow to whichever side holds
// k, and finish small ranges with insertion sort. Expected O(n) time.
//
// Returns ErrRankRange if k is outside [0, len(x)-1]; in particular every
// k is out of range for an empty slice.
func PartialSort[T numath.Real](k int, x []T) error {
	n := len(x)
	if k < 0 || k >= n {
		return ErrRankRange
	}
	p, q := 0, n-1
	for q-p > nSmallSort {
		span := partition(x, p, q)
		switch {
		case k < span.lo:
			q = span.lo - 1 // k lies left of the equal run
		case k > span.hi:
			p = span.hi + 1 // k lies right of the equal run
		default:
			return nil // x[k] is in the equal run, already final
		}
	}
	insertionSort(x, p, q)
	return nil
}

// quickSort sorts the inclusive range x[p..q].
func quickSort[T numath.Real](x []T, p, q int) {
	if q-p <= nSmallSort {
		insertionSort(x, p, q)
		return
	}
	span := partition(x, p, q)
	if p < span.lo-1 {
		quickSort(x, p, span.lo-1)
	}
	if span.hi+1 < q {
		quickSort(x, span.hi+1, q)
	}
}

// insertionSort sorts the inclusive range x[p..q] by adjacent swaps.
// An empty range (q < p) is a no-op. Equal elements never cross.
func insertionSort[T numath.Real](x []T, p, q int) {
	for i := p; i <= q; i++ {
		for j := i; j > p && x[j-1] > x[j]; j-- {
			x[j-1], x[j] = x[j], x[j-1]
		}
	}
}

// partition performs one Bentley–McIlroy three-way pass over x[p..q] and
// returns the span of elements equal to the pivot.
//
// Four cursors sweep the range: b grows the less-than region, c shrinks
// the greater-than region, while a and d collect equal-to-pivot elements
// at the extremes. The equal elements are vector-swapped back into the
// middle once b and c cross.
func partition[T numath.Real](x []T, p, q int) pivotSpan {
	// Pivot selection: midpoint, median-of-3, or pseudo-median-of-9.
	n := q - p + 1
	k := p + (q-p)/2
	if n > nSmallSort {
		j, l := p, q
		if n > nLargeSort {
			n8 := n / 8
			j = med3(x, j, j+n8, j+2*n8)
			k = med3(x, k-n8, k, k+n8)
			l = med3(x, l-2*n8, l-n8, l)
		}
		k = med3(x, j, k, l)
	}
	y := x[k]

	a, b, c, d := p, p, q, q
	for {
		for b <= c && x[b] <= y {
			if x[b] == y {
				x[a], x[b] = x[b], x[a]
				a++
			}
			b++
		}
		for c >= b && x[c] >= y {
			if x[c] == y {
				x[c], x[d] = x[d], x[c]
				d--
			}
			c--
		}
		if b > c {
			break
		}
		x[b], x[c] = x[c], x[b]
		b++
		c--
	}

	// Swap the parked equal runs back beside the crossing point.
	r := min(a-p, b-a)
	swapRanges(x, p, b-r, r)
	s := min(d-c, q-d)
	swapRanges(x, b, q+1-s, s)

	return pivotSpan{lo: p + (b - a), hi: q - (d - c)}
}

// med3 returns the index of the median of x[i], x[j], x[k].
func med3[T numath.Real](x []T, i, j, k int) int {
	if x[i] < x[j] {
		switch {
		case x[j] < x[k]:
			return j
		case x[i] < x[k]:
			return k
		default:
			return i
		}
	}
	switch {
	case x[j] > x[k]:
		return j
	case x[i] > x[k]:
		return k
	default:
		return i
	}
}

// swapRanges exchanges the n elements starting at a with those starting at b.
func swapRanges[T numath.Real](x []T, a, b, n int) {
	for i := 0; i < n; i++ {
		x[a+i], x[b+i] = x[b+i], x[a+i]
	}
}
