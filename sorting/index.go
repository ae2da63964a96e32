package sorting

import "github.com/katalvlaran/numath"

// IndexSort reorders idx so that dereferencing x through it yields
// non-decreasing order:
//
//	x[idx[0]] <= x[idx[1]] <= ... <= x[idx[n-1]]
//
// The data slice x is never mutated; only idx is permuted. On entry idx
// must be a permutation of valid indices into x (typically 0..n-1, see
// Identity); on exit it is a reordering of the same values.
//
// Same engine and bounds as Sort, indirected through idx.
//
// Returns ErrIndexLength if len(idx) != len(x).
func IndexSort[T numath.Real](x []T, idx []int) error {
	if len(idx) != len(x) {
		return ErrIndexLength
	}
	quickIndexSort(x, idx, 0, len(x)-1)
	return nil
}

// PartialIndexSort is to IndexSort what PartialSort is to Sort: after the
// call x[idx[k]] equals the k-th smallest element of x, with
// x[idx[i]] <= x[idx[k]] for i < k and x[idx[j]] >= x[idx[k]] for j > k.
// The data slice x is never mutated.
//
// Returns ErrRankRange if k is outside [0, len(x)-1], and ErrIndexLength
// if len(idx) != len(x).
func PartialIndexSort[T numath.Real](k int, x []T, idx []int) error {
	n := len(x)
	if k < 0 || k >= n {
		return ErrRankRange
	}
	if len(idx) != n {
		return ErrIndexLength
	}
	p, q := 0, n-1
	for q-p > nSmallSort {
		span := indexPartition(x, idx, p, q)
		switch {
		case k < span.lo:
			q = span.lo - 1
		case k > span.hi:
			p = span.hi + 1
		default:
			return nil
		}
	}
	insertionIndexSort(x, idx, p, q)
	return nil
}

// Identity fills idx with 0..len(idx)-1, the usual starting permutation
// for IndexSort and PartialIndexSort.
func Identity(idx []int) {
	for i := range idx {
		idx[i] = i
	}
}

// quickIndexSort sorts idx[p..q] by the values x[idx[·]].
func quickIndexSort[T numath.Real](x []T, idx []int, p, q int) {
	if q-p <= nSmallSort {
		insertionIndexSort(x, idx, p, q)
		return
	}
	span := indexPartition(x, idx, p, q)
	if p < span.lo-1 {
		quickIndexSort(x, idx, p, span.lo-1)
	}
	if span.hi+1 < q {
		quickIndexSort(x, idx, span.hi+1, q)
	}
}

// insertionIndexSort is insertionSort with comparisons on x[idx[·]] and
// swaps on idx.
func insertionIndexSort[T numath.Real](x []T, idx []int, p, q int) {
	for i := p; i <= q; i++ {
		for j := i; j > p && x[idx[j-1]] > x[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}
}

// indexPartition mirrors partition exactly, indirecting every comparison
// through idx and permuting idx only.
func indexPartition[T numath.Real](x []T, idx []int, p, q int) pivotSpan {
	n := q - p + 1
	k := p + (q-p)/2
	if n > nSmallSort {
		j, l := p, q
		if n > nLargeSort {
			n8 := n / 8
			j = med3Index(x, idx, j, j+n8, j+2*n8)
			k = med3Index(x, idx, k-n8, k, k+n8)
			l = med3Index(x, idx, l-2*n8, l-n8, l)
		}
		k = med3Index(x, idx, j, k, l)
	}
	y := x[idx[k]]

	a, b, c, d := p, p, q, q
	for {
		for b <= c && x[idx[b]] <= y {
			if x[idx[b]] == y {
				idx[a], idx[b] = idx[b], idx[a]
				a++
			}
			b++
		}
		for c >= b && x[idx[c]] >= y {
			if x[idx[c]] == y {
				idx[c], idx[d] = idx[d], idx[c]
				d--
			}
			c--
		}
		if b > c {
			break
		}
		idx[b], idx[c] = idx[c], idx[b]
		b++
		c--
	}

	r := min(a-p, b-a)
	swapRanges(idx, p, b-r, r)
	s := min(d-c, q-d)
	swapRanges(idx, b, q+1-s, s)

	return pivotSpan{lo: p + (b - a), hi: q - (d - c)}
}

// med3Index returns the index (into idx) of the median of the three
// dereferenced values.
func med3Index[T numath.Real](x []T, idx []int, i, j, k int) int {
	if x[idx[i]] < x[idx[j]] {
		switch {
		case x[idx[j]] < x[idx[k]]:
			return j
		case x[idx[i]] < x[idx[k]]:
			return k
		default:
			return i
		}
	}
	switch {
	case x[idx[j]] > x[idx[k]]:
		return j
	case x[idx[i]] > x[idx[k]]:
		return k
	default:
		return i
	}
}
