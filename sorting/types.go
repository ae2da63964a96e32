package sorting

import "errors"

// Thresholds of the quicksort engine, from Bentley, J.L., and McIlroy, M.D.,
// 1993, Engineering a sort function: Software — Practice and Experience,
// v. 23(11), p. 1249-1265.
const (
	// nSmallSort bounds the ranges handed to insertion sort: any range of
	// length ≤ nSmallSort+1 is insertion sorted instead of partitioned.
	nSmallSort = 7

	// nLargeSort is the range length above which the pivot is chosen as the
	// pseudo-median of nine samples rather than the median of three.
	nLargeSort = 40
)

var (
	// ErrIndexLength indicates the index slice does not match the data length.
	ErrIndexLength = errors.New("sorting: index length does not match data length")

	// ErrRankRange indicates the requested rank k lies outside [0, len(x)-1].
	ErrRankRange = errors.New("sorting: rank outside [0, len(x)-1]")
)

// pivotSpan is the inclusive run [lo, hi] of elements equal to the pivot
// after one partition pass. Elements in the run are in final sorted
// position; recursion continues on [p, lo-1] and [hi+1, q] only.
type pivotSpan struct {
	lo, hi int
}
