package stats

import (
	"github.com/katalvlaran/numath"
	"github.com/katalvlaran/numath/arrays"
	"github.com/katalvlaran/numath/sorting"
)

// Median returns the median of x: the middle value for odd n, the average
// of the two middle values for even n. The input is not modified.
//
// Expected O(n): one partial sort resolves the lower middle, and for even
// n a linear scan of the upper side finds its least element.
//
// Returns ErrEmpty for an empty slice.
func Median[T numath.Real](x []T) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	t := arrays.Copy(x)
	k := (n - 1) / 2
	if err := sorting.PartialSort(k, t); err != nil {
		return 0, err
	}
	med := float64(t[k])
	if n%2 == 0 {
		// Least element right of k completes the upper middle.
		up := t[n-1]
		for i := n - 2; i > k; i-- {
			if t[i] < up {
				up = t[i]
			}
		}
		med = 0.5 * (med + float64(up))
	}
	return med, nil
}

// WeightedMedian returns the value minimizing
//
//	f(v) = Σ w[i] * |v - x[i]|
//
// over the values of x, for positive weights w. When the minimum spans two
// values (zero slope between them, as for even n with equal weights), their
// average is returned. The inputs are not modified.
//
// The order of x is recovered through an index sort, then weight sums are
// accumulated from both ends until each passes half the total weight.
//
// Returns ErrEmpty for empty input, ErrLength if len(w) != len(x), and
// ErrWeight if any weight is ≤ 0.
func WeightedMedian[T numath.Real](w, x []T) (float64, error) {
	n := len(x)
	if n == 0 {
		return 0, ErrEmpty
	}
	if len(w) != n {
		return 0, ErrLength
	}
	var ws float64
	for _, wi := range w {
		if wi <= 0 {
			return 0, ErrWeight
		}
		ws += float64(wi)
	}

	idx := make([]int, n)
	sorting.Identity(idx)
	if err := sorting.IndexSort(x, idx); err != nil {
		return 0, err
	}

	// For the median v: wl(v) <= wh and wr(v) <= wh, wh half the total.
	wh := 0.5 * ws

	kl := 0
	wl := float64(w[idx[kl]])
	for wl < wh {
		kl++
		wl += float64(w[idx[kl]])
	}

	kr := n - 1
	wr := float64(w[idx[kr]])
	for wr < wh {
		kr--
		wr += float64(w[idx[kr]])
	}

	if kl == kr {
		return float64(x[idx[kl]]), nil
	}
	return 0.5 * (float64(x[idx[kl]]) + float64(x[idx[kr]])), nil
}
