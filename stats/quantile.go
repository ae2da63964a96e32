package stats

import (
	"math"

	"github.com/katalvlaran/numath"
	"github.com/katalvlaran/numath/arrays"
	"github.com/katalvlaran/numath/sorting"
)

// Rank returns the k-th smallest element of x (k = 0 is the minimum).
// The input is not modified. Expected O(n) via quickselect.
//
// Returns ErrEmpty for an empty slice and sorting.ErrRankRange if k is
// outside [0, len(x)-1].
func Rank[T numath.Real](k int, x []T) (T, error) {
	var zero T
	if len(x) == 0 {
		return zero, ErrEmpty
	}
	t := arrays.Copy(x)
	if err := sorting.PartialSort(k, t); err != nil {
		return zero, err
	}
	return t[k], nil
}

// Quantile returns the element of x at fraction q of its sorted order,
// the element with rank round(q*(n-1)). The input is not modified.
//
// Returns ErrEmpty for an empty slice and ErrFraction unless 0 ≤ q ≤ 1.
func Quantile[T numath.Real](q float64, x []T) (T, error) {
	var zero T
	if len(x) == 0 {
		return zero, ErrEmpty
	}
	if q < 0 || q > 1 {
		return zero, ErrFraction
	}
	k := int(math.Round(q * float64(len(x)-1)))
	return Rank(k, x)
}

// ClipLimits returns the elements of x at the lower and upper percentiles,
// the usual bounds for clipping outliers before display or normalization.
// The input is not modified.
//
// Both ranks are resolved by partial sorts of one shared copy; the second
// partial sort benefits from the ordering the first one left behind.
//
// Returns ErrEmpty for an empty slice and ErrPercentile unless
// 0 ≤ lower < upper ≤ 100.
func ClipLimits[T numath.Real](lower, upper float64, x []T) (T, T, error) {
	var zero T
	n := len(x)
	if n == 0 {
		return zero, zero, ErrEmpty
	}
	if lower < 0 || upper > 100 || lower >= upper {
		return zero, zero, ErrPercentile
	}
	t := arrays.Copy(x)
	kmin := int(math.Round(lower * 0.01 * float64(n-1)))
	kmax := int(math.Round(upper * 0.01 * float64(n-1)))
	if err := sorting.PartialSort(kmin, t); err != nil {
		return zero, zero, err
	}
	if err := sorting.PartialSort(kmax, t); err != nil {
		return zero, zero, err
	}
	return t[kmin], t[kmax], nil
}
