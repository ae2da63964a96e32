package stats

import "errors"

var (
	// ErrEmpty indicates a statistic requested over an empty slice.
	ErrEmpty = errors.New("stats: empty slice")

	// ErrLength indicates weight and value slices of differing lengths.
	ErrLength = errors.New("stats: weight and value length mismatch")

	// ErrWeight indicates a zero or negative weight.
	ErrWeight = errors.New("stats: weights must be positive")

	// ErrFraction indicates a quantile fraction outside [0, 1].
	ErrFraction = errors.New("stats: fraction outside [0, 1]")

	// ErrPercentile indicates percentiles violating 0 ≤ lower < upper ≤ 100.
	ErrPercentile = errors.New("stats: percentiles must satisfy 0 <= lower < upper <= 100")
)
