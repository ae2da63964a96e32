// Package stats computes order statistics over numeric slices: medians,
// weighted medians, ranks, quantiles, percentile clip limits, and a
// streaming quantile estimate that needs no sample storage.
//
// What:
//
//   - Median — the middle value (average of the two middles for even n),
//     found in expected O(n) by partial sorting, not full sorting.
//   - WeightedMedian — the value minimizing Σ w[i]·|x−x[i]| for positive
//     weights w.
//   - Rank — the k-th smallest element (quickselect).
//   - Quantile — the element at fraction q of the sorted order.
//   - ClipLimits — a (lower, upper) percentile pair, the usual display
//     normalization bounds.
//   - Quantiler — incremental quantile estimation over a stream of samples
//     using five adjustable markers (the P² method); O(1) memory, and the
//     estimate improves with successive updates.
//
// Why:
//
//   - All batch operations defer to the sorting package's partial sorts,
//     so no call pays for a full O(n log n) sort.
//   - Batch operations copy their input; callers keep their data intact.
//   - Quantiler serves data too large (or too streaming) to hold at all.
//
// Errors:
//
//   - ErrEmpty      — statistic of an empty slice.
//   - ErrLength     — weights and values of differing lengths.
//   - ErrWeight     — a weight is zero or negative.
//   - ErrFraction   — quantile fraction outside [0, 1].
//   - ErrPercentile — percentiles not satisfying 0 ≤ lower < upper ≤ 100.
package stats
