// Package numath is your in-memory toolkit for generic numeric arrays —
// sorting, searching, element-wise math, reductions, statistics and more,
// one implementation shared by every numeric kind.
//
// 🚀 What is numath?
//
//	A modern, allocation-shy, generics-first library that brings together:
//		• Sorting: three-way (Bentley–McIlroy) quicksort, index sorts,
//		  partial (top-k) sorts — all in place, all expected O(n log n) or better
//		• Searching: monotone binary search with insertion-point encoding
//		  and a locality-biased (galloping) hinted variant
//		• Arrays: build, copy, reverse, reshape, transpose; element-wise
//		  math; reductions; monotonicity predicates
//		• Complex: generic complex arithmetic over float32 and float64
//		• Stats: medians, order statistics, quantiles, percentile clips,
//		  and a streaming quantile estimator
//		• Sampling: uniform and explicit 1-D samplings with tolerant lookup
//		• Parallel: chunked parallel loops and reductions over index ranges
//
// ✨ Why choose numath?
//
//   - One generic core – no per-type copies, no code generation
//   - Caller-owned memory – every operation works on your slices in place
//   - Fail-fast contracts – sentinel errors on misuse, never silent damage
//   - Pure Go – no cgo, no assembly, no hidden deps
//
// Everything is organized under small focused subpackages:
//
//	sorting/  — quicksort, index sort, partial sort (the engine)
//	search/   — stateless and hinted monotone binary search
//	arrays/   — build, copy, reshape, element-wise math, reductions
//	cnum/     — generic complex numbers and packed complex slices
//	stats/    — medians, quantiles, clips, streaming estimation
//	sampling/ — uniformly and explicitly sampled 1-D axes
//	parallel/ — errgroup-backed loops over independent indices
//
// The root package defines only the shared numeric constraints
// (Signed, Float, Real) used throughout.
//
//	go get github.com/katalvlaran/numath
package numath
