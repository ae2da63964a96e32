package search_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/numath/search"
)

// BenchmarkBinary_Random searches for uncorrelated keys in a sorted
// array of 1<<20 values.
func BenchmarkBinary_Random(b *testing.B) {
	n := 1 << 20
	a := make([]int64, n)
	for i := range a {
		a[i] = int64(2 * i)
	}
	r := rand.New(rand.NewSource(46))
	keys := make([]int64, 1024)
	for i := range keys {
		keys[i] = int64(r.Intn(2 * n))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = search.Binary(a, keys[i&1023])
	}
}

// BenchmarkBinaryHint_LocalRun searches for keys that drift slowly
// through the array, reusing each result as the next hint. The
// galloping expansion keeps the bracket small.
func BenchmarkBinaryHint_LocalRun(b *testing.B) {
	n := 1 << 20
	a := make([]int64, n)
	for i := range a {
		a[i] = int64(2 * i)
	}

	b.ResetTimer()
	hint := 0
	for i := 0; i < b.N; i++ {
		hint = search.BinaryHint(a, int64(2*(i&(n-1))), hint)
	}
}
