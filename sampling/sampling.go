package sampling

import (
	"errors"
	"math"

	"github.com/katalvlaran/numath/arrays"
	"github.com/katalvlaran/numath/search"
)

// DefaultTolerance is the default sampling tolerance, expressed as a
// fraction of the sampling interval.
const DefaultTolerance = 1.0e-6

var (
	// ErrCount indicates a sample count less than one.
	ErrCount = errors.New("sampling: count must be at least 1")

	// ErrDelta indicates a non-positive sampling interval.
	ErrDelta = errors.New("sampling: delta must be positive")

	// ErrTolerance indicates a negative tolerance.
	ErrTolerance = errors.New("sampling: tolerance must be non-negative")

	// ErrNotIncreasing indicates explicit sample values that do not
	// strictly increase.
	ErrNotIncreasing = errors.New("sampling: values must be strictly increasing")

	// ErrIndex indicates a sample index outside [0, count-1].
	ErrIndex = errors.New("sampling: index outside [0, count-1]")
)

// Sampling is a finite set of samples of a 1-D continuous axis.
// Uniform samplings store only (count, delta, first); explicit samplings
// store every value. A Sampling is immutable once constructed.
type Sampling struct {
	n  int       // number of samples
	d  float64   // sampling interval
	f  float64   // value of first sample
	v  []float64 // sample values; nil if uniform
	td float64   // tolerance multiplied by delta
}

// New returns a uniform sampling of n samples x[i] = f + i*d with the
// default tolerance. Returns ErrCount if n < 1 or ErrDelta if d <= 0.
func New(n int, d, f float64) (*Sampling, error) {
	return NewTolerance(n, d, f, DefaultTolerance)
}

// NewTolerance is New with an explicit tolerance, a fraction of d.
func NewTolerance(n int, d, f, t float64) (*Sampling, error) {
	switch {
	case n < 1:
		return nil, ErrCount
	case d <= 0:
		return nil, ErrDelta
	case t < 0:
		return nil, ErrTolerance
	}
	return &Sampling{n: n, d: d, f: f, td: t * d}, nil
}

// FromValues returns a sampling with the explicit, strictly increasing
// values v and the default tolerance. The values are copied.
// Returns ErrCount for empty v and ErrNotIncreasing on unordered values.
func FromValues(v []float64) (*Sampling, error) {
	return FromValuesTolerance(v, DefaultTolerance)
}

// FromValuesTolerance is FromValues with an explicit tolerance, a
// fraction of the average sampling interval.
func FromValuesTolerance(v []float64, t float64) (*Sampling, error) {
	n := len(v)
	switch {
	case n < 1:
		return nil, ErrCount
	case t < 0:
		return nil, ErrTolerance
	case !arrays.IsIncreasing(v):
		return nil, ErrNotIncreasing
	}
	d := 1.0
	if n > 1 {
		d = (v[n-1] - v[0]) / float64(n-1)
	}
	return &Sampling{n: n, d: d, f: v[0], v: arrays.Copy(v), td: t * d}, nil
}

// Count returns the number of samples.
func (s *Sampling) Count() int { return s.n }

// Delta returns the sampling interval; for explicit samplings, the
// average interval.
func (s *Sampling) Delta() float64 { return s.d }

// First returns the value of the first sample.
func (s *Sampling) First() float64 { return s.f }

// Last returns the value of the last sample.
func (s *Sampling) Last() float64 { return s.value(s.n - 1) }

// IsUniform reports whether the sampling is uniform.
func (s *Sampling) IsUniform() bool { return s.v == nil }

// Value returns the value of the i-th sample.
// Returns ErrIndex if i is outside [0, count-1].
func (s *Sampling) Value(i int) (float64, error) {
	if i < 0 || i >= s.n {
		return 0, ErrIndex
	}
	return s.value(i), nil
}

// Values returns a new slice of all sample values.
func (s *Sampling) Values() []float64 {
	if s.v != nil {
		return arrays.Copy(s.v)
	}
	return arrays.Ramp(s.f, s.d, s.n)
}

// IndexOf returns the index of the sample whose value equals x to within
// the sampling tolerance, or -1 if there is none.
func (s *Sampling) IndexOf(x float64) int {
	if s.v == nil {
		j := int(math.Round((x - s.f) / s.d))
		if 0 <= j && j < s.n && s.almostEqual(x, s.f+float64(j)*s.d) {
			return j
		}
		return -1
	}
	j := search.Binary(s.v, x)
	if j >= 0 {
		return j
	}
	j = -(j + 1) // insertion point: check both tolerant neighbors
	if j > 0 && s.almostEqual(x, s.v[j-1]) {
		return j - 1
	}
	if j < s.n && s.almostEqual(x, s.v[j]) {
		return j
	}
	return -1
}

// IndexOfNearest returns the index of the sample nearest to x.
func (s *Sampling) IndexOfNearest(x float64) int {
	if s.v == nil {
		i := int(math.Round((x - s.f) / s.d))
		if i < 0 {
			i = 0
		}
		if i >= s.n {
			i = s.n - 1
		}
		return i
	}
	i := search.Binary(s.v, x)
	if i < 0 {
		i = -(i + 1)
		if i == s.n {
			i = s.n - 1
		} else if i > 0 && math.Abs(x-s.v[i-1]) < math.Abs(x-s.v[i]) {
			i--
		}
	}
	return i
}

// ValueOfNearest returns the value of the sample nearest to x.
func (s *Sampling) ValueOfNearest(x float64) float64 {
	return s.value(s.IndexOfNearest(x))
}

// value returns the i-th sample value without bounds checking.
func (s *Sampling) value(i int) float64 {
	if s.v != nil {
		return s.v[i]
	}
	return s.f + float64(i)*s.d
}

// almostEqual reports whether v1 and v2 differ by less than the sampling
// tolerance.
func (s *Sampling) almostEqual(v1, v2 float64) bool {
	return math.Abs(v1-v2) < s.td
}
