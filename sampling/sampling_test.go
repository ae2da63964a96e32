package sampling_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numath/sampling"
)

// TestUniform covers accessors and lookup on a uniform sampling.
func TestUniform(t *testing.T) {
	s, err := sampling.New(11, 0.5, 2.0) // 2.0, 2.5, ..., 7.0
	require.NoError(t, err)

	assert.Equal(t, 11, s.Count())
	assert.Equal(t, 0.5, s.Delta())
	assert.Equal(t, 2.0, s.First())
	assert.Equal(t, 7.0, s.Last())
	assert.True(t, s.IsUniform())

	v, err := s.Value(4)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
	_, err = s.Value(11)
	assert.ErrorIs(t, err, sampling.ErrIndex)
	_, err = s.Value(-1)
	assert.ErrorIs(t, err, sampling.ErrIndex)

	vals := s.Values()
	require.Len(t, vals, 11)
	assert.Equal(t, 2.0, vals[0])
	assert.Equal(t, 7.0, vals[10])

	// Exact and tolerant hits; misses return -1.
	assert.Equal(t, 6, s.IndexOf(5.0))
	assert.Equal(t, 6, s.IndexOf(5.0+1e-8), "within tolerance")
	assert.Equal(t, -1, s.IndexOf(5.2))
	assert.Equal(t, -1, s.IndexOf(100.0))

	// Nearest is clamped to the ends.
	assert.Equal(t, 6, s.IndexOfNearest(5.1))
	assert.Equal(t, 0, s.IndexOfNearest(-50.0))
	assert.Equal(t, 10, s.IndexOfNearest(50.0))
	assert.Equal(t, 5.0, s.ValueOfNearest(5.1))
}

// TestExplicit covers the binary-search lookup path of explicit samplings.
func TestExplicit(t *testing.T) {
	v := []float64{1, 2, 4, 8, 16}
	s, err := sampling.FromValues(v)
	require.NoError(t, err)

	assert.False(t, s.IsUniform())
	assert.Equal(t, 5, s.Count())
	assert.Equal(t, 1.0, s.First())
	assert.Equal(t, 16.0, s.Last())
	assert.Equal(t, v, s.Values())

	// The returned values are a copy.
	s.Values()[0] = 99
	assert.Equal(t, 1.0, s.First())

	assert.Equal(t, 2, s.IndexOf(4))
	assert.Equal(t, -1, s.IndexOf(5))
	assert.Equal(t, 0, s.IndexOf(1))
	assert.Equal(t, 4, s.IndexOf(16))

	assert.Equal(t, 2, s.IndexOfNearest(4.9))
	assert.Equal(t, 3, s.IndexOfNearest(7))
	assert.Equal(t, 0, s.IndexOfNearest(-3))
	assert.Equal(t, 4, s.IndexOfNearest(1000))
	assert.Equal(t, 8.0, s.ValueOfNearest(7))
}

// TestTolerance verifies the tolerance is a fraction of delta.
func TestTolerance(t *testing.T) {
	s, err := sampling.NewTolerance(10, 1.0, 0.0, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 3, s.IndexOf(3.2), "0.2 < 0.25*delta")
	assert.Equal(t, -1, s.IndexOf(3.3), "0.3 > 0.25*delta")
}

// TestValidation covers every constructor error.
func TestValidation(t *testing.T) {
	_, err := sampling.New(0, 1, 0)
	assert.ErrorIs(t, err, sampling.ErrCount)
	_, err = sampling.New(5, 0, 0)
	assert.ErrorIs(t, err, sampling.ErrDelta)
	_, err = sampling.NewTolerance(5, 1, 0, -1)
	assert.ErrorIs(t, err, sampling.ErrTolerance)

	_, err = sampling.FromValues([]float64{})
	assert.ErrorIs(t, err, sampling.ErrCount)
	_, err = sampling.FromValues([]float64{1, 3, 2})
	assert.ErrorIs(t, err, sampling.ErrNotIncreasing)
	_, err = sampling.FromValues([]float64{1, 1, 2})
	assert.ErrorIs(t, err, sampling.ErrNotIncreasing, "duplicates are not strictly increasing")
}
