package stats

import "github.com/katalvlaran/numath"

// Quantiler estimates a quantile of a stream of samples incrementally,
// without storing the samples. It maintains five markers — the minimum,
// the maximum, the target quantile, and the two quantiles halfway to each
// extreme — and nudges the inner markers toward their desired positions
// with parabolic (falling back to linear) interpolation after every
// sample: the P² method of Jain and Chlamtac (1985).
//
// Memory is O(1) and each update is O(1). The estimate is exact for the
// extreme fractions 0 and 1, and for other fractions improves with
// successive updates; it is probably not useful for fewer than 10 samples.
type Quantiler struct {
	q          float64    // target quantile fraction
	m          [5]float64 // marker positions
	h          [5]float64 // marker heights (sample values)
	f1, f2, f3 float64    // desired positions of the inner markers
	d1, d2, d3 float64    // per-sample increments of the desired positions
	nInit      int        // samples consumed during initialization
	inited     bool
	extreme    bool // q == 0 or q == 1: track min/max exactly
	tracked    bool // an extreme estimate exists
}

// NewQuantiler returns a Quantiler for quantile fraction q.
// Returns ErrFraction unless 0 ≤ q ≤ 1.
func NewQuantiler(q float64) (*Quantiler, error) {
	if q < 0 || q > 1 {
		return nil, ErrFraction
	}
	return &Quantiler{q: q, extreme: q == 0 || q == 1}, nil
}

// Estimate returns the current quantile estimate. Before five samples
// have been consumed the estimate is not meaningful.
func (qu *Quantiler) Estimate() float64 {
	return qu.h[2]
}

// Update consumes one sample and returns the updated estimate.
func (qu *Quantiler) Update(f float64) float64 {
	switch {
	case qu.extreme:
		// Fractions 0 and 1 are exact running extremes.
		if !qu.tracked || (qu.q == 0 && f < qu.h[2]) || (qu.q == 1 && f > qu.h[2]) {
			qu.h[2] = f
			qu.tracked = true
		}
	case !qu.inited:
		qu.initOne(f)
	default:
		qu.updateOne(f)
	}
	return qu.Estimate()
}

// UpdateAll consumes every sample of x and returns the updated estimate.
func UpdateAll[T numath.Real](qu *Quantiler, x []T) float64 {
	for _, v := range x {
		qu.Update(float64(v))
	}
	return qu.Estimate()
}

// StreamQuantile estimates the q-quantile of x with a fresh Quantiler,
// as if the slice had arrived as a stream.
// Returns ErrFraction unless 0 ≤ q ≤ 1.
func StreamQuantile[T numath.Real](q float64, x []T) (float64, error) {
	qu, err := NewQuantiler(q)
	if err != nil {
		return 0, err
	}
	return UpdateAll(qu, x), nil
}

// initOne collects the first five samples; once all five are in, marker
// heights are the five samples sorted and the desired positions and their
// increments are derived from q.
func (qu *Quantiler) initOne(f float64) {
	qu.h[qu.nInit] = f
	qu.m[qu.nInit] = float64(qu.nInit)
	qu.nInit++
	if qu.nInit < 5 {
		return
	}

	// Heights become the five initial samples in order.
	for i := 1; i < 5; i++ {
		for j := i; j > 0 && qu.h[j-1] > qu.h[j]; j-- {
			qu.h[j-1], qu.h[j] = qu.h[j], qu.h[j-1]
		}
	}

	qu.f1 = 2 * qu.q
	qu.f2 = 4 * qu.q
	qu.f3 = 2 + 2*qu.q

	qu.d1 = qu.q / 2
	qu.d2 = qu.q
	qu.d3 = (1 + qu.q) / 2

	qu.inited = true
}

// updateOne advances marker positions for one sample and, where a desired
// position has drifted a full step from its marker, moves the marker one
// position and re-interpolates its height.
func (qu *Quantiler) updateOne(f float64) {
	// Bump positions of all markers right of the sample; extremes absorb
	// new minima and maxima.
	switch {
	case f < qu.h[0]:
		qu.m[1]++
		qu.m[2]++
		qu.m[3]++
		qu.m[4]++
		qu.h[0] = f
	case f < qu.h[1]:
		qu.m[1]++
		qu.m[2]++
		qu.m[3]++
		qu.m[4]++
	case f < qu.h[2]:
		qu.m[2]++
		qu.m[3]++
		qu.m[4]++
	case f < qu.h[3]:
		qu.m[3]++
		qu.m[4]++
	case f < qu.h[4]:
		qu.m[4]++
	default:
		qu.m[4]++
		qu.h[4] = f
	}

	qu.f1 += qu.d1
	qu.f2 += qu.d2
	qu.f3 += qu.d3

	// Adjust the three inner markers toward their desired positions.
	if mp := qu.m[1] + 1; qu.f1 >= mp && qu.m[2] > mp {
		qu.h[1] = qp(mp, qu.m[0], qu.m[1], qu.m[2], qu.h[0], qu.h[1], qu.h[2])
		qu.m[1] = mp
	} else if mm := qu.m[1] - 1; qu.f1 <= mm && qu.m[0] < mm {
		qu.h[1] = qm(mm, qu.m[0], qu.m[1], qu.m[2], qu.h[0], qu.h[1], qu.h[2])
		qu.m[1] = mm
	}
	if mp := qu.m[2] + 1; qu.f2 >= mp && qu.m[3] > mp {
		qu.h[2] = qp(mp, qu.m[1], qu.m[2], qu.m[3], qu.h[1], qu.h[2], qu.h[3])
		qu.m[2] = mp
	} else if mm := qu.m[2] - 1; qu.f2 <= mm && qu.m[1] < mm {
		qu.h[2] = qm(mm, qu.m[1], qu.m[2], qu.m[3], qu.h[1], qu.h[2], qu.h[3])
		qu.m[2] = mm
	}
	if mp := qu.m[3] + 1; qu.f3 >= mp && qu.m[4] > mp {
		qu.h[3] = qp(mp, qu.m[2], qu.m[3], qu.m[4], qu.h[2], qu.h[3], qu.h[4])
		qu.m[3] = mp
	} else if mm := qu.m[3] - 1; qu.f3 <= mm && qu.m[2] < mm {
		qu.h[3] = qm(mm, qu.m[2], qu.m[3], qu.m[4], qu.h[2], qu.h[3], qu.h[4])
		qu.m[3] = mm
	}
}

// qp interpolates the height for a marker moving right to position mp,
// parabolically between its neighbors, or linearly if the parabola
// overshoots the right neighbor.
func qp(mp, m0, m1, m2, q0, q1, q2 float64) float64 {
	qt := q1 + ((mp-m0)*(q2-q1)/(m2-m1)+(m2-mp)*(q1-q0)/(m1-m0))/(m2-m0)
	if qt <= q2 {
		return qt
	}
	return q1 + (q2-q1)/(m2-m1)
}

// qm interpolates the height for a marker moving left to position mm,
// parabolically between its neighbors, or linearly if the parabola
// undershoots the left neighbor.
func qm(mm, m0, m1, m2, q0, q1, q2 float64) float64 {
	qt := q1 - ((mm-m0)*(q2-q1)/(m2-m1)+(m2-mm)*(q1-q0)/(m1-m0))/(m2-m0)
	if q0 <= qt {
		return qt
	}
	return q1 + (q0-q1)/(m0-m1)
}
