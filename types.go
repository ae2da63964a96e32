package numath

// Signed is a constraint for the signed integer element kinds.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is a constraint for the floating-point element kinds.
type Float interface {
	~float32 | ~float64
}

// Real is a constraint for every element kind the library operates on:
// signed integers and floating-point values, all totally ordered by <.
//
// NaN caveat: floating-point NaN is not ordered by <; slices containing
// NaN violate the total-order assumption of sorting and search.
type Real interface {
	Signed | Float
}
