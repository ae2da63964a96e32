package arrays

import "errors"

var (
	// ErrLength indicates operand or destination slices of differing lengths.
	ErrLength = errors.New("arrays: slice length mismatch")

	// ErrEmpty indicates a reduction over an empty slice.
	ErrEmpty = errors.New("arrays: empty slice")

	// ErrRagged indicates a 2-D or 3-D array whose rows differ in length.
	ErrRagged = errors.New("arrays: ragged array")
)
