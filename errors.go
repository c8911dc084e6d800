package benchfft

import "errors"

// Sentinel errors returned by Transform.
var (
	// ErrInvalidLength is returned when the sequence length is not a
	// positive power of 2. The radix-2 recursion terminates correctly only
	// for such lengths.
	ErrInvalidLength = errors.New("benchfft: length is not a power of 2")

	// ErrNilSlice is returned when a nil slice is passed to Transform.
	ErrNilSlice = errors.New("benchfft: nil slice")
)
