package benchfft

import (
	"math"

	"github.com/peter-jerry-ye/benchmark-fft/internal/fft"
	m "github.com/peter-jerry-ye/benchmark-fft/internal/math"
)

// Transform replaces x with its unitary DFT, computed in place by recursive
// Cooley-Tukey decimation-in-time and scaled by 1/sqrt(len(x)).
//
// x must be non-nil and its length a power of two; otherwise ErrNilSlice or
// ErrInvalidLength is returned and x is left unmodified.
func Transform(x []Complex) error {
	if x == nil {
		return ErrNilSlice
	}

	if !m.IsPowerOf2(len(x)) {
		return ErrInvalidLength
	}

	TransformUnchecked(x)

	return nil
}

// TransformUnchecked is Transform without precondition checks. Behavior is
// undefined if len(x) is not a power of two.
func TransformUnchecked(x []Complex) {
	fft.Forward(x)
	fft.ScaleInPlace(x, 1.0/math.Sqrt(float64(len(x))))
}
