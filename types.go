package benchfft

import "github.com/peter-jerry-ye/benchmark-fft/internal/fftypes"

// Complex is a complex number with float64 components.
// The canonical definition is in internal/fftypes.
type Complex = fftypes.Complex

// NewComplex returns the complex number re + im·i.
func NewComplex(re, im float64) Complex {
	return Complex{Real: re, Imag: im}
}
