// Package reference provides a direct O(n²) DFT used as a correctness oracle
// in tests. It is deliberately slow and simple.
package reference

import (
	"math"

	"github.com/peter-jerry-ye/benchmark-fft/internal/fftypes"
	m "github.com/peter-jerry-ye/benchmark-fft/internal/math"
)

// NaiveDFT returns the unnormalized forward DFT of x, computing each output
// bin by the definition X[k] = Σ x[j]·exp(-2πi·jk/n). The angle is evaluated
// per term, so no twiddle accumulation error is shared with the kernel under
// test.
func NaiveDFT(x []fftypes.Complex) []fftypes.Complex {
	n := len(x)
	out := make([]fftypes.Complex, n)

	for k := 0; k < n; k++ {
		var sum fftypes.Complex
		for j := 0; j < n; j++ {
			angle := -m.TwoPi * float64(j) * float64(k) / float64(n)
			w := fftypes.Complex{Real: math.Cos(angle), Imag: math.Sin(angle)}
			sum = sum.Add(w.Mul(x[j]))
		}
		out[k] = sum
	}

	return out
}
