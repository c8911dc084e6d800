// Package fft implements the recursive Cooley-Tukey radix-2 kernel used by
// the public Transform entry points.
package fft

import (
	"math"

	"github.com/peter-jerry-ye/benchmark-fft/internal/fftypes"
	m "github.com/peter-jerry-ye/benchmark-fft/internal/math"
)

// Forward computes the unnormalized radix-2 DFT of x in place using recursive
// decimation-in-time. len(x) must be a power of two; this is not checked here.
//
// One scratch buffer of len(x) is allocated per call and shared by the whole
// recursion: each level copies its even/odd split into scratch halves and
// lends the caller's storage to the sub-transforms as their scratch. The
// arithmetic (split order, accumulated twiddle, butterfly order) is unchanged,
// only the allocation pattern differs from the naive two-slices-per-frame
// formulation.
func Forward(x []fftypes.Complex) {
	if len(x) <= 1 {
		return
	}

	scratch := make([]fftypes.Complex, len(x))
	recurse(x, scratch)
}

// recurse transforms x in place. scratch must have the same length as x and
// may hold arbitrary values; its contents are clobbered.
func recurse(x, scratch []fftypes.Complex) {
	n := len(x)
	if n == 1 {
		return
	}

	half := n / 2
	even := scratch[:half]
	odd := scratch[half:n]

	for i := 0; i < half; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	recurse(even, x[:half])
	recurse(odd, x[half:n])

	// Butterfly combine. The twiddle factor accumulates by multiplication
	// rather than calling cos/sin per term; the rounding drift over n/2
	// multiplications is accepted for the sizes this kernel targets.
	angle := -m.TwoPi / float64(n)
	step := fftypes.Complex{Real: math.Cos(angle), Imag: math.Sin(angle)}
	w := fftypes.Complex{Real: 1, Imag: 0}

	for i := 0; i < half; i++ {
		p := even[i]
		q := w.Mul(odd[i])
		x[i] = p.Add(q)
		x[i+half] = p.Sub(q)
		w = w.Mul(step)
	}
}
