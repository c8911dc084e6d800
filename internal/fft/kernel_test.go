package fft

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/peter-jerry-ye/benchmark-fft/internal/fftypes"
	"github.com/peter-jerry-ye/benchmark-fft/internal/reference"
)

const testTol = 1e-9

func randomSignal(n int, seed int64) []fftypes.Complex {
	rnd := rand.New(rand.NewSource(seed))
	x := make([]fftypes.Complex, n)
	for i := range x {
		x[i] = fftypes.Complex{Real: rnd.Float64()*2 - 1, Imag: rnd.Float64()*2 - 1}
	}
	return x
}

func assertClose(t *testing.T, got, want []fftypes.Complex, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].Sub(want[i]).Abs() > tol {
			t.Fatalf("index %d: got %v, want %v (diff=%v)",
				i, got[i], want[i], got[i].Sub(want[i]).Abs())
		}
	}
}

// TestForwardMatchesNaiveDFT checks the recursive kernel against the O(n²)
// definition for all power-of-two sizes up to 1024.
func TestForwardMatchesNaiveDFT(t *testing.T) {
	t.Parallel()

	for k := 0; k <= 10; k++ {
		n := 1 << k

		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := randomSignal(n, int64(n))
			want := reference.NaiveDFT(x)

			Forward(x)

			// Tolerance grows with n: accumulated twiddle plus O(n) sums.
			assertClose(t, x, want, testTol*float64(n))
		})
	}
}

func TestForwardBaseCases(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		Forward(nil)
		Forward([]fftypes.Complex{})
	})

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		x := []fftypes.Complex{{Real: 3.5, Imag: -1.25}}
		Forward(x)

		if x[0] != (fftypes.Complex{Real: 3.5, Imag: -1.25}) {
			t.Errorf("single-element transform changed value: %v", x[0])
		}
	})
}

// TestForwardKnownBins checks hand-computed unnormalized spectra.
func TestForwardKnownBins(t *testing.T) {
	t.Parallel()

	t.Run("constant", func(t *testing.T) {
		t.Parallel()

		x := []fftypes.Complex{{Real: 1}, {Real: 1}, {Real: 1}, {Real: 1}}
		Forward(x)

		want := []fftypes.Complex{{Real: 4}, {}, {}, {}}
		assertClose(t, x, want, testTol)
	})

	t.Run("impulse", func(t *testing.T) {
		t.Parallel()

		x := []fftypes.Complex{{Real: 1}, {}, {}, {}}
		Forward(x)

		want := []fftypes.Complex{{Real: 1}, {Real: 1}, {Real: 1}, {Real: 1}}
		assertClose(t, x, want, testTol)
	})

	t.Run("alternating", func(t *testing.T) {
		t.Parallel()

		// [1,-1,1,-1] puts all energy in the Nyquist bin.
		x := []fftypes.Complex{{Real: 1}, {Real: -1}, {Real: 1}, {Real: -1}}
		Forward(x)

		want := []fftypes.Complex{{}, {}, {Real: 4}, {}}
		assertClose(t, x, want, testTol)
	})
}

func TestScaleInPlace(t *testing.T) {
	t.Parallel()

	x := []fftypes.Complex{{Real: 2, Imag: -4}, {Real: 0.5, Imag: 1}}
	ScaleInPlace(x, 0.5)

	want := []fftypes.Complex{{Real: 1, Imag: -2}, {Real: 0.25, Imag: 0.5}}
	assertClose(t, x, want, 0)

	// scale == 1 is a no-op, bit for bit.
	before := x[0]
	ScaleInPlace(x, 1)
	if x[0] != before {
		t.Errorf("unit scale modified data: %v != %v", x[0], before)
	}
}

// TestForwardEnergy checks Parseval's relation for the unnormalized kernel:
// output energy is n times input energy.
func TestForwardEnergy(t *testing.T) {
	t.Parallel()

	const n = 256

	x := randomSignal(n, 9157)

	var in float64
	for _, v := range x {
		in += v.Abs2()
	}

	Forward(x)

	var out float64
	for _, v := range x {
		out += v.Abs2()
	}

	if math.Abs(out-float64(n)*in) > 1e-6*out {
		t.Errorf("energy: got %v, want %v", out, float64(n)*in)
	}
}

func BenchmarkForward(b *testing.B) {
	for _, k := range []int{8, 12, 14} {
		n := 1 << k

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomSignal(n, 1)
			x := make([]fftypes.Complex, n)

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				copy(x, src)
				Forward(x)
			}
		})
	}
}
