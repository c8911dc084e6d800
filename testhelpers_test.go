package benchfft

import (
	"math/rand"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomSignal(n int, seed int64) []Complex {
	rnd := rand.New(rand.NewSource(seed))
	x := make([]Complex, n)
	for i := range x {
		x[i] = NewComplex(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}
	return x
}

func assertComplexTolf(t *testing.T, got, want Complex, tol float64, format string, args ...any) {
	t.Helper()

	if got.Sub(want).Abs() > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, got.Sub(want).Abs())...)
	}
}

func assertSliceClose(t *testing.T, got, want []Complex, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}
	for i := range got {
		assertComplexTolf(t, got[i], want[i], tol, "index %d", i)
	}
}
