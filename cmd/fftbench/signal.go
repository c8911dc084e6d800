package main

import (
	"math"

	benchfft "github.com/peter-jerry-ye/benchmark-fft"
)

// generateSignal synthesizes the benchmark input: two complex tones at 10 and
// 25 cycles over half a revolution, components rounded to two decimals so the
// same sequence is reproducible across implementations.
func generateSignal(n int) []benchfft.Complex {
	signal := make([]benchfft.Complex, 0, n)

	for i := 0; i < n; i++ {
		theta := float64(i) / float64(n) * math.Pi
		re := math.Cos(10*theta) + 0.5*math.Cos(25*theta)
		im := math.Sin(10*theta) + 0.5*math.Sin(25*theta)
		signal = append(signal, benchfft.NewComplex(round2(re), round2(im)))
	}

	return signal
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
