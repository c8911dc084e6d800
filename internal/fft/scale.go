package fft

import "github.com/peter-jerry-ye/benchmark-fft/internal/fftypes"

// ScaleInPlace scales each element in dst by scale.
func ScaleInPlace(dst []fftypes.Complex, scale float64) {
	if scale == 1 {
		return
	}

	for i := range dst {
		dst[i] = dst[i].MulScalar(scale)
	}
}
