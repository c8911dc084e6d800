// Package benchfft computes the unitary discrete Fourier transform of a
// power-of-two-length sequence of complex samples, using the recursive
// Cooley-Tukey radix-2 algorithm.
//
// The transform runs in place and scales its output by 1/sqrt(n), so total
// signal energy is preserved between the time and frequency domains.
//
// # Basic Usage
//
//	x := make([]benchfft.Complex, 8)
//	for i := range x {
//	    x[i] = benchfft.NewComplex(float64(i), 0)
//	}
//
//	if err := benchfft.Transform(x); err != nil {
//	    log.Fatal(err)
//	}
//	// x now holds the unitary spectrum.
//
// Transform validates that the input is non-nil with power-of-two length and
// returns a sentinel error otherwise. Callers that have already established
// the precondition can use TransformUnchecked, which skips validation and has
// undefined behavior off-contract.
package benchfft
