// Package fftypes holds the complex value type shared between the public API
// and the internal transform kernels. The canonical definition lives here so
// that internal packages can use it without importing the root package.
package fftypes

import "math"

// Complex is a complex number with float64 components.
//
// All arithmetic methods are pure: they return a new value and never mutate
// the receiver or their operands. NaN and Inf components propagate according
// to IEEE-754; no method detects or rejects them.
type Complex struct {
	Real float64
	Imag float64
}

// Add returns the component-wise sum c + other.
func (c Complex) Add(other Complex) Complex {
	return Complex{c.Real + other.Real, c.Imag + other.Imag}
}

// Sub returns the component-wise difference c - other.
func (c Complex) Sub(other Complex) Complex {
	return Complex{c.Real - other.Real, c.Imag - other.Imag}
}

// Mul returns the complex product c * other.
func (c Complex) Mul(other Complex) Complex {
	return Complex{
		c.Real*other.Real - c.Imag*other.Imag,
		c.Real*other.Imag + c.Imag*other.Real,
	}
}

// MulScalar returns c with both components scaled by s.
func (c Complex) MulScalar(s float64) Complex {
	return Complex{c.Real * s, c.Imag * s}
}

// Abs2 returns the squared magnitude |c|².
//
// Avoiding the square root keeps energy sums exact in float64 for longer,
// which is what the Parseval checks care about.
func (c Complex) Abs2() float64 {
	return c.Real*c.Real + c.Imag*c.Imag
}

// Abs returns the magnitude |c|.
func (c Complex) Abs() float64 {
	return math.Hypot(c.Real, c.Imag)
}
