package math

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}
