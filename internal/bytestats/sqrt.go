// internal/bytestats/sqrt.go
package bytestats

import "math"

// sqrt32 approximates the square root of x without math.Sqrt, so the core
// stays usable where no hosted math library exists. The seed halves the
// float exponent through its bit pattern (worst case roughly 3.5% off) and
// three Newton-Raphson steps refine it; each step squares the relative
// error, leaving the result within float32 rounding of the true root.
// Negative and zero inputs return 0.
func sqrt32(x float32) float32 {
	if x <= 0 {
		return 0
	}
	z := math.Float32frombits(math.Float32bits(x)>>1 + 0x1fbd1df5)
	for i := 0; i < 3; i++ {
		z = (z + x/z) / 2
	}
	return z
}
