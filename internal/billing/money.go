package billing

import "math"

// Round2 rounds a currency amount to two decimal places using half-up
// rounding. Zero and negative inputs are rounded, never clamped; clamping is
// the caller's responsibility.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}
