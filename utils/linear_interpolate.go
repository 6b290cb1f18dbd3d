// SPDX-License-Identifier: EPL-2.0

package utils

// LinearInterpolate blends two consecutive samples.
// frac is the fractional position between y0 and y1 (0 <= frac <= 1).
func LinearInterpolate(y0, y1, frac float64) float64 {
	return y0*(1-frac) + y1*frac
}
