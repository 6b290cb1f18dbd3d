// SPDX-License-Identifier: EPL-2.0

package utils

// Clamp limits x to the closed range [-1, 1].
func Clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// Float64ToInt16 converts a normalized sample to a 16-bit PCM value.
// The scaled value is truncated toward zero, not rounded; encoded output
// must be byte-for-byte reproducible for a given buffer.
func Float64ToInt16(x float64) int16 {
	return int16(Clamp(x) * 32767.0)
}

// Int16ToFloat64 converts a 16-bit PCM value to a normalized sample.
func Int16ToFloat64(v int16) float64 {
	return float64(v) / 32768.0
}
