// SPDX-License-Identifier: EPL-2.0

// Package audiotest provides deterministic buffer factories for tests.
package audiotest

import (
	"math"

	"github.com/odedk/noisemix/audio"
)

// Silent returns a buffer of n zero samples at rate.
func Silent(rate, n int) *audio.Buffer {
	return audio.New(rate, n)
}

// Constant returns a buffer of n samples all holding value.
func Constant(rate, n int, value float64) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = value
	}
	return audio.FromSamples(rate, samples)
}

// Sine returns n samples of a sine wave at the given frequency and
// amplitude.
func Sine(rate, n int, freq, amplitude float64) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}
	return audio.FromSamples(rate, samples)
}

// Ramp returns n samples rising linearly from -amplitude to +amplitude.
func Ramp(rate, n int, amplitude float64) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		if n > 1 {
			samples[i] = amplitude * (2*float64(i)/float64(n-1) - 1)
		}
	}
	return audio.FromSamples(rate, samples)
}
