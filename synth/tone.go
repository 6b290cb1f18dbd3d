// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"math"

	"github.com/odedk/noisemix/audio"
)

// Sine generates a pure tone of the given frequency and amplitude.
// duration is in seconds, rate in Hz.
func Sine(duration float64, rate int, freq, amplitude float64) *audio.Buffer {
	n := int(math.Round(duration * float64(rate)))
	samples := make([]float64, n)

	for i := range samples {
		t := float64(i) / float64(rate)
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}

	return audio.FromSamples(rate, samples)
}

// Chirp generates a linear frequency sweep from f0 to f1 over the full
// duration, at the given amplitude.
func Chirp(duration float64, rate int, f0, f1, amplitude float64) *audio.Buffer {
	n := int(math.Round(duration * float64(rate)))
	samples := make([]float64, n)

	for i := range samples {
		t := float64(i) / float64(rate)
		freq := f0 + (f1-f0)*(t/duration)
		samples[i] = amplitude * math.Sin(2*math.Pi*freq*t)
	}

	return audio.FromSamples(rate, samples)
}
