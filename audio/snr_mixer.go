// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/odedk/noisemix/utils"
)

// MixSNR combines speech with noise at the given signal-to-noise ratio
// in decibels. Lower snrDB means louder relative noise; the relationship
// is exponential in decibels, not linear.
//
// The noise is scaled so that
//
//	snrDB = 20 * log10(speechRMS / (noiseRMS * scale))
//
// and each output sample is clip(speech[i] + noise[i]*scale, -1, 1).
// Clipping is deliberate: summed amplitude beyond unity is hard-limited
// rather than attenuating the whole mix.
//
// Both buffers must have the same length and sample rate; MixSNR does
// not resample or reshape. Silent noise (zero RMS) contributes nothing
// instead of dividing by zero.
func MixSNR(speech, noise *Buffer, snrDB float64) (*Buffer, error) {
	if speech.Len() != noise.Len() || speech.Rate != noise.Rate {
		return nil, ErrDimensionMismatch
	}

	scale := 0.0
	if noiseRMS := noise.RMS(); noiseRMS > 0 {
		scale = speech.RMS() / (noiseRMS * math.Pow(10, snrDB/20))
	}

	out := make([]float64, speech.Len())
	for i, s := range speech.Samples {
		out[i] = utils.Clamp(s + noise.Samples[i]*scale)
	}

	return FromSamples(speech.Rate, out), nil
}
