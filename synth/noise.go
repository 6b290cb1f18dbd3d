// SPDX-License-Identifier: EPL-2.0

package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/utils"
)

// Kind selects a noise color.
type Kind string

const (
	White Kind = "white"
	Pink  Kind = "pink"
	Brown Kind = "brown"
)

// ParseKind maps a string like "pink" to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case White, Pink, Brown:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNoiseKind, s)
	}
}

// Noise synthesizes round(duration * rate) samples of the given color at
// rate Hz. duration is in seconds.
//
// rng is the only randomness source; seed it for reproducible buffers.
// Filter state starts from zero on every call, nothing is shared across
// calls.
func Noise(duration float64, rate int, kind Kind, rng *rand.Rand) (*audio.Buffer, error) {
	n := int(math.Round(duration * float64(rate)))

	switch kind {
	case White:
		return whiteNoise(n, rate, rng), nil
	case Pink:
		return pinkNoise(n, rate, rng), nil
	case Brown:
		return brownNoise(n, rate, rng), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownNoiseKind, kind)
	}
}

// whiteNoise returns the uniform source directly: equal power at all
// frequencies.
func whiteNoise(n, rate int, rng *rand.Rand) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = uniform(rng, 1.0)
	}
	return audio.FromSamples(rate, samples)
}

// pinkNoise approximates 1/f noise by running the white source through a
// three-pole recursive filter (Paul Kellet's coefficients). The filtered
// value can in rare runs poke past unity, so the output sample is
// clamped to keep the buffer inside the normalized range.
func pinkNoise(n, rate int, rng *rand.Rand) *audio.Buffer {
	samples := make([]float64, n)
	var b0, b1, b2 float64

	for i := range samples {
		white := uniform(rng, 1.0)
		b0 = 0.99765*b0 + white*0.0990460
		b1 = 0.96300*b1 + white*0.2965164
		b2 = 0.57000*b2 + white*1.0526913
		samples[i] = utils.Clamp((b0 + b1 + b2 + white*0.1848) / 5.0)
	}

	return audio.FromSamples(rate, samples)
}

// brownNoise integrates small uniform steps into a random walk. The step
// magnitude bounds the walk's effective bandwidth; clamping after each
// step prevents unbounded drift.
func brownNoise(n, rate int, rng *rand.Rand) *audio.Buffer {
	samples := make([]float64, n)
	var last float64

	for i := range samples {
		last = utils.Clamp(last + uniform(rng, 0.02))
		samples[i] = last
	}

	return audio.FromSamples(rate, samples)
}

// uniform draws from [-limit, limit).
func uniform(rng *rand.Rand, limit float64) float64 {
	return (rng.Float64()*2 - 1) * limit
}
