// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/odedk/noisemix/utils"
)

// Resample converts the buffer to targetRate using linear interpolation
// between the two nearest source samples. When targetRate equals the
// buffer's rate the receiver is returned unchanged.
//
// The output length is the integer truncation of len * targetRate/rate.
func (b *Buffer) Resample(targetRate int) *Buffer {
	if targetRate == b.Rate {
		return b
	}

	ratio := float64(targetRate) / float64(b.Rate)
	out := make([]float64, int(float64(len(b.Samples))*ratio))

	for i := range out {
		pos := float64(i) / ratio
		left := int(pos)
		right := left + 1
		// The last source index has no right neighbour.
		if right > len(b.Samples)-1 {
			right = len(b.Samples) - 1
		}
		out[i] = utils.LinearInterpolate(b.Samples[left], b.Samples[right], pos-float64(left))
	}

	return FromSamples(targetRate, out)
}

// TrimOrPad forces the buffer to exactly n samples: longer buffers are
// truncated, shorter ones are padded with silence. Negative lengths are
// treated as zero.
func (b *Buffer) TrimOrPad(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	if len(b.Samples) == n {
		return b
	}

	out := make([]float64, n)
	copy(out, b.Samples)

	return FromSamples(b.Rate, out)
}

// LoopToLength repeats the buffer from the start until it holds exactly
// n samples; the final repetition may be partial. A buffer already at or
// beyond n samples is truncated instead of looped. Negative lengths are
// treated as zero.
//
// An empty buffer cannot be looped and yields silence of length n.
func (b *Buffer) LoopToLength(n int) *Buffer {
	if n < 0 {
		n = 0
	}
	if len(b.Samples) >= n {
		if len(b.Samples) == n {
			return b
		}
		out := make([]float64, n)
		copy(out, b.Samples[:n])
		return FromSamples(b.Rate, out)
	}

	if len(b.Samples) == 0 {
		return New(b.Rate, n)
	}

	out := make([]float64, 0, n)
	for len(out) < n {
		remaining := n - len(out)
		if remaining > len(b.Samples) {
			remaining = len(b.Samples)
		}
		out = append(out, b.Samples[:remaining]...)
	}

	return FromSamples(b.Rate, out)
}
