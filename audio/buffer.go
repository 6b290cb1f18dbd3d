// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"time"
)

// Buffer is a single-channel PCM signal: normalized float64 samples in
// [-1.0, 1.0] at a fixed sample rate. Multi-channel sources are downmixed
// to mono before a Buffer is ever constructed.
//
// Buffers are treated as immutable values; transforms return new buffers.
type Buffer struct {
	Rate    int
	Samples []float64
}

// New returns a silent buffer of n samples at rate.
func New(rate, n int) *Buffer {
	return &Buffer{
		Rate:    rate,
		Samples: make([]float64, n),
	}
}

// FromSamples wraps samples in a buffer without copying. The caller hands
// over ownership of the slice and must not modify it afterwards.
func FromSamples(rate int, samples []float64) *Buffer {
	return &Buffer{
		Rate:    rate,
		Samples: samples,
	}
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Duration returns the playback time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.Samples)) / float64(b.Rate) * float64(time.Second))
}

// RMS returns the root-mean-square amplitude of the buffer.
// The RMS of an empty buffer is 0, never NaN.
func (b *Buffer) RMS() float64 {
	if len(b.Samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range b.Samples {
		sum += s * s
	}

	return math.Sqrt(sum / float64(len(b.Samples)))
}
