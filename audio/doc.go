// SPDX-License-Identifier: EPL-2.0

// Package audio provides the mono PCM buffer type and the pure
// transforms that operate on it.
//
// A Buffer holds normalized float64 samples in the range [-1.0, 1.0] at
// a fixed sample rate. Buffers are value objects: every transform
// returns a new buffer (or the receiver unchanged when the transform is
// a no-op) and never mutates its input. This keeps pipelines free of
// aliasing surprises and makes each step testable in isolation.
//
// # Transforms
//
// Three reshaping operations cover normalizing two signals to a common
// rate and length before mixing:
//
//	resampled := buf.Resample(44100)      // linear interpolation
//	fixed := buf.TrimOrPad(44100 * 10)    // truncate or zero-pad
//	looped := buf.LoopToLength(buf.Len()) // repeat from the start
//
// # SNR Mixing
//
// MixSNR combines a speech buffer and a noise buffer at a target
// signal-to-noise ratio expressed in decibels:
//
//	mixed, err := audio.MixSNR(speech, noise, 10)
//	if err != nil {
//	    // buffers disagree on length or rate
//	}
//
// The noise is scaled so that the resulting speech-to-noise RMS ratio
// matches the requested level; summed samples that exceed unity are
// hard-clipped. Both inputs must already share a length and sample
// rate — use the transforms above to get them there.
package audio
