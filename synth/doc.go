// SPDX-License-Identifier: EPL-2.0

// Package synth generates audio buffers from scratch: colored noise for
// mixing experiments and simple deterministic test tones.
//
// # Noise
//
// Noise produces white, pink or brown noise. The random source is an
// explicit *rand.Rand so generation is reproducible — seed it and the
// same buffer comes back every time:
//
//	rng := rand.New(rand.NewSource(42))
//	noise, err := synth.Noise(10, 44100, synth.Pink, rng)
//
// White noise is the uniform source itself. Pink noise shapes the same
// source with a three-pole recursive filter whose state starts at zero
// on every call. Brown noise integrates small uniform steps into a
// clamped random walk. All generated samples lie in [-1.0, 1.0].
//
// # Tones
//
// Sine and Chirp produce deterministic reference signals, useful for
// inspecting a processing chain end to end:
//
//	tone := synth.Sine(3, 44100, 440, 0.5)
//	sweep := synth.Chirp(3, 44100, 200, 2000, 0.5)
package synth
