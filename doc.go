// SPDX-License-Identifier: EPL-2.0

// Package noisemix builds noisy-speech audio from clean signals: it
// decodes and encodes 16-bit PCM WAV, reshapes buffers, synthesizes
// colored noise, and mixes speech with noise at a chosen
// signal-to-noise ratio.
//
// # Quick Start
//
// The simplest way to produce a noisy file is MixdownFiles:
//
//	err := noisemix.MixdownFiles("speech.wav", "cafe.wav", "out.wav", 10)
//
// The noise file is resampled to the speech's rate, looped (or
// truncated) to the speech's length, mixed at 10 dB SNR, and written as
// mono 16-bit PCM.
//
// # Pipeline
//
// For more control, compose the subpackages directly:
//
//	speech, _ := wav.DecodeFile("speech.wav")
//	rng := rand.New(rand.NewSource(42))
//	noise, _ := synth.Noise(speech.Duration().Seconds(), speech.Rate, synth.Pink, rng)
//	mixed, _ := noisemix.MixdownAtSNR(speech, noise, 5)
//	wav.EncodeFile("out.wav", mixed)
//
// Buffers are immutable mono values (multi-channel WAV input is
// averaged down at decode time), so every step of the pipeline is a
// pure function and safe to run concurrently over independent buffers.
//
// # Subpackages
//
//   - audio: the Buffer type, reshaping transforms, and the SNR mixer
//   - formats/wav: the PCM container codec
//   - synth: white/pink/brown noise and test tones
//   - dataset: batch generation of SNR grids on disk
//
// Lossy formats (MP3, Ogg, ...) are deliberately out of scope; convert
// them to PCM WAV with an external tool before decoding.
package noisemix
