// SPDX-License-Identifier: EPL-2.0

// Package dataset assembles noisy-speech test sets on disk: one clean
// speech file plus a grid of mixes, one WAV per noise source and SNR
// level.
//
// The builder normalizes the speech buffer to the configured rate and
// length cap, reshapes every noise source to match, and writes
// mixed_<noise>_snr<level>db.wav files. Noise sources are independent of
// each other, so each one is processed on its own goroutine.
//
//	b := dataset.NewBuilder(dataset.Config{Rate: 44100, MaxDuration: 10})
//	files, err := b.Build(dir, speech, []dataset.Source{
//	    {Name: "white", Noise: whiteNoise},
//	    {Name: "cafe", Noise: cafeNoise},
//	})
package dataset
