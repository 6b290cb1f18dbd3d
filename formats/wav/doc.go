// SPDX-License-Identifier: EPL-2.0

// Package wav decodes and encodes 16-bit PCM RIFF/WAVE files.
//
// # Decoding
//
// Decode reads a chunk-based RIFF stream and returns a mono
// audio.Buffer. Multi-channel files are downmixed by averaging the
// channels of each frame; every channel value is normalized from signed
// 16-bit PCM by dividing by 32768. Chunks other than "fmt " and "data"
// (LIST, fact, cue and friends) are skipped by their declared size, so
// files carrying metadata still decode.
//
//	f, _ := os.Open("speech.wav")
//	buf, err := wav.Decode(f)
//	if errors.Is(err, wav.ErrOnlyPCM16bitSupported) {
//	    // convert the file to 16-bit PCM first
//	}
//
// Only integer PCM (format code 1) at 16 bits per sample is supported;
// compressed or float WAV files are rejected with a sentinel error.
//
// # Encoding
//
// Encode always writes mono 16-bit PCM at the buffer's sample rate.
// Samples are clamped to [-1, 1], scaled by 32767 and truncated toward
// zero, so output is byte-for-byte reproducible for a given buffer:
//
//	f, _ := os.Create("out.wav")
//	err := wav.Encode(f, buf)
//
// DecodeFile and EncodeFile are path-level conveniences over the same
// codec.
//
// # Errors
//
// Malformed or unsupported input surfaces as one of the package
// sentinels: ErrNotWavFile, ErrUnsupportedWavLayout, ErrNotPCMFormat,
// ErrOnlyPCM16bitSupported, ErrNoChannels, ErrMissingDataChunk. All are
// comparable with errors.Is.
package wav
