// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/utils"
)

const headerSize = 44

// Encode writes b as a mono 16-bit PCM WAV at the buffer's sample rate.
// Samples are clamped to [-1, 1], scaled by 32767 and truncated toward
// zero; the header is computed deterministically, so output is
// byte-for-byte reproducible for a given buffer.
func Encode(w io.Writer, b *audio.Buffer) error {
	const (
		numChannels   = uint16(1)
		bitsPerSample = uint16(16)
	)
	byteRate := uint32(b.Rate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8
	dataSize := uint32(b.Len() * 2)
	riffSize := 36 + dataSize

	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], pcmFormatCode)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(b.Rate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if b.Len() == 0 {
		return nil
	}

	// Quantize and write in chunks to keep allocations flat for long
	// buffers.
	const chunkFrames = 8192
	buf := make([]byte, min(b.Len(), chunkFrames)*2)

	for i := 0; i < b.Len(); i += chunkFrames {
		end := min(i+chunkFrames, b.Len())
		chunk := b.Samples[i:end]
		out := buf[:len(chunk)*2]

		for j, s := range chunk {
			binary.LittleEndian.PutUint16(out[j*2:j*2+2], uint16(utils.Float64ToInt16(s)))
		}

		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("writing sample data: %w", err)
		}
	}

	return nil
}
