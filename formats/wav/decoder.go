package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/utils"
)

const pcmFormatCode = 1

// Decode parses a RIFF/WAVE stream into a mono buffer.
//
// The fmt chunk must be the first chunk after the WAVE tag; any chunk
// between fmt and data is skipped by its declared size. Multi-channel
// frames are averaged down to a single sample.
func Decode(r io.Reader) (*audio.Buffer, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, fmt.Errorf("reading RIFF header: %w", err)
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, ErrNotWavFile
	}

	id, size, err := readChunkHeader(r)
	if err != nil {
		return nil, fmt.Errorf("reading fmt chunk: %w", err)
	}
	if id != "fmt " || size < 16 {
		return nil, ErrUnsupportedWavLayout
	}

	var fmtChunk [16]byte
	if _, err := io.ReadFull(r, fmtChunk[:]); err != nil {
		return nil, fmt.Errorf("reading fmt chunk: %w", err)
	}

	audioFormat := binary.LittleEndian.Uint16(fmtChunk[0:2])
	channels := int(binary.LittleEndian.Uint16(fmtChunk[2:4]))
	sampleRate := int(binary.LittleEndian.Uint32(fmtChunk[4:8]))
	// Byte rate and block alignment are informational on read.
	bitsPerSample := int(binary.LittleEndian.Uint16(fmtChunk[14:16]))

	if audioFormat != pcmFormatCode {
		return nil, ErrNotPCMFormat
	}
	if bitsPerSample != 16 {
		return nil, ErrOnlyPCM16bitSupported
	}
	if channels < 1 {
		return nil, ErrNoChannels
	}

	// Extension bytes beyond the 16 canonical fmt fields are skipped and
	// never regenerated on write.
	if size > 16 {
		if err := skipBytes(r, int64(size-16)); err != nil {
			return nil, fmt.Errorf("skipping fmt extension: %w", err)
		}
	}

	dataSize, err := findDataChunk(r)
	if err != nil {
		return nil, err
	}

	frameBytes := channels * 2
	frames := int(dataSize) / frameBytes

	data := make([]byte, frames*frameBytes)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("reading sample data: %w", err)
	}

	samples := make([]float64, frames)
	for f := 0; f < frames; f++ {
		base := f * frameBytes
		var sum float64
		for c := 0; c < channels; c++ {
			v := int16(binary.LittleEndian.Uint16(data[base+2*c : base+2*c+2]))
			sum += utils.Int16ToFloat64(v)
		}
		samples[f] = sum / float64(channels)
	}

	return audio.FromSamples(sampleRate, samples), nil
}

func readChunkHeader(r io.Reader) (string, uint32, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return "", 0, err
	}
	return string(hdr[0:4]), binary.LittleEndian.Uint32(hdr[4:8]), nil
}

// findDataChunk scans chunks by their declared size until data appears.
// Exhausting the stream first means the file carries no audio payload.
func findDataChunk(r io.Reader) (uint32, error) {
	for {
		id, size, err := readChunkHeader(r)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return 0, ErrMissingDataChunk
		}
		if err != nil {
			return 0, fmt.Errorf("reading chunk header: %w", err)
		}

		if id == "data" {
			return size, nil
		}

		if err := skipBytes(r, int64(size)); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrMissingDataChunk
			}
			return 0, fmt.Errorf("skipping %q chunk: %w", id, err)
		}
	}
}

func skipBytes(r io.Reader, n int64) error {
	written, err := io.CopyN(io.Discard, r, n)
	if err == io.EOF && written < n {
		return io.ErrUnexpectedEOF
	}
	return err
}
