// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bufio"
	"fmt"
	"os"

	"github.com/odedk/noisemix/audio"
)

// DecodeFile decodes the WAV file at path into a mono buffer.
func DecodeFile(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	buf, err := Decode(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return buf, nil
}

// EncodeFile writes b to path as a mono 16-bit PCM WAV file.
func EncodeFile(path string, b *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if err := Encode(w, b); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}

	return nil
}
