// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/formats/wav"
)

// Example_roundTrip encodes a buffer to an in-memory WAV file and
// decodes it back.
func Example_roundTrip() {
	buf := audio.FromSamples(8000, []float64{0, 0.5, -0.5})

	data := new(bytes.Buffer)
	if err := wav.Encode(data, buf); err != nil {
		fmt.Printf("encode error: %v\n", err)
		return
	}

	decoded, err := wav.Decode(bytes.NewReader(data.Bytes()))
	if err != nil {
		fmt.Printf("decode error: %v\n", err)
		return
	}

	fmt.Printf("File size: %d bytes\n", data.Len())
	fmt.Printf("Sample rate: %d Hz\n", decoded.Rate)
	fmt.Printf("Samples: %d\n", decoded.Len())
	// Output:
	// File size: 50 bytes
	// Sample rate: 8000 Hz
	// Samples: 3
}
