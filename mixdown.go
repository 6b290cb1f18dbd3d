// SPDX-License-Identifier: EPL-2.0

package noisemix

import (
	"fmt"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/formats/wav"
)

// MixdownAtSNR mixes speech with noise at snrDB after normalizing the
// noise to the speech's sample rate and length: the noise is resampled,
// then looped (or truncated) to cover the whole speech buffer.
//
// The speech buffer sets the output's rate and length.
func MixdownAtSNR(speech, noise *audio.Buffer, snrDB float64) (*audio.Buffer, error) {
	prepared := noise.Resample(speech.Rate).LoopToLength(speech.Len())

	mixed, err := audio.MixSNR(speech, prepared, snrDB)
	if err != nil {
		return nil, fmt.Errorf("mixing buffers: %w", err)
	}

	return mixed, nil
}

// MixdownFiles decodes two WAV files, mixes them at snrDB, and writes
// the result to outPath as mono 16-bit PCM.
func MixdownFiles(speechPath, noisePath, outPath string, snrDB float64) error {
	speech, err := wav.DecodeFile(speechPath)
	if err != nil {
		return err
	}

	noise, err := wav.DecodeFile(noisePath)
	if err != nil {
		return err
	}

	mixed, err := MixdownAtSNR(speech, noise, snrDB)
	if err != nil {
		return err
	}

	return wav.EncodeFile(outPath, mixed)
}
