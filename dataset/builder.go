// SPDX-License-Identifier: EPL-2.0

package dataset

import (
	"fmt"
	"io"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/odedk/noisemix/audio"
	"github.com/odedk/noisemix/formats/wav"
)

// DefaultSNRLevels is the mix grid used when Config.SNRLevels is empty.
var DefaultSNRLevels = []float64{0, 5, 10, 15, 20}

const defaultRate = 44100

// CleanFileName is the file the normalized clean speech is written to.
const CleanFileName = "speech_clean.wav"

// Source is a named noise signal used for one row of the grid.
type Source struct {
	Name  string
	Noise *audio.Buffer
}

// Config controls how a Builder normalizes and mixes.
type Config struct {
	// Rate is the sample rate of every output file. Defaults to 44100.
	Rate int
	// MaxDuration caps the speech length in seconds. Zero means no cap.
	MaxDuration float64
	// SNRLevels is the set of mix levels in dB. Defaults to
	// DefaultSNRLevels.
	SNRLevels []float64
	// Logger receives progress output. Defaults to a silent logger.
	Logger *logrus.Logger
}

// Builder writes a grid of noisy-speech WAV files.
type Builder struct {
	rate      int
	maxDur    float64
	snrLevels []float64
	log       *logrus.Logger
}

func NewBuilder(cfg Config) *Builder {
	b := &Builder{
		rate:      cfg.Rate,
		maxDur:    cfg.MaxDuration,
		snrLevels: cfg.SNRLevels,
		log:       cfg.Logger,
	}
	if b.rate <= 0 {
		b.rate = defaultRate
	}
	if len(b.snrLevels) == 0 {
		b.snrLevels = DefaultSNRLevels
	}
	if b.log == nil {
		b.log = logrus.New()
		b.log.SetOutput(io.Discard)
	}
	return b
}

// Build normalizes speech, reshapes every noise source to match it, and
// writes the clean file plus one mix per source and SNR level into dir.
// It returns the written paths in deterministic order: the clean file,
// then each source's mixes in SNR order.
//
// Sources are processed concurrently; the first failure is reported.
func (b *Builder) Build(dir string, speech *audio.Buffer, sources []Source) ([]string, error) {
	speech = speech.Resample(b.rate)
	if b.maxDur > 0 {
		maxSamples := int(b.maxDur * float64(b.rate))
		if speech.Len() > maxSamples {
			speech = speech.TrimOrPad(maxSamples)
		}
	}

	b.log.WithFields(logrus.Fields{
		"rate":     b.rate,
		"samples":  speech.Len(),
		"sources":  len(sources),
		"snr_grid": b.snrLevels,
	}).Info("building dataset")

	cleanPath := filepath.Join(dir, CleanFileName)
	if err := wav.EncodeFile(cleanPath, speech); err != nil {
		return nil, fmt.Errorf("writing clean speech: %w", err)
	}
	paths := []string{cleanPath}

	// One worker per noise source; workers share nothing but the
	// read-only speech buffer.
	var wg sync.WaitGroup
	errs := make([]error, len(sources))

	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = b.mixSource(dir, speech, src)
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("noise source %q: %w", sources[i].Name, err)
		}
	}

	for _, src := range sources {
		for _, snr := range b.snrLevels {
			paths = append(paths, b.mixPath(dir, src.Name, snr))
		}
	}
	return paths, nil
}

func (b *Builder) mixSource(dir string, speech *audio.Buffer, src Source) error {
	noise := src.Noise.Resample(b.rate).LoopToLength(speech.Len())

	for _, snr := range b.snrLevels {
		mixed, err := audio.MixSNR(speech, noise, snr)
		if err != nil {
			return fmt.Errorf("mixing at %g dB: %w", snr, err)
		}

		path := b.mixPath(dir, src.Name, snr)
		if err := wav.EncodeFile(path, mixed); err != nil {
			return err
		}

		b.log.WithFields(logrus.Fields{
			"noise": src.Name,
			"snr":   snr,
			"file":  filepath.Base(path),
		}).Info("wrote mixed sample")
	}

	return nil
}

func (b *Builder) mixPath(dir, name string, snr float64) string {
	return filepath.Join(dir, fmt.Sprintf("mixed_%s_snr%gdb.wav", name, snr))
}
