package wav

import "errors"

var (
	ErrNotWavFile            = errors.New("not a WAV file")
	ErrUnsupportedWavLayout  = errors.New("unsupported WAV layout")
	ErrNotPCMFormat          = errors.New("audio format is not integer PCM")
	ErrOnlyPCM16bitSupported = errors.New("only PCM 16-bit supported")
	ErrNoChannels            = errors.New("channel count must be at least 1")
	ErrMissingDataChunk      = errors.New("data chunk not found")
)
