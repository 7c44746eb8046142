// Package decode is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package decode

import (
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"

	"github.com/loopstack/soundstage/errors"
)

// LoadMP3 decodes an MP3 file at path into a Buffer. go-mp3 always produces
// signed 16-bit little-endian stereo PCM, which this function normalises to
// the engine's float32 Buffer shape.
func LoadMP3(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf(errors.DecodeError, err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, errors.Errorf(errors.DecodeError, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, errors.Errorf(errors.DecodeError, err)
	}

	samples := make([]float32, len(raw)/2)
	for i := range samples {
		lo := int16(raw[i*2])
		hi := int16(raw[i*2+1])
		v := lo | hi<<8
		samples[i] = float32(v) / 32768.0
	}

	return &Buffer{
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Samples:    samples,
	}, nil
}
