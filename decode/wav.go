// Package decode is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package decode

import (
	"os"

	"github.com/go-audio/wav"

	"github.com/loopstack/soundstage/errors"
)

// LoadWAV decodes a WAV file at path into a Buffer, normalising samples to
// [-1, 1] regardless of the file's source bit depth.
func LoadWAV(path string) (*Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Errorf(errors.DecodeError, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.Errorf(errors.UnsupportedAudio, path)
	}

	ib, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Errorf(errors.DecodeError, err)
	}

	// ib.Data holds raw integer PCM magnitudes, not normalised floats:
	// AsFloatBuffer() only widens the type to float64, it doesn't scale by
	// the source bit depth. Divide by the full-scale value for
	// SourceBitDepth ourselves so every sample lands in [-1, 1] regardless
	// of whether the file is 8, 16, 24, or 32 bit.
	bitDepth := ib.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}
	fullScale := float32(int64(1) << uint(bitDepth-1))

	samples := make([]float32, len(ib.Data))
	for i, v := range ib.Data {
		samples[i] = float32(v) / fullScale
	}

	return &Buffer{
		SampleRate: ib.Format.SampleRate,
		Channels:   ib.Format.NumChannels,
		Samples:    samples,
	}, nil
}
