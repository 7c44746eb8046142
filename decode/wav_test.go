// Package decode is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package decode_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/loopstack/soundstage/decode"
	"github.com/loopstack/soundstage/sstest"
)

// writeTestWAV builds a minimal valid mono 16-bit PCM WAV file from samples
// and writes it to dir, returning its path. Built by hand (RIFF/fmt/data
// chunks) rather than pulled from a binary fixture, so the test needs
// nothing beyond the standard library to construct it.
func writeTestWAV(t *testing.T, dir string, samples []int16) string {
	t.Helper()

	const (
		sampleRate    = 8000
		channels      = 1
		bitsPerSample = 16
	)

	var data bytes.Buffer
	for _, s := range samples {
		binary.Write(&data, binary.LittleEndian, s)
	}

	byteRate := sampleRate * channels * bitsPerSample / 8
	blockAlign := channels * bitsPerSample / 8
	dataSize := data.Len()

	var f bytes.Buffer
	f.WriteString("RIFF")
	binary.Write(&f, binary.LittleEndian, uint32(36+dataSize))
	f.WriteString("WAVE")

	f.WriteString("fmt ")
	binary.Write(&f, binary.LittleEndian, uint32(16))
	binary.Write(&f, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&f, binary.LittleEndian, uint16(channels))
	binary.Write(&f, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&f, binary.LittleEndian, uint32(byteRate))
	binary.Write(&f, binary.LittleEndian, uint16(blockAlign))
	binary.Write(&f, binary.LittleEndian, uint16(bitsPerSample))

	f.WriteString("data")
	binary.Write(&f, binary.LittleEndian, uint32(dataSize))
	f.Write(data.Bytes())

	path := filepath.Join(dir, "fixture.wav")
	if err := os.WriteFile(path, f.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture wav: %v", err)
	}
	return path
}

func TestLoadWAVNormalisesSamplesToUnitRange(t *testing.T) {
	path := writeTestWAV(t, t.TempDir(), []int16{16384, -16384, 32767, -32768})

	buf, err := decode.LoadWAV(path)
	if err != nil {
		t.Fatalf("LoadWAV: %v", err)
	}

	if buf.SampleRate != 8000 || buf.Channels != 1 {
		t.Fatalf("unexpected format: %+v", buf)
	}
	if len(buf.Samples) != 4 {
		t.Fatalf("expected 4 samples, got %d", len(buf.Samples))
	}

	sstest.Approx(t, 0.5, buf.Samples[0], 1e-3)
	sstest.Approx(t, -0.5, buf.Samples[1], 1e-3)
	sstest.Approx(t, 1.0, buf.Samples[2], 1e-3)
	sstest.Approx(t, -1.0, buf.Samples[3], 1e-3)

	for _, s := range buf.Samples {
		if s > 1.0001 || s < -1.0001 {
			t.Fatalf("sample %v out of [-1, 1] range", s)
		}
	}
}
