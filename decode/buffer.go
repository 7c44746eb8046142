// Package decode is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package decode is the "already decoded" collaborator spec.md §1 describes:
// the engine core never parses a container format, it only ever consumes a
// decode.Buffer of known sample rate, channel count, and frame count. This
// package supplies two concrete producers of that buffer — WAV and MP3 — so
// that sample.Channel has something real to read from in tests and in the
// demo host, without the engine itself depending on either codec.
package decode

// Buffer is a fully decoded, interleaved PCM sample buffer at a known sample
// rate and channel count. Values are normalised to [-1, 1].
type Buffer struct {
	SampleRate int
	Channels   int
	Samples    []float32 // interleaved, Channels samples per frame
}

// FrameCount returns the number of frames (one sample per channel) in the
// buffer.
func (b *Buffer) FrameCount() int {
	if b.Channels == 0 {
		return 0
	}
	return len(b.Samples) / b.Channels
}

// Frame returns the left/right sample pair for frame i. A mono buffer
// reports the same value for both channels.
func (b *Buffer) Frame(i int) (left, right float32) {
	if b.Channels == 1 {
		s := b.Samples[i]
		return s, s
	}
	return b.Samples[i*2], b.Samples[i*2+1]
}
