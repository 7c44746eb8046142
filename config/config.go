// Package config is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package config is the engine's construction-time configuration surface.
// spec.md has no persisted state (no Non-goal is more explicit), so unlike
// the teacher's prefs package this never touches disk: it is a single
// immutable Spec built with functional options, scoped to exactly what an
// audio engine needs fixed before its first device.Open.
package config

// Spec is the immutable configuration an Engine is constructed from.
type Spec struct {
	SampleRate   int
	Channels     int
	BufferFrames int

	// DecoderSearchPaths is consulted by package host when a bare sound
	// name (no directory component) is passed to Load.
	DecoderSearchPaths []string
}

// Option mutates a Spec under construction.
type Option func(*Spec)

// Default matches the fixed output format spec.md §6 requires: 44100Hz
// stereo, 1024-frame buffers.
func Default() Spec {
	return New()
}

// New builds a Spec starting from the spec.md §6 defaults, applying opts in
// order.
func New(opts ...Option) Spec {
	s := Spec{
		SampleRate:   44100,
		Channels:     2,
		BufferFrames: 1024,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithSampleRate overrides the default sample rate.
func WithSampleRate(hz int) Option {
	return func(s *Spec) { s.SampleRate = hz }
}

// WithBufferFrames overrides the default callback buffer size.
func WithBufferFrames(frames int) Option {
	return func(s *Spec) { s.BufferFrames = frames }
}

// WithDecoderSearchPaths sets the directories package host searches for a
// sound file named without a path.
func WithDecoderSearchPaths(paths ...string) Option {
	return func(s *Spec) { s.DecoderSearchPaths = paths }
}
