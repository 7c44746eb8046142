// Package config is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package config_test

import (
	"reflect"
	"testing"

	"github.com/loopstack/soundstage/config"
)

func TestDefaultMatchesFixedFormat(t *testing.T) {
	s := config.Default()
	if s.SampleRate != 44100 || s.Channels != 2 || s.BufferFrames != 1024 {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestOptionsOverrideDefaults(t *testing.T) {
	s := config.New(
		config.WithSampleRate(48000),
		config.WithBufferFrames(512),
		config.WithDecoderSearchPaths("assets/sfx", "assets/music"),
	)

	if s.SampleRate != 48000 {
		t.Fatalf("expected overridden sample rate, got %d", s.SampleRate)
	}
	if s.BufferFrames != 512 {
		t.Fatalf("expected overridden buffer frames, got %d", s.BufferFrames)
	}
	want := []string{"assets/sfx", "assets/music"}
	if !reflect.DeepEqual(s.DecoderSearchPaths, want) {
		t.Fatalf("expected search paths %v, got %v", want, s.DecoderSearchPaths)
	}
}
