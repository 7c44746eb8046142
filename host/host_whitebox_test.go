// Package host is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package host

import (
	"testing"

	"github.com/loopstack/soundstage/config"
	"github.com/loopstack/soundstage/decode"
	"github.com/loopstack/soundstage/device"
	"github.com/loopstack/soundstage/engine"
)

func newWhiteboxHost(t *testing.T) *Host {
	t.Helper()
	open, _ := device.NewFake()
	eng, err := engine.New(open, config.Default())
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	h := New(eng, config.Default())
	h.sounds["tone"] = &decode.Buffer{SampleRate: 44100, Channels: 2, Samples: make([]float32, 4096)}
	return h
}

func TestPlayRegisteredSoundSucceeds(t *testing.T) {
	h := newWhiteboxHost(t)

	ref, err := h.Play("tone", false)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if !ref.IsValid() {
		t.Fatalf("expected a valid ref from Play")
	}
	if !h.IsPlaying(ref) {
		t.Fatalf("expected a freshly created channel to report IsPlaying")
	}
}

func TestPlayDefaultsToHalfVolumeAndCentrePan(t *testing.T) {
	h := newWhiteboxHost(t)

	ref, err := h.Play("tone", false)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	ch, err := h.sampleChannel(ref)
	if err != nil {
		t.Fatalf("sampleChannel: %v", err)
	}
	if ch.Pending.Volume != 0.5 {
		t.Fatalf("expected bare Play to default to volume 0.5, got %v", ch.Pending.Volume)
	}
	if ch.Pending.Pan != 0.0 {
		t.Fatalf("expected bare Play to default to centre pan, got %v", ch.Pending.Pan)
	}
}

func TestSetChannelVolumeAndPan(t *testing.T) {
	h := newWhiteboxHost(t)

	ref, err := h.PlayVolumePan("tone", 0.5, 0.0, false)
	if err != nil {
		t.Fatalf("PlayVolumePan: %v", err)
	}

	if err := h.SetChannelVolume(ref, 0.8); err != nil {
		t.Fatalf("SetChannelVolume: %v", err)
	}
	if err := h.SetChannelPan(ref, -1.0); err != nil {
		t.Fatalf("SetChannelPan: %v", err)
	}

	ch, err := h.sampleChannel(ref)
	if err != nil {
		t.Fatalf("sampleChannel: %v", err)
	}
	if ch.Pending.Volume != 0.8 || ch.Pending.Pan != -1.0 {
		t.Fatalf("expected pending volume/pan to be staged, got %+v", ch.Pending)
	}
}

func TestStopChannelThenStopAll(t *testing.T) {
	h := newWhiteboxHost(t)

	ref, err := h.Play("tone", true)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	if err := h.StopChannel(ref); err != nil {
		t.Fatalf("StopChannel: %v", err)
	}

	r, ok := h.eng.Get(ref)
	if !ok || !r.StopRequested() {
		t.Fatalf("expected StopChannel to request a stop on the live channel")
	}

	h.StopAllChannels()
}

func TestUnloadRemovesSound(t *testing.T) {
	h := newWhiteboxHost(t)
	h.Unload("tone")

	if _, err := h.Play("tone", false); err == nil {
		t.Fatalf("expected Play to fail after Unload")
	}
}
