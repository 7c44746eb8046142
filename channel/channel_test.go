// Package channel is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package channel_test

import (
	"testing"

	"github.com/loopstack/soundstage/channel"
)

func TestNewRecordDefaults(t *testing.T) {
	r := channel.NewRecord(1, nil, nil, nil, "payload")
	if r.State != channel.Initialize {
		t.Fatalf("expected Initialize, got %v", r.State)
	}
	if !r.Enabled() {
		t.Fatalf("expected new record to be enabled")
	}
	if r.StopRequested() {
		t.Fatalf("expected new record to not have stop requested")
	}
	if r.Userdata != "payload" {
		t.Fatalf("expected userdata to round-trip")
	}
}

func TestStopIsMonotonic(t *testing.T) {
	r := channel.NewRecord(1, nil, nil, nil, nil)
	r.Stop()
	if !r.StopRequested() {
		t.Fatalf("expected StopRequested after Stop")
	}
	// calling Stop again must not un-set it; idempotent
	r.Stop()
	if !r.StopRequested() {
		t.Fatalf("expected StopRequested to remain true")
	}
}

func TestMixableStates(t *testing.T) {
	cases := map[channel.State]bool{
		channel.Initialize:   false,
		channel.Devirtualize: false,
		channel.Playing:      true,
		channel.Stopping:     true,
		channel.Stopped:      false,
		channel.Virtualizing: true,
		channel.Last:         false,
	}
	for state, want := range cases {
		if got := state.Mixable(); got != want {
			t.Errorf("%v.Mixable() = %v, want %v", state, got, want)
		}
	}
}
