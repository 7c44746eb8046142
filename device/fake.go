// Package device is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package device

import "sync"

// Fake is an in-process Device that never touches a real audio backend.
// Tests drive its callback explicitly via Pull, simulating what the real
// backend's audio thread would do. Mirrors the teacher's pattern of
// abstracting the hardware stream behind a small interface purely so tests
// can substitute it (see e.g. paStream in the retrieval pack).
type Fake struct {
	mu sync.Mutex

	spec     Spec
	callback Callback

	paused  bool
	closed  bool
	locks   int
	pulls   int
}

// NewFake returns an open function (usable as an engine.Opener) that,
// instead of touching hardware, records the spec and callback it was given
// on a Fake that the caller can drive.
func NewFake() (func(spec Spec, cb Callback) (Device, error), *Fake) {
	f := &Fake{}
	open := func(spec Spec, cb Callback) (Device, error) {
		f.spec = spec
		f.callback = cb
		return f, nil
	}
	return open, f
}

// Pull simulates one invocation of the backend's audio thread: it locks,
// invokes the callback with a zeroed buffer of the device's configured
// size, and unlocks, then returns the filled buffer.
func (f *Fake) Pull() []byte {
	f.Lock()
	defer f.Unlock()

	f.pulls++
	out := make([]byte, f.spec.BufferFrames*BytesPerFrame)
	f.callback(out)
	return out
}

func (f *Fake) Lock() {
	f.mu.Lock()
	f.locks++
}

func (f *Fake) Unlock() {
	f.mu.Unlock()
}

func (f *Fake) Pause()  { f.paused = true }
func (f *Fake) Resume() { f.paused = false }

func (f *Fake) Close() error {
	f.closed = true
	return nil
}

// Paused, Closed, and Pulls report internal state for assertions.
func (f *Fake) Paused() bool { return f.paused }
func (f *Fake) Closed() bool { return f.closed }
func (f *Fake) Pulls() int   { return f.pulls }
