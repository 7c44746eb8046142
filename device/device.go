// Package device is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package device is the engine's downstream collaborator (spec.md §6): a
// backend that invites the engine to fill a byte buffer on a separate
// thread, and that can pause or lock that callback. The engine is written
// against the Device interface only; Open returns the concrete SDL2-backed
// implementation.
package device

// Spec describes the fixed output format the engine requires: 44100Hz,
// float32 little-endian, stereo, delivered BufferFrames frames at a time.
type Spec struct {
	SampleRate   int
	Channels     int
	BufferFrames int
}

// BytesPerFrame is fixed by the output format (2 channels x 4-byte float32).
const BytesPerFrame = 8

// Callback is invoked by the backend on its own thread whenever it needs
// more samples. out is exactly BufferFrames*BytesPerFrame bytes long.
type Callback func(out []byte)

// Device is the downstream interface the engine requires of an audio
// backend.
type Device interface {
	// Lock excludes the backend's callback goroutine for the duration of
	// the critical section that follows, until Unlock is called.
	Lock()
	Unlock()

	// Pause/Resume suspend or resume invocation of the callback.
	Pause()
	Resume()

	// Close releases the device. Safe to call more than once.
	Close() error
}
