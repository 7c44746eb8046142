// Package engine is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package engine is the control plane: init/halt, lock/unlock,
// pending-to-playing promotion, the per-frame update walk, and channel
// creation (spec.md §4.5). It owns the device, the scratch buffer, and the
// two channel tables; package mixer is invoked as the device's callback and
// never imports engine, keeping the hot path free of control-plane state
// beyond what Mix is handed.
package engine

import (
	"sync/atomic"

	"github.com/loopstack/soundstage/assert"
	"github.com/loopstack/soundstage/channel"
	"github.com/loopstack/soundstage/config"
	"github.com/loopstack/soundstage/device"
	"github.com/loopstack/soundstage/errors"
	"github.com/loopstack/soundstage/logger"
	"github.com/loopstack/soundstage/mixer"
)

// Ref is an opaque, stable reference to a channel, as handed to the
// scripting/host layer (spec.md §6).
type Ref struct {
	ID channel.ID
}

// IsValid reports whether ref could ever name a real channel.
func (ref Ref) IsValid() bool { return ref.ID != channel.NoID }

// Opener opens a device backend for the given spec, wiring cb as its
// callback. device.Open is the production implementation; tests pass a fake.
type Opener func(spec device.Spec, cb device.Callback) (device.Device, error)

// Engine is the control plane described by spec.md §4.5 and §3: a device
// handle, a scratch buffer allocated once, and the pending/playing channel
// tables.
type Engine struct {
	dev     device.Device
	spec    device.Spec
	scratch []float32

	pending *channel.Table
	playing *channel.Table

	nextID atomic.Uint64

	controlThread assert.SingleThreaded
}

// New opens the audio subsystem at the format described by cfg (spec.md §6
// fixes 44100Hz/stereo/1024-frame buffers as the default; config.Default()
// reproduces exactly that), allocates the scratch buffer once, creates
// empty pending/playing tables, and unpauses the device. Returns a
// DeviceUnavailable error if the device cannot be opened.
func New(open Opener, cfg config.Spec) (*Engine, error) {
	spec := device.Spec{SampleRate: cfg.SampleRate, Channels: cfg.Channels, BufferFrames: cfg.BufferFrames}

	e := &Engine{
		spec:    spec,
		scratch: make([]float32, spec.BufferFrames*spec.Channels),
		pending: channel.NewTable(),
		playing: channel.NewTable(),
	}
	e.nextID.Store(1)

	dev, err := open(spec, e.mix)
	if err != nil {
		return nil, errors.Errorf(errors.DeviceUnavailable, err)
	}
	e.dev = dev
	e.dev.Resume()

	logger.Logf(logger.Allow, "engine", "initialised at %dHz, %d frame buffer", spec.SampleRate, spec.BufferFrames)
	return e, nil
}

// mix is handed to the device as its Callback. It runs on the device
// thread, under the lock the device already holds for the duration of the
// callback, and delegates to the allocation-free package mixer.
func (e *Engine) mix(out []byte) {
	mixer.Mix(e.playing, e.scratch, out)
}

// ChannelInit allocates a new channel id and stores a record for it in the
// pending table, in the Initialize state. It does not lock the device.
func (e *Engine) ChannelInit(mix channel.MixFunc, update channel.UpdateFunc, finish channel.FinishFunc, userdata any) channel.ID {
	id := channel.ID(e.nextID.Add(1) - 1)
	e.pending.Insert(channel.NewRecord(id, mix, update, finish, userdata))
	return id
}

// Get looks up a channel by reference, checking playing before pending.
func (e *Engine) Get(ref Ref) (*channel.Record, bool) {
	if !ref.IsValid() {
		return nil, false
	}
	if r, ok := e.playing.Get(ref.ID); ok {
		return r, true
	}
	return e.pending.Get(ref.ID)
}

// Lock and Unlock delegate to the device's callback-exclusion primitive.
func (e *Engine) Lock()   { e.dev.Lock() }
func (e *Engine) Unlock() { e.dev.Unlock() }

// PlayingCount and PendingCount report the current depth of each table, for
// an observer (package monitor) sampling engine health. Neither locks the
// device: a stale-by-one-buffer count is fine for a gauge.
func (e *Engine) PlayingCount() int { return e.playing.Len() }
func (e *Engine) PendingCount() int { return e.pending.Len() }

// Update runs the per-frame control-plane tick (spec.md §4.5): under the
// device lock, every pending channel is merged into playing, every playing
// channel's Update is invoked, and channels that reach Stopped are
// finalised and removed. ctx is threaded through to Update/Finish verbatim.
//
// Update is documented as single-threaded; a cheap check, run on every call,
// logs a warning (and otherwise carries on) when a call arrives from a
// different goroutine than the first one.
func (e *Engine) Update(ctx any) {
	if !e.controlThread.Check() {
		logger.Log(logger.Allow, "engine", "update called from more than one goroutine")
	}

	e.Lock()
	e.playing.AddAll(e.pending)

	e.playing.Each(func(r *channel.Record) bool {
		if r.Update != nil {
			r.Update(ctx, r)
		}
		if r.State == channel.Stopped {
			if r.Finish != nil {
				r.Finish(ctx, r)
			}
			return false
		}
		return true
	})
	e.Unlock()

	e.pending.Free()
}

// Stop requests that the channel named by ref begin stopping. Idempotent;
// a no-op if ref does not name a live channel.
func (e *Engine) Stop(ref Ref) {
	if r, ok := e.Get(ref); ok {
		r.Stop()
	}
}

// StopAll requests that every channel, pending or playing, begin stopping.
func (e *Engine) StopAll() {
	e.playing.Each(func(r *channel.Record) bool {
		r.Stop()
		return true
	})
	e.pending.Each(func(r *channel.Record) bool {
		r.Stop()
		return true
	})
}

// Pause and Resume suspend or resume device callbacks.
func (e *Engine) Pause()  { e.dev.Pause() }
func (e *Engine) Resume() { e.dev.Resume() }

// Halt pauses and closes the device. Device errors during Halt are
// swallowed: the device is already being torn down (spec.md §7).
func (e *Engine) Halt() {
	e.dev.Pause()
	if err := e.dev.Close(); err != nil {
		logger.Logf(logger.Allow, "engine", "ignoring device close error during halt: %v", err)
	}
}

// Free halts the engine, releases the scratch buffer, and frees both
// tables. Any channel that never reached Finish leaks its Userdata — that
// is the caller's responsibility (spec.md §4.5).
func (e *Engine) Free() {
	e.Halt()
	e.scratch = nil
	e.playing.Free()
	e.pending.Free()
}
