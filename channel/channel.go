// Package channel is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package channel defines the generic voice record that the mixer, the
// engine, and concrete sample sources (package sample) all operate on. A
// Record carries no knowledge of how its samples are produced: that
// polymorphism is expressed as three callbacks (Mix, Update, Finish) plus an
// opaque Userdata pointer, the way a language without subclassing expresses
// a capability record (spec.md §9).
package channel

import "sync/atomic"

// ID uniquely identifies a channel for the lifetime of an engine instance.
// Zero is reserved for "uninitialized/invalid".
type ID uint64

// NoID is the invalid/uninitialized channel id.
const NoID ID = 0

// State is a position in the channel lifecycle state machine (spec.md §4.1).
// Initialize through Stopped, then Last, advance in the order they are
// declared; Last is terminal. Virtualizing sits outside that sequence:
// package sample returns a Virtualizing channel to Playing on its next update.
type State int

const (
	Initialize State = iota
	Devirtualize
	Playing
	Stopping
	Stopped
	Virtualizing
	Last
)

func (s State) String() string {
	switch s {
	case Initialize:
		return "initialize"
	case Devirtualize:
		return "devirtualize"
	case Playing:
		return "playing"
	case Stopping:
		return "stopping"
	case Stopped:
		return "stopped"
	case Virtualizing:
		return "virtualizing"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Mixable reports whether a channel in this state contributes samples (or
// silence, for a virtualized channel) to a mixer pass (spec.md §4.1, §4.4).
func (s State) Mixable() bool {
	return s == Playing || s == Stopping || s == Virtualizing
}

// MixFunc writes exactly frameCount interleaved stereo frames into scratch.
// It runs on the device thread, under the device lock; it must not allocate
// or block.
type MixFunc func(r *Record, scratch []float32, frameCount int)

// UpdateFunc runs once per engine.Update, under the device lock, and may
// advance r.State. ctx is the opaque value passed to engine.Update, standing
// in for whatever state a scripting VM needs threaded through (spec.md §4.3).
type UpdateFunc func(ctx any, r *Record)

// FinishFunc runs once, after a channel reaches Stopped, to release
// resources owned by Userdata. It runs on the control thread.
type FinishFunc func(ctx any, r *Record)

// Record is a single voice: its lifecycle state plus the callback triple that
// gives it concrete behaviour. Userdata is owned by whoever created the
// record and is only ever freed by Finish.
type Record struct {
	ID    ID
	State State

	enabled       atomic.Bool
	stopRequested atomic.Bool

	Mix    MixFunc
	Update UpdateFunc
	Finish FinishFunc

	Userdata any
}

// NewRecord returns a Record in the Initialize state, enabled, with the
// given callback triple and userdata.
func NewRecord(id ID, mix MixFunc, update UpdateFunc, finish FinishFunc, userdata any) *Record {
	r := &Record{
		ID:       id,
		State:    Initialize,
		Mix:      mix,
		Update:   update,
		Finish:   finish,
		Userdata: userdata,
	}
	r.enabled.Store(true)
	return r
}

// Enabled reports whether the mixer should draw samples from this channel.
// Safe to read from the device thread without the device lock (spec.md §9):
// a stale read just defers the effect by one buffer.
func (r *Record) Enabled() bool { return r.enabled.Load() }

// SetEnabled toggles whether the mixer draws samples from this channel. Safe
// to call from the control thread without the device lock.
func (r *Record) SetEnabled(v bool) { r.enabled.Store(v) }

// StopRequested reports whether Stop has been called on this channel. Once
// true it is never observed false again (spec.md §3 invariants).
func (r *Record) StopRequested() bool { return r.stopRequested.Load() }

// Stop requests that the channel begin stopping. Idempotent; safe to call
// from the control thread without the device lock.
func (r *Record) Stop() { r.stopRequested.Store(true) }
