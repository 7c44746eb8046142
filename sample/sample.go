// Package sample is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package sample is the concrete channel.Record implementation for a
// decoded sample buffer (spec.md §4.3): it knows how to draw frames from a
// decode.Buffer with volume, pan, loop, and position, and supplies the
// mix/update/finish triple that makes a generic channel.Record a playable
// voice.
package sample

import "github.com/loopstack/soundstage/channel"

// rampAlpha is the per-frame smoothing coefficient actualVolume chases
// current.Volume with (spec.md §4.3, testable property #8): small enough
// that a step change in volume does not click.
const rampAlpha = 1.0 / 64.0

// Props are the control-plane-writable parameters of a Channel. Every
// sample.Channel holds two Props snapshots: Pending (written by the control
// plane) and current (read by the mixer, and replaced from Pending only by
// update, under the device lock), matching spec.md §3's current/new double
// buffer.
type Props struct {
	Volume float32 // [0, 1]
	Pan    float32 // [-1, +1]
	Loop   bool
}

// Buffer is the borrowed decoded sample data a Channel plays from. It is
// declared as an interface so package sample does not need to import
// package decode: *decode.Buffer satisfies it, but so could any other
// frame source (a generated tone, a streamed buffer).
type Buffer interface {
	FrameCount() int
	Frame(i int) (left, right float32)
}

// Channel is the sample-source adapter: the Userdata behind a
// channel.Record created by New.
type Channel struct {
	SoundID string
	Buffer  Buffer

	// Pending is written by the control plane (SetVolume, SetPan, SetLoop)
	// and promoted into current by update, which runs under the device
	// lock and so never races the mixer's read of current.
	Pending Props
	current Props

	position     int
	actualVolume float32
	fading       bool
	fade         float32 // 1.0 at the start of a fade-out, 0 when complete
}

// engineHandle is the sliver of *engine.Engine that New needs. Declared
// locally so package sample need not import package engine.
type engineHandle interface {
	ChannelInit(mix channel.MixFunc, update channel.UpdateFunc, finish channel.FinishFunc, userdata any) channel.ID
}

// New creates a Channel bound to buf and registers it with eng in the
// Initialize state. volume/pan/loop seed both the pending and current
// snapshots so the first mix before any Update sees sane values.
func New(eng engineHandle, soundID string, buf Buffer, volume, pan float32, loop bool) channel.ID {
	c := &Channel{
		SoundID: soundID,
		Buffer:  buf,
		Pending: Props{Volume: volume, Pan: pan, Loop: loop},
	}
	c.current = c.Pending
	c.actualVolume = volume

	return eng.ChannelInit(c.mix, c.update, c.finish, c)
}

// SetVolume, SetPan, and SetLoop stage new values into Pending; update
// promotes them into current on the next control-plane tick. Safe to call
// from the control thread only (spec.md §5).
func (c *Channel) SetVolume(v float32) { c.Pending.Volume = v }
func (c *Channel) SetPan(p float32)    { c.Pending.Pan = p }
func (c *Channel) SetLoop(loop bool)   { c.Pending.Loop = loop }

// update runs once per control-plane tick, under the device lock. It
// promotes Pending into current, advances Initialize/Devirtualize/
// Virtualizing housekeeping states, and drives the Stopping -> Stopped
// transition once a requested stop's fade-out has completed.
func (c *Channel) update(ctx any, r *channel.Record) {
	c.current = c.Pending

	switch r.State {
	case channel.Initialize:
		r.State = channel.Devirtualize
	case channel.Devirtualize:
		r.State = channel.Playing
	case channel.Virtualizing:
		r.State = channel.Playing
	}

	if r.StopRequested() && r.State == channel.Playing {
		r.State = channel.Stopping
		c.fading = true
		c.fade = 1.0
	}

	if c.fading && c.fade <= 0 {
		r.State = channel.Stopped
	}
}

// finish runs once, when the channel reaches Stopped, before it is removed
// from the playing table. Channel itself owns no resources that need
// releasing (Buffer is borrowed, not owned) so finish only advances State
// to the terminal Last so a caller inspecting a stale *channel.Record after
// removal can tell it already ran.
func (c *Channel) finish(ctx any, r *channel.Record) {
	r.State = channel.Last
}

// mix draws frameCount frames starting at the channel's current position,
// applying volume ramp and pan law, into scratch as interleaved stereo
// float32 samples (spec.md §4.3, testable properties #6, #7, #8). It must
// not allocate: it is called on the device thread with the device lock
// already held.
func (c *Channel) mix(r *channel.Record, scratch []float32, frameCount int) {
	total := c.Buffer.FrameCount()

	for i := 0; i < frameCount; i++ {
		var left, right float32
		if c.position < total {
			left, right = c.Buffer.Frame(c.position)
			c.position++
			if c.position >= total {
				if c.current.Loop && !c.fading {
					c.position = 0
				} else {
					r.Stop()
				}
			}
		}

		c.actualVolume += (c.current.Volume - c.actualVolume) * rampAlpha

		gain := c.actualVolume
		if c.fading {
			gain *= c.fade
			c.fade -= 1.0 / float32(frameCount)
			if c.fade < 0 {
				c.fade = 0
			}
		}

		pan := c.current.Pan
		leftGain := gain * (1 - maxF32(pan, 0))
		rightGain := gain * (1 + minF32(pan, 0))

		scratch[i*2] = left * leftGain
		scratch[i*2+1] = right * rightGain
	}
}

func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
