// Package mixer is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package mixer implements the device callback: a lock-held, allocation-free
// hot path that sums every mixable channel into the device's output buffer
// (spec.md §4.4). Mix is a pure function of the playing table at the moment
// it runs; it never touches the pending table and never allocates.
package mixer

import (
	"encoding/binary"
	"math"

	"github.com/loopstack/soundstage/channel"
)

// bytesPerFrame mirrors device.BytesPerFrame (stereo, float32 little-endian).
// Duplicated here rather than imported so that package mixer, the hot-path
// component, has no dependency on the device backend at all.
const bytesPerFrame = 8

// Mix zeroes out and then adds the contribution of every channel in playing
// whose state is mixable. scratch is caller-owned scratch space, reused in
// chunks of at most len(scratch)/2 frames; Mix never reallocates it.
//
// Hard constraints (spec.md §4.4): no allocation, no locking beyond whatever
// the caller already holds, no blocking syscalls.
func Mix(playing *channel.Table, scratch []float32, out []byte) {
	zero(out)

	totalFrames := len(out) / bytesPerFrame
	chunkCapacity := len(scratch) / 2
	if chunkCapacity == 0 {
		return
	}

	playing.Each(func(r *channel.Record) bool {
		if !r.State.Mixable() {
			return true
		}

		remaining := totalFrames
		offset := 0
		for remaining > 0 && r.Enabled() {
			chunk := remaining
			if chunk > chunkCapacity {
				chunk = chunkCapacity
			}

			scratchChunk := scratch[:chunk*2]
			for i := range scratchChunk {
				scratchChunk[i] = 0
			}

			r.Mix(r, scratchChunk, chunk)
			addInto(out, offset, scratchChunk)

			offset += chunk
			remaining -= chunk
		}
		return true
	})
}

func zero(out []byte) {
	for i := range out {
		out[i] = 0
	}
}

// addInto sums scratch (chunk frames, stereo-interleaved float32) into out
// starting at frameOffset frames in, without clipping (spec.md §4.4).
func addInto(out []byte, frameOffset int, scratch []float32) {
	base := frameOffset * 2 * 4
	for i, s := range scratch {
		idx := base + i*4
		existing := math.Float32frombits(binary.LittleEndian.Uint32(out[idx : idx+4]))
		binary.LittleEndian.PutUint32(out[idx:idx+4], math.Float32bits(existing+s))
	}
}
