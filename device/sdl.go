// Package device is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package device

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/loopstack/soundstage/errors"
	"github.com/loopstack/soundstage/logger"
)

// sdlDevice is the concrete Device backed by SDL2's audio subsystem. It uses
// the pull-callback form of the SDL audio API (sdl.OpenAudioDevice with a
// Callback field), not the SDL_mixer chunk API the teacher reaches for
// elsewhere — this is the shape spec.md §6 requires: the backend invites the
// engine to fill a buffer on its own thread, guarded by Lock/Unlock.
type sdlDevice struct {
	id       sdl.AudioDeviceID
	callback Callback
}

// Open opens an SDL2 audio device matching spec and begins invoking
// callback on SDL's audio thread. The device starts unpaused.
func Open(spec Spec, callback Callback) (Device, error) {
	if err := sdl.InitSubSystem(sdl.INIT_AUDIO); err != nil {
		return nil, errors.Errorf(errors.DeviceUnavailable, err)
	}

	d := &sdlDevice{callback: callback}

	desired := sdl.AudioSpec{
		Freq:     int32(spec.SampleRate),
		Format:   sdl.AUDIO_F32SYS,
		Channels: uint8(spec.Channels),
		Samples:  uint16(spec.BufferFrames),
		Callback: sdl.AudioCallback(d.onFillBuffer),
	}

	id, err := sdl.OpenAudioDevice("", false, &desired, nil, 0)
	if err != nil {
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
		return nil, errors.Errorf(errors.DeviceUnavailable, err)
	}
	d.id = id

	logger.Logf(logger.Allow, "device", "opened sdl audio device %d at %dHz, %d channels, %d frame buffer",
		d.id, spec.SampleRate, spec.Channels, spec.BufferFrames)

	sdl.PauseAudioDevice(d.id, false)
	return d, nil
}

// onFillBuffer is the trampoline SDL invokes on its audio thread. stream
// points to length bytes of backend-owned memory to be filled.
func (d *sdlDevice) onFillBuffer(userdata unsafe.Pointer, stream *uint8, length int32) {
	buf := unsafe.Slice(stream, int(length))
	d.callback(buf)
}

func (d *sdlDevice) Lock() {
	sdl.LockAudioDevice(d.id)
}

func (d *sdlDevice) Unlock() {
	sdl.UnlockAudioDevice(d.id)
}

func (d *sdlDevice) Pause() {
	sdl.PauseAudioDevice(d.id, true)
}

func (d *sdlDevice) Resume() {
	sdl.PauseAudioDevice(d.id, false)
}

func (d *sdlDevice) Close() error {
	if d.id == 0 {
		return nil
	}
	sdl.CloseAudioDevice(d.id)
	d.id = 0
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
