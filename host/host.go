// Package host is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package host is the scripting/host bindings collaborator (spec.md §6): the
// concrete upstream surface a caller (an interactive REPL, a game's script
// VM) drives the engine through. It owns a name->decode.Buffer registry on
// top of an *engine.Engine, so callers refer to sounds by name rather than
// juggling decode.Buffer values themselves.
package host

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/loopstack/soundstage/channel"
	"github.com/loopstack/soundstage/config"
	"github.com/loopstack/soundstage/decode"
	"github.com/loopstack/soundstage/engine"
	"github.com/loopstack/soundstage/errors"
	"github.com/loopstack/soundstage/logger"
	"github.com/loopstack/soundstage/sample"
)

// Host wraps an engine and a registry of loaded sounds. All methods are
// safe to call from a single caller goroutine; Host does not itself
// introduce any concurrency beyond what *engine.Engine already provides.
type Host struct {
	eng *engine.Engine
	cfg config.Spec

	mu     sync.Mutex
	sounds map[string]*decode.Buffer
}

// New wraps eng in a Host with an empty sound registry. cfg.DecoderSearchPaths
// is consulted by Load whenever a bare filename (no directory component) is
// given instead of a full path.
func New(eng *engine.Engine, cfg config.Spec) *Host {
	return &Host{
		eng:    eng,
		cfg:    cfg,
		sounds: make(map[string]*decode.Buffer),
	}
}

// Load decodes the file found at path into a sound registered under name,
// replacing any previous sound registered under that name. If path has no
// directory component and does not exist relative to the working
// directory, each of cfg.DecoderSearchPaths is tried in order before giving
// up.
func (h *Host) Load(name, path string) error {
	resolved := h.resolve(path)

	buf, err := decode.Load(resolved)
	if err != nil {
		return errors.Errorf(errors.DecodeError, err)
	}

	h.mu.Lock()
	h.sounds[name] = buf
	h.mu.Unlock()

	logger.Logf(logger.Allow, "host", "loaded %q from %s (%d frames)", name, resolved, buf.FrameCount())
	return nil
}

// resolve returns path unchanged unless it names a bare filename that isn't
// found as-is, in which case it returns the first match across
// cfg.DecoderSearchPaths (or path itself if none match, so the eventual
// decode error names the path the caller actually gave).
func (h *Host) resolve(path string) string {
	if filepath.Dir(path) != "." {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range h.cfg.DecoderSearchPaths {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

// Unload removes name from the registry. It does not stop any channel
// already playing from that sound; a playing sample.Channel holds its own
// reference to the decode.Buffer it was created with.
func (h *Host) Unload(name string) {
	h.mu.Lock()
	delete(h.sounds, name)
	h.mu.Unlock()
}

// UnloadAll empties the sound registry.
func (h *Host) UnloadAll() {
	h.mu.Lock()
	h.sounds = make(map[string]*decode.Buffer)
	h.mu.Unlock()
}

// Play starts name looping or not at the default volume (0.5, spec.md §6)
// and centre pan. It is shorthand for PlayVolumePan(name, 0.5, 0.0, loop).
func (h *Host) Play(name string, loop bool) (engine.Ref, error) {
	return h.PlayVolumePan(name, 0.5, 0.0, loop)
}

// PlayVolume starts name at the given volume and centre pan.
func (h *Host) PlayVolume(name string, volume float32, loop bool) (engine.Ref, error) {
	return h.PlayVolumePan(name, volume, 0.0, loop)
}

// PlayVolumePan starts name at the given volume and pan. Returns
// UnknownSound if name was never Loaded (or was Unloaded).
func (h *Host) PlayVolumePan(name string, volume, pan float32, loop bool) (engine.Ref, error) {
	h.mu.Lock()
	buf, ok := h.sounds[name]
	h.mu.Unlock()
	if !ok {
		return engine.Ref{}, errors.Errorf(errors.UnknownSound, name)
	}

	id := sample.New(h.eng, name, buf, volume, pan, loop)
	return engine.Ref{ID: id}, nil
}

// StopChannel requests that ref begin stopping. Returns InvalidChannelRef
// if ref does not (or no longer) name a live channel.
func (h *Host) StopChannel(ref engine.Ref) error {
	if _, ok := h.eng.Get(ref); !ok {
		return errors.Errorf(errors.InvalidChannelRef, ref.ID)
	}
	h.eng.Stop(ref)
	return nil
}

// StopAllChannels requests every live channel begin stopping.
func (h *Host) StopAllChannels() {
	h.eng.StopAll()
}

// SetChannelVolume updates the volume of a live sample channel. Returns
// InvalidChannelRef if ref does not name a live sample.Channel.
func (h *Host) SetChannelVolume(ref engine.Ref, volume float32) error {
	ch, err := h.sampleChannel(ref)
	if err != nil {
		return err
	}
	ch.SetVolume(volume)
	return nil
}

// SetChannelPan updates the pan of a live sample channel.
func (h *Host) SetChannelPan(ref engine.Ref, pan float32) error {
	ch, err := h.sampleChannel(ref)
	if err != nil {
		return err
	}
	ch.SetPan(pan)
	return nil
}

// IsPlaying reports whether ref names a live channel: present in the pending
// or playing table and not yet Stopped or Last. A channel created by Play
// reports true straight away, before its first Update.
func (h *Host) IsPlaying(ref engine.Ref) bool {
	r, ok := h.eng.Get(ref)
	if !ok {
		return false
	}
	return r.State != channel.Stopped && r.State != channel.Last
}

// Update drives the engine's per-frame control-plane tick. ctx is passed
// through verbatim to every channel's Update/Finish.
func (h *Host) Update(ctx any) {
	h.eng.Update(ctx)
}

func (h *Host) sampleChannel(ref engine.Ref) (*sample.Channel, error) {
	r, ok := h.eng.Get(ref)
	if !ok {
		return nil, errors.Errorf(errors.InvalidChannelRef, ref.ID)
	}
	ch, ok := r.Userdata.(*sample.Channel)
	if !ok {
		return nil, errors.Errorf(errors.InvalidChannelRef, ref.ID)
	}
	return ch, nil
}
