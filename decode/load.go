// Package decode is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package decode

import (
	"path/filepath"
	"strings"

	"github.com/loopstack/soundstage/errors"
)

// Load dispatches to LoadWAV or LoadMP3 based on path's extension. It is the
// entry point package host uses so callers never need to know which codec a
// given sound file uses.
func Load(path string) (*Buffer, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return LoadWAV(path)
	case ".mp3":
		return LoadMP3(path)
	default:
		return nil, errors.Errorf(errors.UnsupportedAudio, path)
	}
}
