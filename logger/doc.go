// Package logger is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package logger provides a small central ring-buffer logger. Entries are
// gated by a permission value so that verbose subsystems can be silenced
// without littering call sites with conditionals:
//
//	logger.Log(logger.Allow, "device", "opened at 44100Hz")
//
// The mixer callback must never call into this package: Log/Logf allocate
// (they format a string) and the central logger takes a mutex, both of which
// are forbidden on the hot path (spec.md §4.4).
package logger
