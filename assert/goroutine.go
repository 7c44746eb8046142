// Package assert is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package assert holds small debugging aids that have no place in production
// control flow but are useful for catching concurrency-model violations
// during development and testing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the calling goroutine. The result
// is (a) different between goroutines and (b) consistent for a given
// goroutine's lifetime. It should only ever be used for debugging or testing
// purposes — never as part of an actual concurrency primitive.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleThreaded tracks a goroutine id on first use and reports whether
// subsequent calls occur on the same goroutine. It is used to verify that
// control-plane operations documented as single-threaded are actually never
// called concurrently from different goroutines.
type SingleThreaded struct {
	id   uint64
	seen bool
}

// Check records the calling goroutine on first use and returns false if a
// later call happens on a different goroutine.
func (s *SingleThreaded) Check() bool {
	id := GetGoRoutineID()
	if !s.seen {
		s.id = id
		s.seen = true
		return true
	}
	return s.id == id
}
