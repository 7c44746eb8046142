// Package errors is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package errors

import (
	"fmt"
	"strings"
)

// Values holds the arguments a curated error was formatted with.
type Values []interface{}

// curated is a predefined message plus the values it was formatted with. It
// stays structured internally so callers further up a call stack can wrap
// it again without caring what the message underneath actually says.
type curated struct {
	message string
	values  Values
}

// Errorf builds a curated error from message (expected to be one of the
// constants in messages.go) and its format values.
func Errorf(message string, values ...interface{}) error {
	return curated{message: message, values: values}
}

// Error renders the full causal chain as a single colon-separated string,
// collapsing any run of identical adjacent segments down to one. Wrapping
// the same curated error twice at different call-stack depths therefore
// never produces a repeated phrase in the rendered message.
//
// Implements the go language error interface.
func (er curated) Error() string {
	return collapseRepeats(strings.Split(fmt.Sprintf(er.message, er.values...), ": "))
}

// collapseRepeats joins parts with ": ", skipping any part equal to the one
// immediately before it.
func collapseRepeats(parts []string) string {
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		if i > 0 && p == parts[i-1] {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ": ")
}

// Head returns the format message a curated error was built from, or the
// rendered message of err if it isn't one of ours. Useful in a switch over
// known failure modes.
func Head(err error) string {
	if er, ok := asCurated(err); ok {
		return er.message
	}
	return err.Error()
}

// IsAny reports whether err was built by this package's Errorf.
func IsAny(err error) bool {
	_, ok := asCurated(err)
	return ok
}

// Is reports whether err's message constant equals head.
func Is(err error, head string) bool {
	er, ok := asCurated(err)
	return ok && er.message == head
}

// Has walks err and every curated value it wraps, reporting whether any of
// them has message msg.
func Has(err error, msg string) bool {
	pending := []error{err}
	for len(pending) > 0 {
		next := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		er, ok := asCurated(next)
		if !ok {
			continue
		}
		if er.message == msg {
			return true
		}
		for _, v := range er.values {
			if wrapped, ok := v.(error); ok {
				pending = append(pending, wrapped)
			}
		}
	}
	return false
}

func asCurated(err error) (curated, bool) {
	if err == nil {
		return curated{}, false
	}
	er, ok := err.(curated)
	return er, ok
}
