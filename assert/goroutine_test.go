// Package assert is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package assert_test

import (
	"sync"
	"testing"

	"github.com/loopstack/soundstage/assert"
)

func TestSingleThreadedSameGoroutine(t *testing.T) {
	var st assert.SingleThreaded
	for i := 0; i < 10; i++ {
		if !st.Check() {
			t.Fatalf("expected Check to succeed on the same goroutine")
		}
	}
}

func TestSingleThreadedDifferentGoroutine(t *testing.T) {
	var st assert.SingleThreaded
	if !st.Check() {
		t.Fatalf("expected first Check to succeed")
	}

	var wg sync.WaitGroup
	var violated bool
	wg.Add(1)
	go func() {
		defer wg.Done()
		violated = !st.Check()
	}()
	wg.Wait()

	if !violated {
		t.Fatalf("expected Check to detect a different goroutine")
	}
}
