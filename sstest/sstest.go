// Package sstest is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package sstest holds small float-tolerant test assertions, in the spirit
// of the teacher's own test package (test.ExpectApproximate): audio samples
// are floating point and rarely compare exactly equal across a ramp or a
// pan law, so tests need a tolerance-aware Approx rather than reflect.DeepEqual.
package sstest

import (
	"math"
	"testing"
)

// Approx fails the test unless got is within tolerance of want.
func Approx(t *testing.T, want, got float32, tolerance float32) {
	t.Helper()
	if math.Abs(float64(want-got)) > float64(tolerance) {
		t.Errorf("expected %v to be within %v of %v", got, tolerance, want)
	}
}

// ApproxAll calls Approx for every element of got against the single value
// want, useful for asserting a whole mixed buffer settled to one level.
func ApproxAll(t *testing.T, want float32, got []float32, tolerance float32) {
	t.Helper()
	for i, v := range got {
		if math.Abs(float64(want-v)) > float64(tolerance) {
			t.Errorf("element %d: expected %v to be within %v of %v", i, v, tolerance, want)
		}
	}
}
