// Package errors is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

package errors_test

import (
	"fmt"
	"testing"

	"github.com/loopstack/soundstage/errors"
)

const testError = "test error: %s"
const testErrorB = "test error B: %s"

func TestDuplicateErrors(t *testing.T) {
	e := errors.Errorf(testError, "foo")
	if e.Error() != "test error: foo" {
		t.Errorf("unexpected message: %q", e.Error())
	}

	// packing errors of the same type next to each other causes one of them
	// to be dropped
	f := errors.Errorf(testError, e)
	if f.Error() != "test error: foo" {
		t.Errorf("unexpected message: %q", f.Error())
	}
}

func TestIs(t *testing.T) {
	e := errors.Errorf(testError, "foo")
	if !errors.Is(e, testError) {
		t.Errorf("expected Is(e, testError) to be true")
	}
	if errors.Has(e, testErrorB) {
		t.Errorf("expected Has(e, testErrorB) to be false")
	}

	f := errors.Errorf(testErrorB, e)
	if errors.Is(f, testError) {
		t.Errorf("expected Is(f, testError) to be false")
	}
	if !errors.Is(f, testErrorB) {
		t.Errorf("expected Is(f, testErrorB) to be true")
	}
	if !errors.Has(f, testError) {
		t.Errorf("expected Has(f, testError) to be true")
	}
	if !errors.Has(f, testErrorB) {
		t.Errorf("expected Has(f, testErrorB) to be true")
	}

	if !errors.IsAny(e) || !errors.IsAny(f) {
		t.Errorf("expected IsAny to be true for curated errors")
	}
}

func TestPlainErrors(t *testing.T) {
	e := fmt.Errorf("plain test error")
	if errors.IsAny(e) {
		t.Errorf("expected IsAny to be false for a plain error")
	}
	if errors.Has(e, testError) {
		t.Errorf("expected Has to be false for a plain error")
	}
}
