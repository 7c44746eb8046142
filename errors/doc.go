// Package errors is part of Soundstage.
// Licensed under the MIT license; see LICENSE.

// Package errors is a helper package for the plain Go error type. We think of
// these errors as curated errors: external to this package they are
// referenced as plain errors (they implement the error interface) but
// internally they are composed of a message and the values used to format it.
//
// The Error() implementation for curated errors normalises the causal chain
// so that wrapping the same message at two levels of a call stack does not
// produce a duplicated adjacent part. For example:
//
//	func A() error {
//		if err := B(); err != nil {
//			return errors.Errorf("engine error: %v", err)
//		}
//		return nil
//	}
//
//	func B() error {
//		return errors.Errorf("engine error: %v", errors.Errorf(EngineNotRunning))
//	}
//
// prints "engine error: not running", not
// "engine error: engine error: not running".
package errors
