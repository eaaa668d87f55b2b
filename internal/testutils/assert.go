package testutils

import (
	"runtime/debug"
	"testing"
)

// Assert(condition) panics if condition is false; Assert(condition, error) panics with panic(error) instead.
// It is used for internal invariants of the library (broken representation, impossible states),
// never for rejecting malformed user input.
func Assert(condition bool, err ...interface{}) {
	if len(err) > 1 {
		panic("goldilocks / testutils: Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic("goldilocks / testutils: assertion failed")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless aborts the running test with the given formatted message if condition is false.
func FatalUnless(t *testing.T, condition bool, formatstring string, args ...any) {
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
