package core

import (
	"fmt"
	"runtime/debug"
)

// PanicError wraps a recovered panic value with its stack trace so callers
// can log the failure without re-panicking
type PanicError struct {
	Value any
	Stack []byte
}

// Error implements error
func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recovered runs fn, converting a panic into a *PanicError.
// Used at frame boundaries where a failing animation must not take down
// the coordinator or its sibling sections
func Recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	fn()
	return nil
}

// Go runs fn in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword for loops owned by the library;
// onPanic may be nil, in which case the panic is swallowed after recovery
func Go(fn func(), onPanic func(err *PanicError)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if onPanic != nil {
					onPanic(&PanicError{Value: r, Stack: debug.Stack()})
				}
			}
		}()
		fn()
	}()
}
