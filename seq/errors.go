package seq

import (
	"errors"
	"fmt"
)

// ErrNoSuchElement reports that a sequence ran out while a value was required.
var ErrNoSuchElement = errors.New("seq: no such element")

// failure is the panic payload raised by Fail and recovered by Try.
type failure struct {
	err error
}

// Fail aborts the sequence currently being produced. err surfaces from the
// nearest Try or Collect up the call stack.
func Fail(err error) {
	if err == nil {
		panic("seq: Fail(nil)")
	}
	panic(failure{err: err})
}

// Failf is Fail with a formatted error.
func Failf(format string, args ...any) {
	Fail(fmt.Errorf(format, args...))
}

// Try runs fn and converts a sequence failure into an error.
// Panics that did not come from Fail propagate unchanged.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			f, ok := r.(failure)
			if !ok {
				panic(r)
			}
			err = f.err
		}
	}()
	fn()

	return nil
}
