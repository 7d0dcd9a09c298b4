// Package random: validation helpers shared by the generator families.
//
// Each helper returns a wrapped sentinel when its precondition fails.
package random

import (
	"reflect"
)

// requireScaleAbove fails with ErrIllegalState unless scale > floor.
func requireScaleAbove(method, name string, scale, floor int) error {
	if scale <= floor {
		return illegalStatef(method, "%s must be greater than %d, got %d", name, floor, scale)
	}

	return nil
}

// requireNonNegative fails with ErrInvalidArgument when n < 0.
func requireNonNegative(method, name string, n int) error {
	if n < 0 {
		return invalidArgf(method, "%s must be non-negative, got %d", name, n)
	}

	return nil
}

// validateAtLeast checks the two preconditions of every *AtLeast operation:
// a non-negative minimum and a scale strictly above it.
func validateAtLeast(method string, scale, minSize int) error {
	if err := requireNonNegative(method, "minimum size", minSize); err != nil {
		return err
	}
	if scale <= minSize {
		return illegalStatef(method, "scale must be greater than the minimum size %d, got %d", minSize, scale)
	}

	return nil
}

// isNil reports whether v is a nil pointer, map, channel, function or
// interface. Nil slices are ordinary empty values and are not reported.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
