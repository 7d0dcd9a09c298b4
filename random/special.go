// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// special.go - forced elements mixed into a sequence: a chosen value, nil,
// or the empty Optional.
//
// Contract:
//   - Before each element of the input, the forced value is emitted while a
//     1/(Scale+1) trial succeeds, so one output in Scale+1 is forced on average.
//   - Scale must be at least 1.

package random

import (
	"fmt"
	"iter"
)

const (
	methodWithElement = "WithElement"
	methodWithNull    = "WithNull"
	methodOptionals   = "Optionals"
)

// Optional is a value that may be absent.
type Optional[T any] struct {
	Value T
	Valid bool
}

// String renders an absent value as "Optional.empty".
func (o Optional[T]) String() string {
	if !o.Valid {
		return "Optional.empty"
	}

	return fmt.Sprintf("Optional[%v]", o.Value)
}

// substitute interleaves xs with the special value: before each element of
// xs, the special value is emitted while a 1/(m+1) trial succeeds. The gaps
// between specials are therefore geometric with mean m.
func substitute[T, U any](p *Provider, xs iter.Seq[T], special U, wrap func(T) U) iter.Seq[U] {
	n := uint64(p.scale) + 1

	return func(yield func(U) bool) {
		for x := range xs {
			for p.nextBelow(n) == 0 {
				if !yield(special) {
					return
				}
			}
			if !yield(wrap(x)) {
				return
			}
		}
	}
}

// WithElement yields the elements of xs with x mixed in; asymptotically one
// value in Scale+1 is x. x must not be nil and Scale must be at least 1.
func WithElement[T any](p *Provider, x T, xs iter.Seq[T]) (iter.Seq[T], error) {
	if isNil(x) {
		return nil, invalidArgf(methodWithElement, "forced element must not be nil")
	}
	if err := requireScaleAbove(methodWithElement, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return substitute(p, xs, x, func(v T) T { return v }), nil
}

// WithNull is WithElement with nil as the forced element. Non-nil results
// point to fresh copies of the elements of xs.
func WithNull[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[*T], error) {
	if err := requireScaleAbove(methodWithNull, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return substitute(p, xs, (*T)(nil), func(v T) *T { return &v }), nil
}

// Optionals is WithElement with the empty Optional as the forced element.
func Optionals[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[Optional[T]], error) {
	if err := requireScaleAbove(methodOptionals, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return substitute(p, xs, Optional[T]{}, func(v T) Optional[T] {
		return Optional[T]{Value: v, Valid: true}
	}), nil
}
