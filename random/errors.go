// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// errors.go - sentinel errors for the random package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Every returned error carries the operation name as a prefix:
//     "<Method>: <detail>: <sentinel text>".
//   - Construction-time problems are returned. A sequence that cannot go on
//     fails through seq.Fail and surfaces from seq.Collect / seq.Try.

package random

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrand/seq"
)

// ErrInvalidArgument indicates that an explicit parameter of a single call is
// unusable regardless of configuration: a seed of the wrong length, a negative
// fixed size, an empty candidate list, a nil bound, a nil forced element.
var ErrInvalidArgument = errors.New("random: invalid argument")

// ErrIllegalState indicates that the provider's scales cannot drive the
// requested distribution, e.g. a geometric mean at or below its floor, or an
// at-least size whose scale does not exceed the minimum.
var ErrIllegalState = errors.New("random: illegal state")

// ErrNoSuchElement indicates that a collaborator sequence ran out while the
// algorithm needed another element from it. It is seq.ErrNoSuchElement.
var ErrNoSuchElement = seq.ErrNoSuchElement

func invalidArgf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidArgument)
}

func illegalStatef(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrIllegalState)
}

func noSuchElementf(method, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrNoSuchElement)
}
