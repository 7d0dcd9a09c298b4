// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// ordering.go - the three-way comparison result drawn by Orderings.

package random

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	LT Ordering = -1 // less than
	EQ Ordering = 0  // equal
	GT Ordering = 1  // greater than
)

// AllOrderings lists every Ordering in ascending order.
var AllOrderings = []Ordering{LT, EQ, GT}

// String returns "<", "=" or ">".
func (o Ordering) String() string {
	switch o {
	case LT:
		return "<"
	case EQ:
		return "="
	case GT:
		return ">"
	default:
		return "Ordering(?)"
	}
}
