// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// geometric.go - geometric integer families whose mean is the primary scale.
//
// Shapes:
//   - natural:  P(k) = q^k (1-q),     k >= 0, q = m/(m+1), mean m
//   - positive: P(k) = q^(k-1) (1-q), k >= 1, q = (m-1)/m, mean m
//
// The other families are built from these two by negation, a uniform sign
// (magnitude first, then one sign draw) or a shift to a bound. Every
// precondition is checked when the sequence is built, never on first pull.

package random

import (
	"iter"
	"math"
)

const (
	methodNaturalIntegersGeometric  = "NaturalIntegersGeometric"
	methodPositiveIntegersGeometric = "PositiveIntegersGeometric"
	methodNegativeIntegersGeometric = "NegativeIntegersGeometric"
	methodNonzeroIntegersGeometric  = "NonzeroIntegersGeometric"
	methodIntegersGeometric         = "IntegersGeometric"
	methodRangeUpGeometric          = "RangeUpGeometric"
	methodRangeDownGeometric        = "RangeDownGeometric"
)

// repeatedly yields next() forever.
func repeatedly[T any](next func() T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(next()) {
		}
	}
}

// repeatedlyOK yields next() forever, skipping draws it rejects.
func repeatedlyOK[T any](next func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := next()
			if ok && !yield(v) {
				return
			}
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// NaturalIntegersGeometric yields integers >= 0 with mean Scale.
// Scale must be positive.
func (p *Provider) NaturalIntegersGeometric() (iter.Seq[int], error) {
	if err := requireScaleAbove(methodNaturalIntegersGeometric, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() int { return p.nextNatural(m) }), nil
}

// PositiveIntegersGeometric yields integers >= 1 with mean Scale.
// Scale must be greater than 1.
func (p *Provider) PositiveIntegersGeometric() (iter.Seq[int], error) {
	if err := requireScaleAbove(methodPositiveIntegersGeometric, "scale", p.scale, 1); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() int { return p.nextPositive(m) }), nil
}

// NegativeIntegersGeometric yields integers <= -1 with mean Scale.
// Scale must be less than -1.
func (p *Provider) NegativeIntegersGeometric() (iter.Seq[int], error) {
	if p.scale >= -1 {
		return nil, illegalStatef(methodNegativeIntegersGeometric, "scale must be less than -1, got %d", p.scale)
	}
	m := -p.scale

	return repeatedly(func() int { return -p.nextPositive(m) }), nil
}

// NonzeroIntegersGeometric yields non-zero integers whose absolute value has
// mean abs(Scale); the sign is uniform. abs(Scale) must be greater than 1.
func (p *Provider) NonzeroIntegersGeometric() (iter.Seq[int], error) {
	if p.scale == math.MinInt || absInt(p.scale) <= 1 {
		return nil, illegalStatef(methodNonzeroIntegersGeometric,
			"absolute value of scale must be greater than 1, got %d", p.scale)
	}
	m := absInt(p.scale)

	return repeatedly(func() int {
		v := p.nextPositive(m)
		if p.nextBool() {
			return -v
		}

		return v
	}), nil
}

// IntegersGeometric yields integers whose absolute value has mean abs(Scale);
// the sign is uniform. Scale must be non-zero and neither MinInt nor MaxInt.
func (p *Provider) IntegersGeometric() (iter.Seq[int], error) {
	if p.scale == 0 || p.scale == math.MinInt || p.scale == math.MaxInt {
		return nil, illegalStatef(methodIntegersGeometric,
			"scale must be non-zero and strictly inside the int range, got %d", p.scale)
	}
	m := absInt(p.scale)

	return repeatedly(func() int {
		v := p.nextNatural(m)
		if p.nextBool() {
			return -v
		}

		return v
	}), nil
}

// RangeUpGeometric yields integers >= a with mean Scale. Scale must exceed a
// and Scale-a must be representable. Draws past MaxInt are discarded.
func (p *Provider) RangeUpGeometric(a int) (iter.Seq[int], error) {
	if p.scale <= a {
		return nil, illegalStatef(methodRangeUpGeometric, "scale must be greater than %d, got %d", a, p.scale)
	}
	if a < 0 && p.scale > math.MaxInt+a {
		return nil, illegalStatef(methodRangeUpGeometric, "scale %d is too far above %d", p.scale, a)
	}
	m := p.scale - a

	return repeatedlyOK(func() (int, bool) {
		d := p.nextNatural(m)
		if a > 0 && d > math.MaxInt-a {
			return 0, false
		}

		return a + d, true
	}), nil
}

// RangeDownGeometric yields integers <= a with mean Scale. Scale must be
// below a and a-Scale must be representable. Draws past MinInt are discarded.
func (p *Provider) RangeDownGeometric(a int) (iter.Seq[int], error) {
	if p.scale >= a {
		return nil, illegalStatef(methodRangeDownGeometric, "scale must be less than %d, got %d", a, p.scale)
	}
	if a >= 0 && p.scale < a-math.MaxInt {
		return nil, illegalStatef(methodRangeDownGeometric, "scale %d is too far below %d", p.scale, a)
	}
	m := a - p.scale

	return repeatedlyOK(func() (int, bool) {
		d := p.nextNatural(m)
		if a < 0 && d > a-math.MinInt {
			return 0, false
		}

		return a - d, true
	}), nil
}
