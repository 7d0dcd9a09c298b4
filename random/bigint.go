// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// bigint.go - arbitrary-precision families. The geometric mean applies to the
// bit length, not the magnitude: a value of bit length k is drawn uniformly
// among all integers with exactly k bits.

package random

import (
	"iter"
	"math/big"
)

const (
	methodPositiveBigIntegers = "PositiveBigIntegers"
	methodNegativeBigIntegers = "NegativeBigIntegers"
	methodNaturalBigIntegers  = "NaturalBigIntegers"
	methodNonzeroBigIntegers  = "NonzeroBigIntegers"
	methodBigIntegers         = "BigIntegers"
	methodRangeUpBig          = "RangeUpBig"
	methodRangeDownBig        = "RangeDownBig"
)

// PositiveBigIntegers yields integers >= 1 whose bit length has mean Scale.
// Scale must be greater than 1.
func (p *Provider) PositiveBigIntegers() (iter.Seq[*big.Int], error) {
	if err := requireScaleAbove(methodPositiveBigIntegers, "scale", p.scale, 1); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *big.Int {
		return p.nextBigWithBitLength(p.nextPositive(m))
	}), nil
}

// NegativeBigIntegers yields integers <= -1 whose magnitude's bit length has
// mean Scale. Scale must be greater than 1.
func (p *Provider) NegativeBigIntegers() (iter.Seq[*big.Int], error) {
	if err := requireScaleAbove(methodNegativeBigIntegers, "scale", p.scale, 1); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *big.Int {
		v := p.nextBigWithBitLength(p.nextPositive(m))
		return v.Neg(v)
	}), nil
}

// NaturalBigIntegers yields integers >= 0 whose bit length has mean Scale.
// Zero has bit length 0. Scale must be positive.
func (p *Provider) NaturalBigIntegers() (iter.Seq[*big.Int], error) {
	if err := requireScaleAbove(methodNaturalBigIntegers, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *big.Int {
		return p.nextBigWithBitLength(p.nextNatural(m))
	}), nil
}

// NonzeroBigIntegers yields non-zero integers with a uniform sign whose
// magnitude's bit length has mean Scale. Scale must be greater than 1.
func (p *Provider) NonzeroBigIntegers() (iter.Seq[*big.Int], error) {
	if err := requireScaleAbove(methodNonzeroBigIntegers, "scale", p.scale, 1); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *big.Int {
		v := p.nextBigWithBitLength(p.nextPositive(m))
		if p.nextBool() {
			v.Neg(v)
		}

		return v
	}), nil
}

// BigIntegers yields integers with a uniform sign whose magnitude's bit
// length has mean Scale. Scale must be positive.
func (p *Provider) BigIntegers() (iter.Seq[*big.Int], error) {
	if err := requireScaleAbove(methodBigIntegers, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *big.Int {
		v := p.nextBigWithBitLength(p.nextNatural(m))
		if p.nextBool() {
			v.Neg(v)
		}

		return v
	}), nil
}

// RangeUpBig yields integers >= a. The offset from a has a bit length with
// mean Scale. Scale must be positive and a must not be nil.
func (p *Provider) RangeUpBig(a *big.Int) (iter.Seq[*big.Int], error) {
	return p.rangeFromBig(methodRangeUpBig, a, false)
}

// RangeDownBig yields integers <= a. The offset below a has a bit length
// with mean Scale. Scale must be positive and a must not be nil.
func (p *Provider) RangeDownBig(a *big.Int) (iter.Seq[*big.Int], error) {
	return p.rangeFromBig(methodRangeDownBig, a, true)
}

func (p *Provider) rangeFromBig(method string, a *big.Int, down bool) (iter.Seq[*big.Int], error) {
	if a == nil {
		return nil, invalidArgf(method, "bound must not be nil")
	}
	if err := requireScaleAbove(method, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	m := p.scale
	anchor := new(big.Int).Set(a)

	return repeatedly(func() *big.Int {
		d := p.nextBigWithBitLength(p.nextNatural(m))
		if down {
			return d.Sub(anchor, d)
		}

		return d.Add(anchor, d)
	}), nil
}
