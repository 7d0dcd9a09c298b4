// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// uniform.go - primitive sampling: bounded integer ranges of any width,
// arbitrary-precision ranges, explicit value lists, booleans, orderings,
// runes, raw bits and UUIDs.
//
// Contract:
//   - Range, RangeUp, RangeDown and RangeBig are empty when the range is
//     empty; they never fail for ordered bounds.
//   - Sampling from a list weights each position equally, so repeated
//     values are weighted by multiplicity.
//   - Empty candidate lists are rejected with ErrInvalidArgument.

package random

import (
	"encoding/binary"
	"iter"
	"math/big"
	"slices"

	"github.com/google/uuid"
	"golang.org/x/exp/constraints"
)

const (
	methodBits                = "Bits"
	methodRangeBig            = "RangeBig"
	methodUniformSample       = "UniformSample"
	methodUniformSampleString = "UniformSampleString"
	methodUniformSampleParsed = "UniformSampleParsed"

	maxRune       = 0x10FFFF
	surrogateMin  = 0xD800
	surrogateSpan = 0x800
	maxASCII      = 0x7F
)

// bounds returns the smallest and largest value of T.
func bounds[T constraints.Integer]() (T, T) {
	var zero T
	hi := ^zero
	if hi > zero {
		return zero, hi
	}
	// Signed: grow 1, 3, 7, ... until the next step wraps negative.
	hi = 1
	for next := hi<<1 | 1; next > hi; next = hi<<1 | 1 {
		hi = next
	}

	return ^hi, hi
}

// Range yields values uniformly distributed over [lo, hi] for any integer
// type. It is empty when lo > hi.
func Range[T constraints.Integer](p *Provider, lo, hi T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if lo > hi {
			return
		}
		// Two's complement: the modular difference is the exact span.
		span := uint64(hi) - uint64(lo)
		base := uint64(lo)
		for {
			if !yield(T(base + p.nextUpTo(span))) {
				return
			}
		}
	}
}

// RangeUp yields values uniformly distributed over [a, max(T)].
func RangeUp[T constraints.Integer](p *Provider, a T) iter.Seq[T] {
	_, hi := bounds[T]()

	return Range(p, a, hi)
}

// RangeDown yields values uniformly distributed over [min(T), a].
func RangeDown[T constraints.Integer](p *Provider, a T) iter.Seq[T] {
	lo, _ := bounds[T]()

	return Range(p, lo, a)
}

// Uniform yields values uniformly distributed over all of T.
func Uniform[T constraints.Integer](p *Provider) iter.Seq[T] {
	lo, hi := bounds[T]()

	return Range(p, lo, hi)
}

// Integers yields uniformly distributed int32 values.
func (p *Provider) Integers() iter.Seq[int32] { return Uniform[int32](p) }

// Longs yields uniformly distributed int64 values.
func (p *Provider) Longs() iter.Seq[int64] { return Uniform[int64](p) }

// Booleans yields true and false with equal probability.
func (p *Provider) Booleans() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for yield(p.nextBool()) {
		}
	}
}

// Orderings yields LT, EQ and GT with equal probability.
func (p *Provider) Orderings() iter.Seq[Ordering] {
	return func(yield func(Ordering) bool) {
		for yield(AllOrderings[p.nextIntBelow(len(AllOrderings))]) {
		}
	}
}

// Runes yields Unicode scalar values (surrogates excluded) uniformly.
func (p *Provider) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r := rune(p.nextUpTo(maxRune - surrogateSpan))
			if r >= surrogateMin {
				r += surrogateSpan
			}
			if !yield(r) {
				return
			}
		}
	}
}

// ASCIIRunes yields runes uniformly distributed over [0, 127].
func (p *Provider) ASCIIRunes() iter.Seq[rune] { return Range[rune](p, 0, maxASCII) }

// RangeBig yields arbitrary-precision integers uniformly distributed over
// [lo, hi]. It is empty when lo > hi. Nil bounds are invalid.
func (p *Provider) RangeBig(lo, hi *big.Int) (iter.Seq[*big.Int], error) {
	if lo == nil || hi == nil {
		return nil, invalidArgf(methodRangeBig, "bounds must not be nil")
	}
	lo, hi = new(big.Int).Set(lo), new(big.Int).Set(hi)

	return func(yield func(*big.Int) bool) {
		if lo.Cmp(hi) > 0 {
			return
		}
		span := new(big.Int).Sub(hi, lo)
		for {
			v := p.nextBigUpTo(span)
			if !yield(v.Add(v, lo)) {
				return
			}
		}
	}, nil
}

// UniformSample yields elements of xs, each position with probability
// 1/len(xs). xs is copied; later changes to it are not observed.
func UniformSample[T any](p *Provider, xs []T) (iter.Seq[T], error) {
	if len(xs) == 0 {
		return nil, invalidArgf(methodUniformSample, "cannot sample from an empty list")
	}

	return uniformSample(p, slices.Clone(xs)), nil
}

func uniformSample[T any](p *Provider, xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(xs[p.nextIntBelow(len(xs))]) {
		}
	}
}

// UniformSampleString yields the runes of s, each position equally likely.
func (p *Provider) UniformSampleString(s string) (iter.Seq[rune], error) {
	if s == "" {
		return nil, invalidArgf(methodUniformSampleString, "cannot sample from an empty string")
	}

	return uniformSample(p, []rune(s)), nil
}

// UniformSampleParsed parses every text with parse and samples uniformly from
// the results. It is how element pools are built from textual fixtures.
func UniformSampleParsed[T any](p *Provider, texts []string, parse func(string) (T, bool)) (iter.Seq[T], error) {
	if parse == nil {
		return nil, invalidArgf(methodUniformSampleParsed, "parse function must not be nil")
	}
	if len(texts) == 0 {
		return nil, invalidArgf(methodUniformSampleParsed, "cannot sample from an empty list")
	}
	xs := make([]T, 0, len(texts))
	for i, s := range texts {
		v, ok := parse(s)
		if !ok {
			return nil, invalidArgf(methodUniformSampleParsed, "cannot parse element %d: %q", i, s)
		}
		xs = append(xs, v)
	}

	return uniformSample(p, xs), nil
}

// Bits yields slices of exactly n independent uniform bits. Bits are taken
// from the low end of each drawn word upwards.
func (p *Provider) Bits(n int) (iter.Seq[[]bool], error) {
	if err := requireNonNegative(methodBits, "bit count", n); err != nil {
		return nil, err
	}

	return func(yield func([]bool) bool) {
		for {
			out := make([]bool, n)
			var word uint32
			for i := range out {
				if i%wordBits == 0 {
					word = uint32(p.nextInt())
				}
				out[i] = word&1 != 0
				word >>= 1
			}
			if !yield(out) {
				return
			}
		}
	}, nil
}

// UUIDs yields random (version 4, RFC 4122 variant) UUIDs built from four
// drawn words.
func (p *Provider) UUIDs() iter.Seq[uuid.UUID] {
	return func(yield func(uuid.UUID) bool) {
		for {
			var b [16]byte
			for i := 0; i < len(b); i += 4 {
				binary.BigEndian.PutUint32(b[i:], uint32(p.nextInt()))
			}
			b[6] = b[6]&0x0f | 0x40
			b[8] = b[8]&0x3f | 0x80
			if !yield(uuid.UUID(b)) {
				return
			}
		}
	}
}
