// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// draw.go - the single-value draws every sequence is built from.
//
// Bit budget:
//   - nextBits(n) consumes one word for n <= 32 and two words (high first)
//     for 32 < n <= 64; it keeps the low n bits.
//   - nextBelow(n) rejection-samples bits.Len64(n-1) bits until the value is
//     below n, so it is exactly uniform; the expected number of rounds is
//     below 2.
//   - Geometric draws count failed nextBelow trials, see nextNatural.

package random

import (
	"math/big"
	"math/bits"
)

const wordBits = 32

func (p *Provider) nextInt() int32 { return p.state.NextInt() }

func (p *Provider) nextBool() bool { return p.nextInt()&1 != 0 }

// nextBits returns n uniformly random bits, 0 <= n <= 64.
func (p *Provider) nextBits(n int) uint64 {
	switch {
	case n <= 0:
		return 0
	case n <= wordBits:
		w := uint64(uint32(p.nextInt()))
		return w & lowMask(n)
	default:
		hi := uint64(uint32(p.nextInt()))
		lo := uint64(uint32(p.nextInt()))
		return (hi<<wordBits | lo) & lowMask(n)
	}
}

func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<n - 1
}

// nextBelow returns a uniform value in [0, n) by rejection: it draws
// bits.Len64(n-1) bits and retries while the result is n or more.
//
// Parameters:
//   - n: exclusive upper bound; must be positive.
//
// Complexity: O(1) expected, fewer than 2 rounds of one or two words each.
func (p *Provider) nextBelow(n uint64) uint64 {
	width := bits.Len64(n - 1)
	for {
		if v := p.nextBits(width); v < n {
			return v
		}
	}
}

// nextUpTo returns a uniform value in [0, span].
func (p *Provider) nextUpTo(span uint64) uint64 {
	if span == ^uint64(0) {
		return p.nextBits(64)
	}

	return p.nextBelow(span + 1)
}

func (p *Provider) nextIntBelow(n int) int { return int(p.nextBelow(uint64(n))) }

// nextNatural draws from the geometric distribution on {0, 1, 2, ...} with
// mean m: the number of failed trials before the first success, where a
// trial succeeds with probability 1/(m+1). m must be positive.
func (p *Provider) nextNatural(m int) int {
	n := uint64(m) + 1
	i := 0
	for p.nextBelow(n) != 0 {
		i++
	}

	return i
}

// nextPositive draws from the geometric distribution on {1, 2, ...} with
// mean m: the number of trials up to and including the first success, where
// a trial succeeds with probability 1/m. m must exceed 1.
func (p *Provider) nextPositive(m int) int {
	n := uint64(m)
	i := 1
	for p.nextBelow(n) != 0 {
		i++
	}

	return i
}

// nextBigBits returns a uniform non-negative integer below 2^n, assembled
// from 32-bit chunks, most significant chunk first.
func (p *Provider) nextBigBits(n int) *big.Int {
	z := new(big.Int)
	chunk := new(big.Int)
	for n > 0 {
		take := min(n, wordBits)
		w := uint64(uint32(p.nextInt())) & lowMask(take)
		z.Lsh(z, uint(take))
		z.Or(z, chunk.SetUint64(w))
		n -= take
	}

	return z
}

// nextBigUpTo returns a uniform value in [0, span]. span must be >= 0.
func (p *Provider) nextBigUpTo(span *big.Int) *big.Int {
	width := span.BitLen()
	for {
		if v := p.nextBigBits(width); v.Cmp(span) <= 0 {
			return v
		}
	}
}

// nextBigWithBitLength returns a uniform integer whose bit length is exactly
// n; n == 0 yields zero.
func (p *Provider) nextBigWithBitLength(n int) *big.Int {
	if n == 0 {
		return new(big.Int)
	}
	z := p.nextBigBits(n - 1)

	return z.SetBit(z, n-1, 1)
}
