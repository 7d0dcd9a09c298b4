// SPDX-License-Identifier: MIT
// Package: lvrand/isaac
//
// isaac.go - ISAAC state, initialization and block regeneration.
//
// Contract:
//   - New accepts exactly Size seed words (else ErrSeedLength).
//   - NextInt never fails; it regenerates a block every Size words.
//   - Every PRNG carries a checkpoint: the state New produced, or the state
//     at the moment Copy was taken. Reset restores the checkpoint.
//   - Copy returns an independent value copy checkpointed at the copy point;
//     Clone duplicates the live state and the checkpoint unchanged.
//
// Complexity:
//   - New: O(Size). Reset, Copy, Clone: one O(Size) value copy.
//   - NextInt: amortized O(1).

package isaac

import (
	"fmt"
)

const (
	sizeLog = 8
	// Size is the number of 32-bit words in a seed and in the mixing array.
	Size = 1 << sizeLog

	half        = Size / 2
	mask        = (Size - 1) << 2
	goldenRatio = 0x9e3779b9
)

// state is the mutable part of the generator.
type state struct {
	mem   [Size]uint32 // mixing array
	rsl   [Size]uint32 // current result block
	a     uint32
	b     uint32
	c     uint32
	count int // words left in rsl
}

// PRNG is the ISAAC generator state. The zero value is not usable; build one
// with New. A PRNG is not safe for concurrent use.
type PRNG struct {
	seed [Size]int32 // immutable after New
	state
	checkpoint state // restored by Reset
}

// New builds a PRNG from exactly Size seed words.
func New(seed []int32) (*PRNG, error) {
	if len(seed) != Size {
		return nil, fmt.Errorf("isaac: got %d seed words, want %d: %w", len(seed), Size, ErrSeedLength)
	}
	p := &PRNG{}
	copy(p.seed[:], seed)
	p.init()
	p.checkpoint = p.state

	return p, nil
}

// NextInt returns the next pseudo-random 32-bit word.
func (p *PRNG) NextInt() int32 {
	if p.count == 0 {
		p.generate()
		p.count = Size
	}
	p.count--

	return int32(p.rsl[p.count])
}

// NextLong returns two words combined into 64 bits, high word first.
func (p *PRNG) NextLong() int64 {
	hi := int64(p.NextInt())
	lo := int64(uint32(p.NextInt()))

	return hi<<32 | lo
}

// Copy returns an independent copy of the current state whose checkpoint is
// the copy point: Reset on the copy returns it to where it was copied.
// Advancing either PRNG afterwards does not affect the other.
func (p *PRNG) Copy() *PRNG {
	c := *p
	c.checkpoint = c.state

	return &c
}

// Clone returns an independent duplicate of p, checkpoint included. After
// Reset, p and its clone produce the same words.
func (p *PRNG) Clone() *PRNG {
	c := *p

	return &c
}

// Reset restores the checkpoint: the state New produced, or for a copy the
// state at the moment it was copied. The seed is unchanged.
func (p *PRNG) Reset() {
	p.state = p.checkpoint
}

// Seed returns a copy of the seed words.
func (p *PRNG) Seed() []int32 {
	out := make([]int32, Size)
	copy(out, p.seed[:])

	return out
}

// init is randinit(flag=true): scramble the golden ratio, fold in the seed
// words, then fold in the mixing array a second time.
func (p *PRNG) init() {
	var w [8]uint32
	for i := range w {
		w[i] = goldenRatio
	}
	for i := 0; i < 4; i++ {
		mix(&w)
	}

	for i := range p.rsl {
		p.rsl[i] = uint32(p.seed[i])
	}
	for i := 0; i < Size; i += 8 {
		for k := range w {
			w[k] += p.rsl[i+k]
		}
		mix(&w)
		copy(p.mem[i:i+8], w[:])
	}
	for i := 0; i < Size; i += 8 {
		for k := range w {
			w[k] += p.mem[i+k]
		}
		mix(&w)
		copy(p.mem[i:i+8], w[:])
	}

	p.generate()
	p.count = Size
}

func mix(w *[8]uint32) {
	a, b, c, d, e, f, g, h := w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7]
	a ^= b << 11
	d += a
	b += c
	b ^= c >> 2
	e += b
	c += d
	c ^= d << 8
	f += c
	d += e
	d ^= e >> 16
	g += d
	e += f
	e ^= f << 10
	h += e
	f += g
	f ^= g >> 4
	a += f
	g += h
	g ^= h << 8
	b += g
	h += a
	h ^= a >> 9
	c += h
	a += b
	w[0], w[1], w[2], w[3], w[4], w[5], w[6], w[7] = a, b, c, d, e, f, g, h
}

// generate fills rsl with the next block of Size words.
func (p *PRNG) generate() {
	p.c++
	p.b += p.c

	j := half
	for i := 0; i < Size; i++ {
		switch i & 3 {
		case 0:
			p.a ^= p.a << 13
		case 1:
			p.a ^= p.a >> 6
		case 2:
			p.a ^= p.a << 2
		case 3:
			p.a ^= p.a >> 16
		}
		x := p.mem[i]
		p.a += p.mem[j]
		y := p.mem[(x&mask)>>2] + p.a + p.b
		p.mem[i] = y
		p.b = p.mem[((y>>sizeLog)&mask)>>2] + x
		p.rsl[i] = p.b

		j = (j + 1) % Size
	}
}
