// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// provider.go - the Provider handle: construction, lineage, identity.
//
// Contract:
//   - A Provider owns one live *isaac.PRNG plus three immutable scales. Every
//     value drawn through any of its sequences advances it. No two providers
//     share a PRNG.
//   - With*Scale and Copy snapshot the state by value and checkpoint the
//     snapshot: the result continues the receiver's stream from that point,
//     advances independently, and Reset returns it to that point.
//   - DeepCopy duplicates the state and the receiver's checkpoint, so after
//     Reset the original and the deep copy produce the same values.
//   - Reset restores the last construction or copy checkpoint. The seed and
//     scales never change.
//   - Equal compares seed and scales only; the derived state is ignored.

package random

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvrand/isaac"
)

const methodNew = "New"

// SeedSize is the number of 32-bit words in a seed.
const SeedSize = isaac.Size

// Provider generates reproducible lazy sequences of values. It is not safe
// for concurrent use: interleaving pulls from two sequences of one provider
// yields values that depend on the interleaving.
type Provider struct {
	state          *isaac.PRNG
	scale          int
	secondaryScale int
	tertiaryScale  int
}

// New returns a provider seeded with exactly SeedSize words.
func New(seed []int32, opts ...Option) (*Provider, error) {
	state, err := isaac.New(seed)
	if err != nil {
		return nil, invalidArgf(methodNew, "%v", err)
	}

	return newProvider(state, newConfig(opts...)), nil
}

// NewDefault returns a provider seeded from the operating system's entropy
// source. Its output is not reproducible unless its Seed is recorded.
func NewDefault(opts ...Option) *Provider {
	buf := make([]byte, 4*SeedSize)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("random: reading entropy: %v", err))
	}
	seed := make([]int32, SeedSize)
	for i := range seed {
		seed[i] = int32(binary.BigEndian.Uint32(buf[4*i:]))
	}
	state, _ := isaac.New(seed)

	return newProvider(state, newConfig(opts...))
}

// Example returns a fresh provider built from the canonical example seed
// with default scales. Documentation and golden tests use it.
func Example() *Provider {
	state, _ := isaac.New(isaac.ExampleSeed())

	return newProvider(state, newConfig())
}

func newProvider(state *isaac.PRNG, cfg config) *Provider {
	return &Provider{
		state:          state,
		scale:          cfg.scale,
		secondaryScale: cfg.secondaryScale,
		tertiaryScale:  cfg.tertiaryScale,
	}
}

// Seed returns a copy of the seed.
func (p *Provider) Seed() []int32 { return p.state.Seed() }

// Scale returns the primary scale.
func (p *Provider) Scale() int { return p.scale }

// SecondaryScale returns the secondary scale.
func (p *Provider) SecondaryScale() int { return p.secondaryScale }

// TertiaryScale returns the tertiary scale.
func (p *Provider) TertiaryScale() int { return p.tertiaryScale }

// Fingerprint identifies the current derived state. It changes on every draw.
func (p *Provider) Fingerprint() int64 { return p.state.Fingerprint() }

// WithScale returns a provider with the given primary scale. It starts from
// a snapshot of the receiver's current state and can be reset independently.
func (p *Provider) WithScale(scale int) *Provider {
	return p.derive(scale, p.secondaryScale, p.tertiaryScale)
}

// WithSecondaryScale is WithScale for the secondary scale.
func (p *Provider) WithSecondaryScale(secondaryScale int) *Provider {
	return p.derive(p.scale, secondaryScale, p.tertiaryScale)
}

// WithTertiaryScale is WithScale for the tertiary scale.
func (p *Provider) WithTertiaryScale(tertiaryScale int) *Provider {
	return p.derive(p.scale, p.secondaryScale, tertiaryScale)
}

// WithDefaultScales is WithScale with all three scales at their defaults.
func (p *Provider) WithDefaultScales() *Provider {
	return p.derive(DefaultScale, DefaultSecondaryScale, DefaultTertiaryScale)
}

func (p *Provider) derive(scale, secondaryScale, tertiaryScale int) *Provider {
	return &Provider{
		state:          p.state.Copy(),
		scale:          scale,
		secondaryScale: secondaryScale,
		tertiaryScale:  tertiaryScale,
	}
}

// Copy returns a provider with the same seed and scales whose state is a
// snapshot of the receiver's. The two advance independently afterwards, and
// Reset on the copy returns it to the snapshot.
func (p *Provider) Copy() *Provider {
	return p.derive(p.scale, p.secondaryScale, p.tertiaryScale)
}

// DeepCopy is Copy that also keeps the receiver's checkpoint: resetting the
// original and the deep copy brings both back to the same state.
func (p *Provider) DeepCopy() *Provider {
	return &Provider{
		state:          p.state.Clone(),
		scale:          p.scale,
		secondaryScale: p.secondaryScale,
		tertiaryScale:  p.tertiaryScale,
	}
}

// Reset restores the state at the last construction or copy checkpoint.
func (p *Provider) Reset() {
	p.state.Reset()
}

// Equal reports whether both providers have the same seed and scales.
func (p *Provider) Equal(other *Provider) bool {
	if p == nil || other == nil {
		return p == other
	}

	return p.scale == other.scale &&
		p.secondaryScale == other.secondaryScale &&
		p.tertiaryScale == other.tertiaryScale &&
		slices.Equal(p.state.Seed(), other.state.Seed())
}

// String renders the provider as
// RandomProvider[@<fingerprint>, <scale>, <secondaryScale>, <tertiaryScale>].
func (p *Provider) String() string {
	return fmt.Sprintf("RandomProvider[@%d, %d, %d, %d]",
		p.Fingerprint(), p.scale, p.secondaryScale, p.tertiaryScale)
}
