// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// derived.go - sequences of providers seeded from the receiver's stream.
//
// Each provider consumes SeedSize words of the receiver for its seed; scales
// are fixed or drawn positive geometric from the receiver's scales.

package random

import (
	"iter"

	"github.com/katalvlaran/lvrand/isaac"
)

const (
	methodRandomProviders                                = "RandomProviders"
	methodRandomProvidersDefaultSecondaryAndTertiaryScale = "RandomProvidersDefaultSecondaryAndTertiaryScale"
)

// nextProvider seeds a new provider with SeedSize drawn words.
func (p *Provider) nextProvider(scale, secondaryScale, tertiaryScale int) *Provider {
	seed := make([]int32, SeedSize)
	for i := range seed {
		seed[i] = p.nextInt()
	}
	state, _ := isaac.New(seed)

	return newProvider(state, config{
		scale:          scale,
		secondaryScale: secondaryScale,
		tertiaryScale:  tertiaryScale,
	})
}

// RandomProvidersFixedScales yields providers with random seeds and the given
// scales.
func (p *Provider) RandomProvidersFixedScales(scale, secondaryScale, tertiaryScale int) iter.Seq[*Provider] {
	return repeatedly(func() *Provider {
		return p.nextProvider(scale, secondaryScale, tertiaryScale)
	})
}

// RandomProvidersDefault yields providers with random seeds and the default
// scales.
func (p *Provider) RandomProvidersDefault() iter.Seq[*Provider] {
	return p.RandomProvidersFixedScales(DefaultScale, DefaultSecondaryScale, DefaultTertiaryScale)
}

// RandomProvidersDefaultSecondaryAndTertiaryScale yields providers with
// random seeds, a primary scale drawn positive geometric with mean Scale and
// the default secondary and tertiary scales. Scale must be greater than 1.
func (p *Provider) RandomProvidersDefaultSecondaryAndTertiaryScale() (iter.Seq[*Provider], error) {
	if err := requireScaleAbove(methodRandomProvidersDefaultSecondaryAndTertiaryScale, "scale", p.scale, 1); err != nil {
		return nil, err
	}
	m := p.scale

	return repeatedly(func() *Provider {
		scale := p.nextPositive(m)

		return p.nextProvider(scale, DefaultSecondaryScale, DefaultTertiaryScale)
	}), nil
}

// RandomProviders yields providers with random seeds whose three scales are
// drawn positive geometric with means Scale, SecondaryScale and TertiaryScale.
// All three must be greater than 1.
func (p *Provider) RandomProviders() (iter.Seq[*Provider], error) {
	for _, s := range []struct {
		name  string
		value int
	}{
		{"scale", p.scale},
		{"secondary scale", p.secondaryScale},
		{"tertiary scale", p.tertiaryScale},
	} {
		if err := requireScaleAbove(methodRandomProviders, s.name, s.value, 1); err != nil {
			return nil, err
		}
	}
	a, b, c := p.scale, p.secondaryScale, p.tertiaryScale

	return repeatedly(func() *Provider {
		scale := p.nextPositive(a)
		secondaryScale := p.nextPositive(b)
		tertiaryScale := p.nextPositive(c)

		return p.nextProvider(scale, secondaryScale, tertiaryScale)
	}), nil
}
