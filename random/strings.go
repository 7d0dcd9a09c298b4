// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// strings.go - strings over a finite alphabet (or any rune), sized like the
// list families.
//
// Characters are drawn uniformly from the alphabet, weighted by multiplicity.
// An empty alphabet only admits "": variable and zero sizes yield it, larger
// fixed or minimum sizes are ErrInvalidArgument.

package random

import (
	"iter"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodStrings               = "Strings"
	methodStringsFrom           = "StringsFrom"
	methodStringsAtLeast        = "StringsAtLeast"
	methodStringsOfSize         = "StringsOfSize"
	methodStringBags            = "StringBags"
	methodStringLists           = "StringLists"
	methodDistinctStrings       = "DistinctStrings"
	methodDistinctStringsOfSize = "DistinctStringsOfSize"
	methodStringSubsets         = "StringSubsets"
)

func runesToString(s iter.Seq[[]rune]) iter.Seq[string] {
	return seq.Map(s, func(rs []rune) string { return string(rs) })
}

func (p *Provider) alphabet(chars string) iter.Seq[rune] {
	return uniformSample(p, []rune(chars))
}

// Strings yields strings of arbitrary Unicode scalar values whose lengths
// (in runes) have mean Scale.
func (p *Provider) Strings() (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStrings, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return runesToString(listsOf(methodStrings, p.Runes(), p.naturalSizes())), nil
}

// StringsFrom yields strings over chars whose lengths have mean Scale.
func (p *Provider) StringsFrom(chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStringsFrom, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Repeat(""), nil
	}

	return runesToString(listsOf(methodStringsFrom, p.alphabet(chars), p.naturalSizes())), nil
}

// StringsAtLeast yields strings over chars of at least minSize runes whose
// lengths have mean Scale.
func (p *Provider) StringsAtLeast(minSize int, chars string) (iter.Seq[string], error) {
	if err := validateAtLeast(methodStringsAtLeast, p.scale, minSize); err != nil {
		return nil, err
	}
	if chars == "" {
		if minSize > 0 {
			return nil, invalidArgf(methodStringsAtLeast, "cannot build %d characters from an empty alphabet", minSize)
		}

		return seq.Repeat(""), nil
	}

	return runesToString(listsOf(methodStringsAtLeast, p.alphabet(chars), p.sizesAtLeast(minSize))), nil
}

// StringsOfSize yields strings over chars of exactly n runes.
func (p *Provider) StringsOfSize(n int, chars string) (iter.Seq[string], error) {
	if err := requireNonNegative(methodStringsOfSize, "size", n); err != nil {
		return nil, err
	}
	if chars == "" {
		if n > 0 {
			return nil, invalidArgf(methodStringsOfSize, "cannot build %d characters from an empty alphabet", n)
		}

		return seq.Repeat(""), nil
	}

	return runesToString(listsOf(methodStringsOfSize, p.alphabet(chars), fixedSize(n))), nil
}

// StringBags yields strings over chars with their runes sorted.
func (p *Provider) StringBags(chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStringBags, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Repeat(""), nil
	}

	return runesToString(sorted(listsOf(methodStringBags, p.alphabet(chars), p.naturalSizes()))), nil
}

// StringLists yields lists with mean length Scale of strings over chars with
// mean length SecondaryScale.
func (p *Provider) StringLists(chars string) (iter.Seq[[]string], error) {
	if err := requireScaleAbove(methodStringLists, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if err := requireScaleAbove(methodStringLists, "secondary scale", p.secondaryScale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Map(p.naturalSizeSeq(), func(n int) []string { return make([]string, n) }), nil
	}
	lists, err := ListsOfLists(p, p.alphabet(chars))
	if err != nil {
		return nil, err
	}

	return seq.Map(lists, func(rss [][]rune) []string {
		out := make([]string, len(rss))
		for i, rs := range rss {
			out[i] = string(rs)
		}

		return out
	}), nil
}

func (p *Provider) naturalSizeSeq() iter.Seq[int] { return repeatedly(p.naturalSizes()) }

// DistinctStrings yields strings over chars without repeated runes whose
// lengths have mean Scale, capped at the number of distinct runes in chars.
func (p *Provider) DistinctStrings(chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodDistinctStrings, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Repeat(""), nil
	}
	k := len(distinctRunes(chars))
	sizes := p.naturalSizes()
	capped := func() int { return min(sizes(), k) }

	return runesToString(distinctListsOf(methodDistinctStrings, p.alphabet(chars), capped, true, 0)), nil
}

// DistinctStringsOfSize yields strings of exactly n distinct runes of chars.
// chars must contain at least n distinct runes.
func (p *Provider) DistinctStringsOfSize(n int, chars string) (iter.Seq[string], error) {
	if err := requireNonNegative(methodDistinctStringsOfSize, "size", n); err != nil {
		return nil, err
	}
	if k := len(distinctRunes(chars)); n > k {
		return nil, invalidArgf(methodDistinctStringsOfSize,
			"cannot pick %d distinct characters from %d", n, k)
	}
	if n == 0 {
		return seq.Repeat(""), nil
	}

	return runesToString(distinctListsOf(methodDistinctStringsOfSize, p.alphabet(chars), fixedSize(n), true, 0)), nil
}

// StringSubsets yields strings of distinct runes of chars in ascending order.
func (p *Provider) StringSubsets(chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStringSubsets, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Repeat(""), nil
	}
	k := len(distinctRunes(chars))
	sizes := p.naturalSizes()
	capped := func() int { return min(sizes(), k) }

	return runesToString(sorted(distinctListsOf(methodStringSubsets, p.alphabet(chars), capped, true, 0))), nil
}
