// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// sublists.go - contiguous slices of finite input, and lists that embed a
// given run between geometric-length filler.

package random

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodListsWithSublists     = "ListsWithSublists"
	methodStringsWithSubstrings = "StringsWithSubstrings"
	methodListsWithElement      = "ListsWithElement"
	methodStringsWithChar       = "StringsWithChar"
)

// Sublists yields contiguous slices of xs, including the empty slice and xs
// itself. The start is uniform over [0, len(xs)] and the end uniform over
// [start, len(xs)], so short slices near the end are favored. Each result is
// a fresh slice.
func Sublists[T any](p *Provider, xs []T) iter.Seq[[]T] {
	base := slices.Clone(xs)

	return repeatedly(func() []T {
		start, end := p.nextSpan(len(base))

		return slices.Clone(base[start:end])
	})
}

// Substrings is Sublists over the runes of s.
func (p *Provider) Substrings(s string) iter.Seq[string] {
	rs := []rune(s)

	return repeatedly(func() string {
		start, end := p.nextSpan(len(rs))

		return string(rs[start:end])
	})
}

func (p *Provider) nextSpan(n int) (int, int) {
	start := int(p.nextUpTo(uint64(n)))
	end := start + int(p.nextUpTo(uint64(n-start)))

	return start, end
}

// ListsWithSublists yields lists that contain a list drawn from sublists as a
// contiguous run, surrounded by filler drawn from xs. The filler before and
// after each have a natural geometric length with mean Scale.
func ListsWithSublists[T any](p *Provider, sublists iter.Seq[[]T], xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireScaleAbove(methodListsWithSublists, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return embed(p, methodListsWithSublists, sublists, xs), nil
}

// embed yields prefix ++ sub ++ suffix, where sub is the next list of
// sublists and both fillers are drawn from xs with natural geometric length.
//
// Parameters:
//   - p:        draws the filler lengths.
//   - method:   name failures are attributed to.
//   - sublists: runs to embed, one per output.
//   - xs:       filler elements.
//
// Complexity: O(len(output)) per output.
func embed[T any](p *Provider, method string, sublists iter.Seq[[]T], xs iter.Seq[T]) iter.Seq[[]T] {
	size := p.naturalSizes()

	return func(yield func([]T) bool) {
		subs, stopSubs := pull(method, sublists)
		defer stopSubs()
		src, stop := pull(method, xs)
		defer stop()
		for {
			sub := subs.take()
			out := src.fill(size())
			out = append(out, sub...)
			out = append(out, src.fill(size())...)
			if !yield(out) {
				return
			}
		}
	}
}

// StringsWithSubstrings yields strings over chars that contain a string
// drawn from substrings, like ListsWithSublists. With an empty alphabet the
// substrings are yielded as they are.
func (p *Provider) StringsWithSubstrings(substrings iter.Seq[string], chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStringsWithSubstrings, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return substrings, nil
	}
	subs := seq.Map(substrings, func(s string) []rune { return []rune(s) })

	return runesToString(embed(p, methodStringsWithSubstrings, subs, p.alphabet(chars))), nil
}

// ListsWithElement yields lists drawn from xs that contain x at least once.
// x must not be nil.
func ListsWithElement[T any](p *Provider, x T, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if isNil(x) {
		return nil, invalidArgf(methodListsWithElement, "element must not be nil")
	}
	if err := requireScaleAbove(methodListsWithElement, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return embed(p, methodListsWithElement, seq.Repeat([]T{x}), xs), nil
}

// StringsWithChar yields strings over chars that contain c at least once.
func (p *Provider) StringsWithChar(c rune, chars string) (iter.Seq[string], error) {
	if err := requireScaleAbove(methodStringsWithChar, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if chars == "" {
		return seq.Repeat(string(c)), nil
	}

	return runesToString(embed(p, methodStringsWithChar, seq.Repeat([]rune{c}), p.alphabet(chars))), nil
}
