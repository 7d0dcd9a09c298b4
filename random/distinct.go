// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// distinct.go - lists without repeated elements, and subsets (sorted
// distinct lists).
//
// Duplicates are drawn and discarded. A draw gives up after
// distinctPatience consecutive duplicates: the variable-size forms then emit
// what they have, the at-least and fixed-size forms fail with
// ErrNoSuchElement because they cannot honor their size.

package random

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodDistinctLists        = "DistinctLists"
	methodDistinctListsAtLeast = "DistinctListsAtLeast"
	methodDistinctListsOfSize  = "DistinctListsOfSize"
	methodSubsets              = "Subsets"
	methodSubsetsAtLeast       = "SubsetsAtLeast"
	methodSubsetsOfSize        = "SubsetsOfSize"
)

// distinctPatience bounds the run of consecutive duplicate draws.
const distinctPatience = 1 << 10

// distinctFill takes up to n distinct elements from src, in draw order.
//
// Parameters:
//   - src:      element source; exhaustion fails the enclosing sequence.
//   - n:        number of distinct elements wanted.
//   - patience: consecutive duplicates tolerated; <= 0 never gives up.
//
// Returns the elements found and false if the patience ran out first.
//
// Complexity: O(draws) time, O(n) extra space.
func distinctFill[T comparable](src *source[T], n, patience int) ([]T, bool) {
	out := make([]T, 0, n)
	seen := make(map[T]struct{}, n)
	misses := 0
	for len(out) < n {
		x := src.take()
		if _, dup := seen[x]; dup {
			misses++
			if patience > 0 && misses >= patience {
				return out, false
			}
			continue
		}
		misses = 0
		seen[x] = struct{}{}
		out = append(out, x)
	}

	return out, true
}

// distinctListsOf draws lists of distinct elements. If strict, a stalled
// draw fails the sequence instead of emitting a shorter list.
func distinctListsOf[T comparable](method string, xs iter.Seq[T], size sizer, strict bool, patience int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src, stop := pull(method, xs)
		defer stop()
		for {
			n := size()
			out, ok := distinctFill(src, n, patience)
			if !ok && strict {
				seq.Fail(noSuchElementf(method, "found only %d distinct elements of %d", len(out), n))
			}
			if !yield(out) {
				return
			}
		}
	}
}

// DistinctLists yields lists of distinct elements of xs whose lengths have
// mean Scale, or less if xs has too few distinct values.
func DistinctLists[T comparable](p *Provider, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireScaleAbove(methodDistinctLists, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return distinctListsOf(methodDistinctLists, xs, p.naturalSizes(), false, distinctPatience), nil
}

// DistinctListsAtLeast yields lists of at least minSize distinct elements.
func DistinctListsAtLeast[T comparable](p *Provider, minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateAtLeast(methodDistinctListsAtLeast, p.scale, minSize); err != nil {
		return nil, err
	}

	return distinctListsOf(methodDistinctListsAtLeast, xs, p.sizesAtLeast(minSize), true, distinctPatience), nil
}

// DistinctListsOfSize yields lists of exactly n distinct elements.
func DistinctListsOfSize[T comparable](n int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireNonNegative(methodDistinctListsOfSize, "size", n); err != nil {
		return nil, err
	}

	return distinctListsOf(methodDistinctListsOfSize, xs, fixedSize(n), true, distinctPatience), nil
}

// Subsets yields sorted lists of distinct elements drawn like DistinctLists.
func Subsets[T cmp.Ordered](p *Provider, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireScaleAbove(methodSubsets, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return sorted(distinctListsOf(methodSubsets, xs, p.naturalSizes(), false, distinctPatience)), nil
}

// SubsetsAtLeast yields sorted lists of at least minSize distinct elements.
func SubsetsAtLeast[T cmp.Ordered](p *Provider, minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateAtLeast(methodSubsetsAtLeast, p.scale, minSize); err != nil {
		return nil, err
	}

	return sorted(distinctListsOf(methodSubsetsAtLeast, xs, p.sizesAtLeast(minSize), true, distinctPatience)), nil
}

// SubsetsOfSize yields sorted lists of exactly n distinct elements.
func SubsetsOfSize[T cmp.Ordered](n int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireNonNegative(methodSubsetsOfSize, "size", n); err != nil {
		return nil, err
	}

	return sorted(distinctListsOf(methodSubsetsOfSize, xs, fixedSize(n), true, distinctPatience)), nil
}

// distinctRunes returns the distinct runes of s in order of first occurrence.
func distinctRunes(s string) []rune {
	rs := []rune(s)
	seen := make(map[rune]struct{}, len(rs))
	out := rs[:0]
	for _, r := range rs {
		if _, dup := seen[r]; !dup {
			seen[r] = struct{}{}
			out = append(out, r)
		}
	}

	return slices.Clip(out)
}
