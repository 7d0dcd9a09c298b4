// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// permutations.go - uniform shuffles of finite input and locally permuted
// views of possibly infinite input.

package random

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodPrefixPermutations   = "PrefixPermutations"
	methodPermutationsInfinite = "PermutationsInfinite"
)

// Shuffle permutes xs in place, uniformly at random (Fisher-Yates: for i from
// len(xs)-1 down to 1, swap xs[i] with xs[j], j uniform in [0, i]).
func Shuffle[T any](p *Provider, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := p.nextIntBelow(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// PermutationsFinite yields independent uniform permutations of xs. xs is
// copied; each permutation is a fresh slice.
func PermutationsFinite[T any](p *Provider, xs []T) iter.Seq[[]T] {
	base := slices.Clone(xs)

	return repeatedly(func() []T {
		perm := slices.Clone(base)
		Shuffle(p, perm)

		return perm
	})
}

// StringPermutations yields uniform permutations of the runes of s.
func (p *Provider) StringPermutations(s string) iter.Seq[string] {
	rs := []rune(s)

	return repeatedly(func() string {
		perm := slices.Clone(rs)
		Shuffle(p, perm)

		return string(perm)
	})
}

// PrefixPermutations yields views of xs whose first k elements are shuffled
// and whose remaining elements pass through in order. k is natural geometric
// with mean Scale, capped by the length of xs. Each view ranges over xs once:
// it buffers the prefix, shuffles it when first consumed, then continues from
// the same pull, so a single-pass source still yields a permutation of one
// run of xs. Scale must be positive.
//
// Complexity: O(k) memory per view being consumed.
func PrefixPermutations[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[iter.Seq[T]], error) {
	if err := requireScaleAbove(methodPrefixPermutations, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	size := p.naturalSizes()

	return repeatedly(func() iter.Seq[T] {
		k := size()

		return func(yield func(T) bool) {
			next, stop := iter.Pull(xs)
			defer stop()
			prefix := make([]T, 0, min(k, 1<<10))
			for len(prefix) < k {
				x, ok := next()
				if !ok {
					break
				}
				prefix = append(prefix, x)
			}
			Shuffle(p, prefix)
			for _, x := range prefix {
				if !yield(x) {
					return
				}
			}
			if len(prefix) < k {
				return
			}
			for {
				x, ok := next()
				if !ok || !yield(x) {
					return
				}
			}
		}
	}), nil
}

// PermutationsInfinite yields views of xs cut into consecutive chunks whose
// lengths are positive geometric with mean TertiaryScale; each chunk is
// shuffled. Every element of xs appears exactly once in each view, at most a
// chunk away from its position. A view draws from the provider as it is
// consumed. TertiaryScale must be greater than 1.
func PermutationsInfinite[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[iter.Seq[T]], error) {
	if err := requireScaleAbove(methodPermutationsInfinite, "tertiary scale", p.tertiaryScale, 1); err != nil {
		return nil, err
	}
	m := p.tertiaryScale

	view := func(yield func(T) bool) {
		next, stop := iter.Pull(xs)
		defer stop()
		for {
			n := p.nextPositive(m)
			chunk := make([]T, 0, min(n, 1<<10))
			for len(chunk) < n {
				x, ok := next()
				if !ok {
					break
				}
				chunk = append(chunk, x)
			}
			Shuffle(p, chunk)
			for _, x := range chunk {
				if !yield(x) {
					return
				}
			}
			if len(chunk) < n {
				return
			}
		}
	}

	return seq.Repeat(iter.Seq[T](view)), nil
}
