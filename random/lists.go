// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// lists.go - containers of controlled size over a caller-supplied element
// source.
//
// Sizes:
//   - Lists:         natural geometric, mean Scale (Scale > 0)
//   - ListsAtLeast:  min + natural geometric with mean Scale-min (Scale > min >= 0)
//   - ListsOfSize:   exactly n (n >= 0)
//
// Element sources are iter.Seq values and may draw from the same provider.
// A source that is empty at its first pull fails the sequence with
// ErrInvalidArgument; one that runs out later fails it with ErrNoSuchElement.

package random

import (
	"cmp"
	"iter"
	"slices"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodLists        = "Lists"
	methodListsAtLeast = "ListsAtLeast"
	methodListsOfSize  = "ListsOfSize"
	methodBags         = "Bags"
	methodBagsAtLeast  = "BagsAtLeast"
	methodBagsOfSize   = "BagsOfSize"
	methodListsOfLists = "ListsOfLists"
)

// source pulls elements from an iter.Seq and turns exhaustion into a
// sequence failure attributed to method.
type source[T any] struct {
	method string
	next   func() (T, bool)
	pulled bool
}

func pull[T any](method string, xs iter.Seq[T]) (*source[T], func()) {
	next, stop := iter.Pull(xs)

	return &source[T]{method: method, next: next}, stop
}

func (s *source[T]) take() T {
	x, ok := s.next()
	if !ok {
		if !s.pulled {
			seq.Fail(invalidArgf(s.method, "element source is empty"))
		}
		seq.Fail(noSuchElementf(s.method, "element source ran out"))
	}
	s.pulled = true

	return x
}

func (s *source[T]) fill(n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = s.take()
	}

	return out
}

// sizer draws container sizes.
type sizer func() int

func (p *Provider) naturalSizes() sizer {
	m := p.scale

	return func() int { return p.nextNatural(m) }
}

func (p *Provider) sizesAtLeast(minSize int) sizer {
	m := p.scale - minSize

	return func() int { return minSize + p.nextNatural(m) }
}

func fixedSize(n int) sizer { return func() int { return n } }

func listsOf[T any](method string, xs iter.Seq[T], size sizer) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		src, stop := pull(method, xs)
		defer stop()
		for {
			if !yield(src.fill(size())) {
				return
			}
		}
	}
}

// Lists yields lists of elements drawn from xs whose lengths have mean Scale.
func Lists[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireScaleAbove(methodLists, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return listsOf(methodLists, xs, p.naturalSizes()), nil
}

// ListsAtLeast yields lists of at least minSize elements whose lengths have
// mean Scale.
func ListsAtLeast[T any](p *Provider, minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateAtLeast(methodListsAtLeast, p.scale, minSize); err != nil {
		return nil, err
	}

	return listsOf(methodListsAtLeast, xs, p.sizesAtLeast(minSize)), nil
}

// ListsOfSize yields lists of exactly n elements.
func ListsOfSize[T any](n int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireNonNegative(methodListsOfSize, "size", n); err != nil {
		return nil, err
	}

	return listsOf(methodListsOfSize, xs, fixedSize(n)), nil
}

func sorted[T cmp.Ordered](s iter.Seq[[]T]) iter.Seq[[]T] {
	return seq.Map(s, func(xs []T) []T {
		slices.Sort(xs)
		return xs
	})
}

// Bags yields sorted lists (multisets) drawn like Lists.
func Bags[T cmp.Ordered](p *Provider, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireScaleAbove(methodBags, "scale", p.scale, 0); err != nil {
		return nil, err
	}

	return sorted(listsOf(methodBags, xs, p.naturalSizes())), nil
}

// BagsAtLeast yields sorted lists drawn like ListsAtLeast.
func BagsAtLeast[T cmp.Ordered](p *Provider, minSize int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := validateAtLeast(methodBagsAtLeast, p.scale, minSize); err != nil {
		return nil, err
	}

	return sorted(listsOf(methodBagsAtLeast, xs, p.sizesAtLeast(minSize))), nil
}

// BagsOfSize yields sorted lists of exactly n elements.
func BagsOfSize[T cmp.Ordered](n int, xs iter.Seq[T]) (iter.Seq[[]T], error) {
	if err := requireNonNegative(methodBagsOfSize, "size", n); err != nil {
		return nil, err
	}

	return sorted(listsOf(methodBagsOfSize, xs, fixedSize(n))), nil
}

// ListsOfLists yields lists with mean length Scale whose elements are lists
// with mean length SecondaryScale.
func ListsOfLists[T any](p *Provider, xs iter.Seq[T]) (iter.Seq[[][]T], error) {
	if err := requireScaleAbove(methodListsOfLists, "scale", p.scale, 0); err != nil {
		return nil, err
	}
	if err := requireScaleAbove(methodListsOfLists, "secondary scale", p.secondaryScale, 0); err != nil {
		return nil, err
	}
	outer := p.naturalSizes()
	m := p.secondaryScale
	inner := func() int { return p.nextNatural(m) }

	return func(yield func([][]T) bool) {
		src, stop := pull(methodListsOfLists, xs)
		defer stop()
		for {
			out := make([][]T, outer())
			for i := range out {
				out[i] = src.fill(inner())
			}
			if !yield(out) {
				return
			}
		}
	}, nil
}
