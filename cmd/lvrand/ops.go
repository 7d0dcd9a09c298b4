package main

import (
	"fmt"
	"iter"
	"math/big"
	"slices"
	"strings"

	"github.com/katalvlaran/lvrand/random"
	"github.com/katalvlaran/lvrand/readers"
	"github.com/katalvlaran/lvrand/seq"
)

// sample is one rendered value. num feeds -stats: the value itself for
// numeric operations, the length for containers.
type sample struct {
	text string
	num  float64
}

type operation struct {
	help string
	run  func(p *random.Provider, c *Config) (iter.Seq[sample], error)
}

func numbers[T int | int32 | int64 | uint8](s iter.Seq[T]) iter.Seq[sample] {
	return seq.Map(s, func(v T) sample {
		return sample{text: fmt.Sprint(v), num: float64(v)}
	})
}

func texts[T any](s iter.Seq[T]) iter.Seq[sample] {
	return seq.Map(s, func(v T) sample { return sample{text: fmt.Sprint(v), num: 1} })
}

func bigs(s iter.Seq[*big.Int]) iter.Seq[sample] {
	return seq.Map(s, func(v *big.Int) sample {
		return sample{text: v.String(), num: float64(v.BitLen())}
	})
}

func lists[T any](s iter.Seq[[]T]) iter.Seq[sample] {
	return seq.Map(s, func(xs []T) sample {
		parts := make([]string, len(xs))
		for i, x := range xs {
			parts[i] = fmt.Sprint(x)
		}

		return sample{text: "[" + strings.Join(parts, ", ") + "]", num: float64(len(xs))}
	})
}

func strs(s iter.Seq[string]) iter.Seq[sample] {
	return seq.Map(s, func(v string) sample {
		return sample{text: fmt.Sprintf("%q", v), num: float64(len([]rune(v)))}
	})
}

// lift adapts a fallible constructor to a renderer.
func lift[T any](s iter.Seq[T], err error, render func(iter.Seq[T]) iter.Seq[sample]) (iter.Seq[sample], error) {
	if err != nil {
		return nil, err
	}

	return render(s), nil
}

// elementPool samples the configured elements read as integers. It fails if
// any element does not parse.
func elementPool(p *random.Provider, c *Config) (iter.Seq[int], error) {
	return random.UniformSampleParsed(p, c.Elements, readers.ReadInt)
}

// sized picks the fixed-size form when c.Size >= 0.
func sized[T any](c *Config, variable func() (iter.Seq[T], error), fixed func(n int) (iter.Seq[T], error)) (iter.Seq[T], error) {
	if *c.Size >= 0 {
		return fixed(*c.Size)
	}

	return variable()
}

var operations = map[string]operation{
	"integers": {"uniform int32 values", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return numbers(p.Integers()), nil
	}},
	"longs": {"uniform int64 values", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return numbers(p.Longs()), nil
	}},
	"bytes": {"uniform uint8 values", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return numbers(random.Uniform[uint8](p)), nil
	}},
	"booleans": {"true or false", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return texts(p.Booleans()), nil
	}},
	"orderings": {"<, = or >", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return texts(p.Orderings()), nil
	}},
	"range": {"uniform integers in [lo, hi]", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		return numbers(random.Range(p, *c.Lo, *c.Hi)), nil
	}},
	"natural-geometric": {"integers >= 0 with mean scale", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.NaturalIntegersGeometric()
		return lift(s, err, numbers[int])
	}},
	"positive-geometric": {"integers >= 1 with mean scale", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.PositiveIntegersGeometric()
		return lift(s, err, numbers[int])
	}},
	"negative-geometric": {"integers <= -1 with mean scale", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.NegativeIntegersGeometric()
		return lift(s, err, numbers[int])
	}},
	"nonzero-geometric": {"non-zero integers, magnitude mean |scale|", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.NonzeroIntegersGeometric()
		return lift(s, err, numbers[int])
	}},
	"integers-geometric": {"integers, magnitude mean |scale|", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.IntegersGeometric()
		return lift(s, err, numbers[int])
	}},
	"range-up-geometric": {"integers >= lo with mean scale", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		s, err := p.RangeUpGeometric(int(*c.Lo))
		return lift(s, err, numbers[int])
	}},
	"range-down-geometric": {"integers <= hi with mean scale", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		s, err := p.RangeDownGeometric(int(*c.Hi))
		return lift(s, err, numbers[int])
	}},
	"big-integers": {"big integers, bit length mean scale", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.BigIntegers()
		return lift(s, err, bigs)
	}},
	"positive-big-integers": {"big integers >= 1, bit length mean scale", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		s, err := p.PositiveBigIntegers()
		return lift(s, err, bigs)
	}},
	// Falls back to quoted strings when the elements are not all integers.
	"sample": {"uniform choice among elements", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		if s, err := elementPool(p, c); err == nil {
			return numbers(s), nil
		}
		s, err := random.UniformSample(p, c.Elements)
		return lift(s, err, texts[string])
	}},
	"lists": {"lists of integers in [lo, hi]", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		xs := random.Range(p, *c.Lo, *c.Hi)
		s, err := sized(c,
			func() (iter.Seq[[]int64], error) { return random.Lists(p, xs) },
			func(n int) (iter.Seq[[]int64], error) { return random.ListsOfSize(n, xs) })
		return lift(s, err, lists[int64])
	}},
	"bags": {"sorted lists of integers in [lo, hi]", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		xs := random.Range(p, *c.Lo, *c.Hi)
		s, err := sized(c,
			func() (iter.Seq[[]int64], error) { return random.Bags(p, xs) },
			func(n int) (iter.Seq[[]int64], error) { return random.BagsOfSize(n, xs) })
		return lift(s, err, lists[int64])
	}},
	"subsets": {"sorted distinct integers in [lo, hi]", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		xs := random.Range(p, *c.Lo, *c.Hi)
		s, err := sized(c,
			func() (iter.Seq[[]int64], error) { return random.Subsets(p, xs) },
			func(n int) (iter.Seq[[]int64], error) { return random.SubsetsOfSize(n, xs) })
		return lift(s, err, lists[int64])
	}},
	"distinct-lists": {"distinct integers in [lo, hi]", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		xs := random.Range(p, *c.Lo, *c.Hi)
		s, err := sized(c,
			func() (iter.Seq[[]int64], error) { return random.DistinctLists(p, xs) },
			func(n int) (iter.Seq[[]int64], error) { return random.DistinctListsOfSize(n, xs) })
		return lift(s, err, lists[int64])
	}},
	"strings": {"strings over chars (any rune if chars is empty)", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		if c.Chars == "" && *c.Size < 0 {
			s, err := p.Strings()
			return lift(s, err, strs)
		}
		s, err := sized(c,
			func() (iter.Seq[string], error) { return p.StringsFrom(c.Chars) },
			func(n int) (iter.Seq[string], error) { return p.StringsOfSize(n, c.Chars) })
		return lift(s, err, strs)
	}},
	"string-subsets": {"sorted distinct characters of chars", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		s, err := p.StringSubsets(c.Chars)
		return lift(s, err, strs)
	}},
	"permutations": {"permutations of elements", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		return lists(random.PermutationsFinite(p, c.Elements)), nil
	}},
	"sublists": {"contiguous sublists of elements", func(p *random.Provider, c *Config) (iter.Seq[sample], error) {
		return lists(random.Sublists(p, c.Elements)), nil
	}},
	"uuids": {"version 4 UUIDs", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return texts(p.UUIDs()), nil
	}},
	"providers": {"providers with random seeds", func(p *random.Provider, _ *Config) (iter.Seq[sample], error) {
		return texts(p.RandomProvidersDefault()), nil
	}},
}

func operationNames() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}
