// SPDX-License-Identifier: MIT
// Package: lvrand/random
//
// compound.go - tuples built from several sources: cartesian products over
// finite axes and pairs whose value sequence depends on the key.

package random

import (
	"iter"
	"slices"

	"github.com/katalvlaran/lvrand/seq"
)

const (
	methodCartesianProduct       = "CartesianProduct"
	methodDependentPairsInfinite = "DependentPairsInfinite"
)

// CartesianProduct yields tuples holding one uniformly chosen candidate per
// axis. There must be at least one axis and no axis may be empty.
func CartesianProduct[T any](p *Provider, axes [][]T) (iter.Seq[[]T], error) {
	if len(axes) == 0 {
		return nil, invalidArgf(methodCartesianProduct, "no axes")
	}
	cols := make([][]T, len(axes))
	for i, axis := range axes {
		if len(axis) == 0 {
			return nil, invalidArgf(methodCartesianProduct, "axis %d is empty", i)
		}
		cols[i] = slices.Clone(axis)
	}

	return repeatedly(func() []T {
		tuple := make([]T, len(cols))
		for i, axis := range cols {
			tuple[i] = axis[p.nextIntBelow(len(axis))]
		}

		return tuple
	}), nil
}

// DependentPairsInfinite yields pairs (k, v) where k is the next key of keys
// and v is the next value of f(k). f is called once per distinct key; later
// occurrences of a key continue its value sequence. The sequence fails with
// ErrNoSuchElement when keys or a value sequence runs out.
func DependentPairsInfinite[K comparable, V any](keys iter.Seq[K], f func(K) iter.Seq[V]) (iter.Seq[seq.Pair[K, V]], error) {
	if f == nil {
		return nil, invalidArgf(methodDependentPairsInfinite, "value function must not be nil")
	}

	return func(yield func(seq.Pair[K, V]) bool) {
		nextKey, stopKeys := iter.Pull(keys)
		defer stopKeys()
		values := make(map[K]func() (V, bool))
		var stops []func()
		defer func() {
			for _, stop := range stops {
				stop()
			}
		}()
		for {
			k, ok := nextKey()
			if !ok {
				seq.Fail(noSuchElementf(methodDependentPairsInfinite, "key sequence ran out"))
			}
			next, known := values[k]
			if !known {
				vs := f(k)
				if vs == nil {
					seq.Fail(invalidArgf(methodDependentPairsInfinite, "no value sequence for key %v", k))
				}
				var stop func()
				next, stop = iter.Pull(vs)
				values[k] = next
				stops = append(stops, stop)
			}
			v, ok := next()
			if !ok {
				seq.Fail(noSuchElementf(methodDependentPairsInfinite, "value sequence for key %v ran out", k))
			}
			if !yield(seq.Pair[K, V]{First: k, Second: v}) {
				return
			}
		}
	}, nil
}
