package seq

import (
	"iter"
)

// Pair is an ordered pair of values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Map applies f to every element of s.
func Map[T, U any](s iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v := range s {
			if !yield(f(v)) {
				return
			}
		}
	}
}

// Filter keeps the elements of s for which keep returns true.
func Filter[T any](s iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range s {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements of s. It never pulls element n+1.
func Take[T any](n int, s iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		i := 0
		for v := range s {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Zip pairs the elements of as and bs, pulling one from each in turn, and
// stops when either runs out.
func Zip[A, B any](as iter.Seq[A], bs iter.Seq[B]) iter.Seq[Pair[A, B]] {
	return func(yield func(Pair[A, B]) bool) {
		nextA, stopA := iter.Pull(as)
		defer stopA()
		nextB, stopB := iter.Pull(bs)
		defer stopB()
		for {
			a, ok := nextA()
			if !ok {
				return
			}
			b, ok := nextB()
			if !ok {
				return
			}
			if !yield(Pair[A, B]{First: a, Second: b}) {
				return
			}
		}
	}
}

// Cycle repeats xs forever. Cycling an empty slice yields nothing.
func Cycle[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if len(xs) == 0 {
			return
		}
		for {
			for _, v := range xs {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Repeat yields x forever.
func Repeat[T any](x T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for yield(x) {
		}
	}
}

// Range yields lo, lo+1, ..., hi. It is empty when lo > hi.
func Range(lo, hi int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if lo > hi {
			return
		}
		for i := lo; ; i++ {
			if !yield(i) || i == hi {
				return
			}
		}
	}
}

// Values yields the elements of xs in order.
func Values[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range xs {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat yields every element of each sequence in turn.
func Concat[T any](ss ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, s := range ss {
			for v := range s {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Head returns the first element of s, or ErrNoSuchElement if s is empty.
func Head[T any](s iter.Seq[T]) (T, error) {
	for v := range s {
		return v, nil
	}
	var zero T

	return zero, ErrNoSuchElement
}

// MustHead returns the first element of s and fails the enclosing sequence
// with ErrNoSuchElement if there is none.
func MustHead[T any](s iter.Seq[T]) T {
	v, err := Head(s)
	if err != nil {
		Fail(err)
	}

	return v
}

// Collect drains a finite sequence into a slice. A sequence failure is
// returned as an error together with the elements produced before it.
func Collect[T any](s iter.Seq[T]) ([]T, error) {
	var out []T
	err := Try(func() {
		for v := range s {
			out = append(out, v)
		}
	})

	return out, err
}
