package random_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/random"
	"github.com/katalvlaran/lvrand/seq"
)

// zeroProvider returns a provider over the all-zero seed.
func zeroProvider(t require.TestingT, opts ...random.Option) *random.Provider {
	p, err := random.New(make([]int32, random.SeedSize), opts...)
	require.NoError(t, err)

	return p
}

// take collects the first n elements of s and fails the test on a sequence
// failure.
func take[T any](t require.TestingT, n int, s iter.Seq[T]) []T {
	out, err := seq.Collect(seq.Take(n, s))
	require.NoError(t, err)

	return out
}

// must unwraps a constructor result whose preconditions the test has
// already arranged to hold.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

// mean returns the arithmetic mean of xs.
func mean(xs []int) float64 {
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}

	return sum / float64(len(xs))
}

func skipLong(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test skipped in -short mode")
	}
}
