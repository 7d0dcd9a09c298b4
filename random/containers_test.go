package random_test

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"pgregory.net/rapid"

	"github.com/katalvlaran/lvrand/random"
	"github.com/katalvlaran/lvrand/seq"
)

// ContainersSuite exercises the size-controlled container families over a
// fresh example provider per test.
type ContainersSuite struct {
	suite.Suite
	p *random.Provider
}

func (s *ContainersSuite) SetupTest() {
	s.p = random.Example()
}

func TestContainersSuite(t *testing.T) {
	suite.Run(t, new(ContainersSuite))
}

func (s *ContainersSuite) digits() iter.Seq[int] {
	return random.Range(s.p, 0, 9)
}

// TestListsGolden pins Lists for the all-zero seed at scale 3.
func (s *ContainersSuite) TestListsGolden() {
	p := zeroProvider(s.T(), random.WithScales(3, 8, 2))
	got := take(s.T(), 4, must(random.Lists(p, random.Range(p, 0, 9))))
	s.Equal([][]int{{2, 4, 8, 9, 4, 9, 4}, {4, 0, 9, 7, 7, 4}, {}, {0, 6, 1, 4, 9, 6, 4}}, got)
}

func (s *ContainersSuite) TestListsPreconditions() {
	_, err := random.Lists(s.p.WithScale(0), s.digits())
	s.ErrorIs(err, random.ErrIllegalState)

	_, err = random.ListsAtLeast(s.p.WithScale(5), 5, s.digits())
	s.ErrorIs(err, random.ErrIllegalState)
	_, err = random.ListsAtLeast(s.p, -1, s.digits())
	s.ErrorIs(err, random.ErrInvalidArgument)

	_, err = random.ListsOfSize(-1, s.digits())
	s.ErrorIs(err, random.ErrInvalidArgument)
	_, err = random.BagsOfSize(-1, s.digits())
	s.ErrorIs(err, random.ErrInvalidArgument)
}

func (s *ContainersSuite) TestListsSizes() {
	for _, xs := range take(s.T(), 100, must(random.ListsOfSize(3, s.digits()))) {
		s.Len(xs, 3)
	}
	p := s.p.WithScale(6)
	digits := random.Range(p, 0, 9)
	for _, xs := range take(s.T(), 100, must(random.ListsAtLeast(p, 4, digits))) {
		s.GreaterOrEqual(len(xs), 4)
	}
	for _, xs := range take(s.T(), 100, must(random.Bags(p, digits))) {
		s.True(slices.IsSorted(xs))
	}
	for _, xs := range take(s.T(), 100, must(random.BagsAtLeast(p, 2, digits))) {
		s.True(slices.IsSorted(xs))
		s.GreaterOrEqual(len(xs), 2)
	}
}

func (s *ContainersSuite) TestListsOfLists() {
	p := s.p.WithScale(4).WithSecondaryScale(3)
	for _, xss := range take(s.T(), 50, must(random.ListsOfLists(p, random.Range(p, 0, 9)))) {
		for _, xs := range xss {
			for _, x := range xs {
				s.True(x >= 0 && x <= 9)
			}
		}
	}
	_, err := random.ListsOfLists(s.p.WithSecondaryScale(0), s.digits())
	s.ErrorIs(err, random.ErrIllegalState)
}

// TestSourceFailures checks how a finite element source surfaces: empty at
// the first pull is an invalid argument, running out later is no-such-element.
func (s *ContainersSuite) TestSourceFailures() {
	empty, err := seq.Collect(seq.Take(1, must(random.ListsOfSize(2, seq.Values([]int{})))))
	s.Empty(empty)
	s.ErrorIs(err, random.ErrInvalidArgument)

	short, err := seq.Collect(seq.Take(2, must(random.ListsOfSize(2, seq.Values([]int{1, 2, 3})))))
	s.Equal([][]int{{1, 2}}, short)
	s.ErrorIs(err, random.ErrNoSuchElement)

	zero := take(s.T(), 3, must(random.ListsOfSize(0, seq.Values([]int{}))))
	s.Len(zero, 3)
}

func (s *ContainersSuite) TestDistinct() {
	p := s.p.WithScale(4)
	for _, xs := range take(s.T(), 200, must(random.DistinctLists(p, random.Range(p, 0, 5)))) {
		s.LessOrEqual(len(xs), 6)
		s.Len(uniq(xs), len(xs))
	}
	for _, xs := range take(s.T(), 100, must(random.DistinctListsOfSize(4, random.Range(p, 0, 5)))) {
		s.Len(uniq(xs), 4)
	}
	for _, xs := range take(s.T(), 100, must(random.DistinctListsAtLeast(p, 2, random.Range(p, 0, 50)))) {
		s.GreaterOrEqual(len(xs), 2)
		s.Len(uniq(xs), len(xs))
	}
	for _, xs := range take(s.T(), 200, must(random.Subsets(p, random.Range(p, 0, 5)))) {
		s.True(slices.IsSorted(xs))
		s.Len(uniq(xs), len(xs))
	}
	for _, xs := range take(s.T(), 100, must(random.SubsetsOfSize(3, random.Range(p, 0, 5)))) {
		s.True(slices.IsSorted(xs))
		s.Len(uniq(xs), 3)
	}
	for _, xs := range take(s.T(), 100, must(random.SubsetsAtLeast(p, 1, random.Range(p, 0, 50)))) {
		s.NotEmpty(xs)
	}

	// Two values cannot fill three distinct slots.
	_, err := seq.Collect(seq.Take(1, must(random.DistinctListsOfSize(3, random.Range(p, 0, 1)))))
	s.ErrorIs(err, random.ErrNoSuchElement)

	_, err = random.SubsetsAtLeast(p, 4, random.Range(p, 0, 5))
	s.ErrorIs(err, random.ErrIllegalState)
}

func (s *ContainersSuite) TestStrings() {
	p := s.p.WithScale(5)
	for _, str := range take(s.T(), 100, must(p.StringsOfSize(4, "abc"))) {
		s.Equal(4, len(str))
		s.Empty(strings.Trim(str, "abc"))
	}
	for _, str := range take(s.T(), 100, must(p.StringsAtLeast(2, "xy"))) {
		s.GreaterOrEqual(len(str), 2)
	}
	for _, str := range take(s.T(), 100, must(p.StringBags("dcba"))) {
		s.True(slices.IsSorted([]rune(str)))
	}
	for _, str := range take(s.T(), 100, must(p.Strings())) {
		s.True(strings.ToValidUTF8(str, "?") == str)
	}
	for _, strs := range take(s.T(), 50, must(p.StringLists("ab"))) {
		for _, str := range strs {
			s.Empty(strings.Trim(str, "ab"))
		}
	}

	s.Equal([]string{"", ""}, take(s.T(), 2, must(p.StringsFrom(""))))
	s.Equal([]string{"", ""}, take(s.T(), 2, must(p.StringsOfSize(0, ""))))
	_, err := p.StringsOfSize(1, "")
	s.ErrorIs(err, random.ErrInvalidArgument)
	_, err = p.StringsAtLeast(1, "")
	s.ErrorIs(err, random.ErrInvalidArgument)
	_, err = p.WithScale(2).StringsAtLeast(2, "ab")
	s.ErrorIs(err, random.ErrIllegalState)
}

func (s *ContainersSuite) TestDistinctStrings() {
	p := s.p.WithScale(5)
	for _, str := range take(s.T(), 100, must(p.DistinctStrings("aabbcc"))) {
		s.LessOrEqual(len(str), 3)
		s.Len(uniq([]rune(str)), len([]rune(str)))
	}
	for _, str := range take(s.T(), 50, must(p.DistinctStringsOfSize(3, "aabc"))) {
		s.ElementsMatch([]rune("abc"), []rune(str))
	}
	for _, str := range take(s.T(), 100, must(p.StringSubsets("zyx"))) {
		s.True(slices.IsSorted([]rune(str)))
		s.Len(uniq([]rune(str)), len(str))
	}
	_, err := p.DistinctStringsOfSize(4, "aabc")
	s.ErrorIs(err, random.ErrInvalidArgument)
	_, err = p.DistinctStringsOfSize(-1, "abc")
	s.ErrorIs(err, random.ErrInvalidArgument)
}

func (s *ContainersSuite) TestWithElement() {
	p := s.p.WithScale(3)
	xs := must(random.WithElement(p, -1, random.Range(p, 0, 9)))
	got := take(s.T(), 40000, xs)
	special := 0
	for _, x := range got {
		if x == -1 {
			special++
		}
	}
	// Frequency is 1/(scale+1).
	s.InDelta(0.25, float64(special)/float64(len(got)), 0.015)

	_, err := random.WithElement[*int](p, nil, seq.Repeat(new(int)))
	s.ErrorIs(err, random.ErrInvalidArgument)
	_, err = random.WithElement(s.p.WithScale(0), 1, s.digits())
	s.ErrorIs(err, random.ErrIllegalState)

	var nils, vals int
	for _, v := range take(s.T(), 1000, must(random.WithNull(p, random.Range(p, 0, 9)))) {
		if v == nil {
			nils++
			continue
		}
		vals++
		s.True(*v >= 0 && *v <= 9)
	}
	s.Positive(nils)
	s.Positive(vals)

	var empties int
	for _, o := range take(s.T(), 1000, must(random.Optionals(p, random.Range(p, 0, 9)))) {
		if !o.Valid {
			empties++
			s.Equal("Optional.empty", o.String())
		}
	}
	s.Positive(empties)
	_, err = random.Optionals(s.p.WithScale(0), s.digits())
	s.ErrorIs(err, random.ErrIllegalState)
}

func TestPermutations_Golden(t *testing.T) {
	t.Parallel()

	got := take(t, 3, random.PermutationsFinite(zeroProvider(t), []int{1, 2, 3, 4, 5}))
	assert.Equal(t, [][]int{{1, 5, 3, 2, 4}, {3, 1, 4, 5, 2}, {5, 2, 1, 4, 3}}, got)
}

// TestShuffle_IsPermutation checks that shuffling keeps the multiset.
func TestShuffle_IsPermutation(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		xs := rapid.SliceOf(rapid.IntRange(-5, 5)).Draw(rt, "xs")
		ys := slices.Clone(xs)
		random.Shuffle(random.Example(), ys)
		require.ElementsMatch(rt, xs, ys)
	})
}

func TestStringPermutations(t *testing.T) {
	t.Parallel()

	for _, s := range take(t, 50, random.Example().StringPermutations("héllo")) {
		assert.ElementsMatch(t, []rune("héllo"), []rune(s))
	}
	assert.Equal(t, []string{"", ""}, take(t, 2, random.Example().StringPermutations("")))
}

func TestPrefixPermutations(t *testing.T) {
	t.Parallel()

	p := random.Example().WithScale(5)
	_, err := random.PrefixPermutations(p.WithScale(0), seq.Range(0, 10))
	require.ErrorIs(t, err, random.ErrIllegalState)

	want := take(t, 300, seq.Range(0, 1<<20))
	for _, view := range take(t, 20, must(random.PrefixPermutations(p, seq.Range(0, 1<<20)))) {
		got := take(t, 300, view)
		require.Equal(t, want[100:], got[100:], "the tail passes through in order")
		require.ElementsMatch(t, want, got)
	}

	// A single-pass source: every view is a permutation of one consecutive run.
	next := 0
	counter := func(yield func(int) bool) {
		for {
			next++
			if !yield(next) {
				return
			}
		}
	}
	for _, view := range take(t, 20, must(random.PrefixPermutations(p, counter))) {
		got := take(t, 200, view)
		lo := slices.Min(got)
		run := make([]int, len(got))
		for i := range run {
			run[i] = lo + i
		}
		require.ElementsMatch(t, run, got)
		require.Equal(t, run[100:], got[100:], "the tail continues the prefix in order")
	}

	// A prefix longer than the input is capped.
	for _, view := range take(t, 20, must(random.PrefixPermutations(p.WithScale(50), seq.Range(1, 3)))) {
		got, err := seq.Collect(view)
		require.NoError(t, err)
		require.ElementsMatch(t, []int{1, 2, 3}, got)
	}
}

func TestPermutationsInfinite(t *testing.T) {
	t.Parallel()

	p := random.Example().WithTertiaryScale(4)
	_, err := random.PermutationsInfinite(p.WithTertiaryScale(1), seq.Range(0, 10))
	require.ErrorIs(t, err, random.ErrIllegalState)

	for _, view := range take(t, 10, must(random.PermutationsInfinite(p, seq.Range(0, 999)))) {
		got, err := seq.Collect(view)
		require.NoError(t, err)
		require.ElementsMatch(t, take(t, 1000, seq.Range(0, 999)), got)
	}

	// Infinite input stays lazy.
	view := seq.MustHead(must(random.PermutationsInfinite(p, seq.Range(0, 1<<40))))
	assert.Len(t, take(t, 50, view), 50)
}

func TestCartesianProduct(t *testing.T) {
	t.Parallel()

	p := random.Example()
	_, err := random.CartesianProduct[int](p, nil)
	require.ErrorIs(t, err, random.ErrInvalidArgument)
	_, err = random.CartesianProduct(p, [][]int{{1}, {}})
	require.ErrorIs(t, err, random.ErrInvalidArgument)

	axes := [][]string{{"a", "b"}, {"x"}, {"1", "2", "3"}}
	for _, tuple := range take(t, 100, must(random.CartesianProduct(p, axes))) {
		require.Len(t, tuple, 3)
		assert.Contains(t, axes[0], tuple[0])
		assert.Equal(t, "x", tuple[1])
		assert.Contains(t, axes[2], tuple[2])
	}
}

func TestDependentPairsInfinite(t *testing.T) {
	t.Parallel()

	p := random.Example()
	_, err := random.DependentPairsInfinite[int, int](random.Range(p, 1, 3), nil)
	require.ErrorIs(t, err, random.ErrInvalidArgument)

	tens := func(k int) iter.Seq[int] { return seq.Repeat(10 * k) }
	for _, pr := range take(t, 100, must(random.DependentPairsInfinite(random.Range(p, 1, 3), tens))) {
		assert.Equal(t, 10*pr.First, pr.Second)
	}

	// A finite key sequence runs dry.
	got, err := seq.Collect(seq.Take(3, must(random.DependentPairsInfinite(seq.Values([]int{1, 2}), tens))))
	require.ErrorIs(t, err, random.ErrNoSuchElement)
	assert.Len(t, got, 2)

	// A value sequence that is exhaustive rather than random runs dry too.
	once := func(k int) iter.Seq[int] { return seq.Values([]int{k}) }
	_, err = seq.Collect(seq.Take(3, must(random.DependentPairsInfinite(seq.Repeat(7), once))))
	require.ErrorIs(t, err, random.ErrNoSuchElement)
}

func TestSublists_Golden(t *testing.T) {
	t.Parallel()

	got := take(t, 5, random.Sublists(zeroProvider(t), []int{0, 1, 2, 3, 4}))
	assert.Equal(t, [][]int{{3}, {2}, {1}, {}, {4}}, got)
	assert.Equal(t, []string{"d", "c", "b", "", "e"}, take(t, 5, zeroProvider(t).Substrings("abcde")))
}

func TestListsWithSublists(t *testing.T) {
	t.Parallel()

	p := random.Example().WithScale(3)
	subs := seq.Cycle([][]int{{100, 101}, {200}})
	for _, xs := range take(t, 100, must(random.ListsWithSublists(p, subs, random.Range(p, 0, 9)))) {
		assert.True(t, containsRun(xs, []int{100, 101}) || containsRun(xs, []int{200}), "%v", xs)
	}
	for _, xs := range take(t, 100, must(random.ListsWithElement(p, 42, random.Range(p, 0, 9)))) {
		assert.Contains(t, xs, 42)
	}
	for _, s := range take(t, 100, must(p.StringsWithChar('!', "ab"))) {
		assert.Contains(t, s, "!")
	}
	for _, s := range take(t, 100, must(p.StringsWithSubstrings(seq.Repeat("cat"), "ab"))) {
		assert.Contains(t, s, "cat")
	}

	_, err := random.ListsWithElement[*int](p, nil, seq.Repeat(new(int)))
	require.ErrorIs(t, err, random.ErrInvalidArgument)
	_, err = random.ListsWithSublists(p.WithScale(0), subs, random.Range(p, 0, 9))
	require.ErrorIs(t, err, random.ErrIllegalState)
}

func uniq[T comparable](xs []T) map[T]struct{} {
	m := make(map[T]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}

	return m
}

func containsRun(xs, run []int) bool {
	for i := 0; i+len(run) <= len(xs); i++ {
		if slices.Equal(xs[i:i+len(run)], run) {
			return true
		}
	}

	return false
}

func lengths[T any](xss [][]T) []int {
	out := make([]int, len(xss))
	for i, xs := range xss {
		out[i] = len(xs)
	}

	return out
}

// TestContainers_MeanLength checks that container lengths average out to the
// scale that sizes them.
func TestContainers_MeanLength(t *testing.T) {
	t.Parallel()
	skipLong(t)

	const draws = 100000
	tests := []struct {
		name string
		lens func(t *testing.T, p *random.Provider) []int
		want float64
	}{
		{"lists scale 5", func(t *testing.T, p *random.Provider) []int {
			p = p.WithScale(5)
			return lengths(take(t, draws, must(random.Lists(p, random.Range(p, 0, 9)))))
		}, 5},
		{"lists at least 2 scale 6", func(t *testing.T, p *random.Provider) []int {
			p = p.WithScale(6)
			return lengths(take(t, draws, must(random.ListsAtLeast(p, 2, random.Range(p, 0, 9)))))
		}, 6},
		{"strings scale 7", func(t *testing.T, p *random.Provider) []int {
			out := make([]int, 0, draws)
			for _, s := range take(t, draws, must(p.WithScale(7).StringsFrom("abc"))) {
				out = append(out, len(s))
			}
			return out
		}, 7},
		{"inner lists secondary scale 4", func(t *testing.T, p *random.Provider) []int {
			p = p.WithScale(3).WithSecondaryScale(4)
			var out []int
			for _, xss := range take(t, draws/2, must(random.ListsOfLists(p, random.Range(p, 0, 9)))) {
				out = append(out, lengths(xss)...)
			}
			return out
		}, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.InEpsilon(t, tc.want, mean(tc.lens(t, random.Example())), 0.02)
		})
	}
}
