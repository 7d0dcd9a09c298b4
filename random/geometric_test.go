package random_test

import (
	"iter"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvrand/random"
)

// TestGeometric_Golden pins the first draws for the all-zero seed.
func TestGeometric_Golden(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]int{33, 109, 22, 3, 2, 7, 28, 117, 144, 5},
		take(t, 10, must(zeroProvider(t).PositiveIntegersGeometric())))
	assert.Equal(t,
		[]int{11, 49, 6, 4, 4, 18, 54, 72, 2, 60},
		take(t, 10, must(zeroProvider(t).NaturalIntegersGeometric())))
}

// TestGeometric_Preconditions checks every boundary scale of the geometric
// families, including the ones that must be accepted.
func TestGeometric_Preconditions(t *testing.T) {
	t.Parallel()

	type build func(p *random.Provider) error
	wrap := func(f func(p *random.Provider) (iter.Seq[int], error)) build {
		return func(p *random.Provider) error { _, err := f(p); return err }
	}
	natural := wrap((*random.Provider).NaturalIntegersGeometric)
	positive := wrap((*random.Provider).PositiveIntegersGeometric)
	negative := wrap((*random.Provider).NegativeIntegersGeometric)
	nonzero := wrap((*random.Provider).NonzeroIntegersGeometric)
	integers := wrap((*random.Provider).IntegersGeometric)
	rangeUp := func(a int) build {
		return func(p *random.Provider) error { _, err := p.RangeUpGeometric(a); return err }
	}
	rangeDown := func(a int) build {
		return func(p *random.Provider) error { _, err := p.RangeDownGeometric(a); return err }
	}

	tests := []struct {
		name  string
		scale int
		op    build
		ok    bool
	}{
		{"positive scale 2", 2, positive, true},
		{"positive scale 1", 1, positive, false},
		{"positive scale 0", 0, positive, false},
		{"positive scale -1", -1, positive, false},
		{"natural scale 1", 1, natural, true},
		{"natural scale 0", 0, natural, false},
		{"negative scale -2", -2, negative, true},
		{"negative scale -1", -1, negative, false},
		{"negative scale 5", 5, negative, false},
		{"nonzero scale 2", 2, nonzero, true},
		{"nonzero scale -2", -2, nonzero, true},
		{"nonzero scale 1", 1, nonzero, false},
		{"nonzero scale -1", -1, nonzero, false},
		{"nonzero scale MinInt", math.MinInt, nonzero, false},
		{"integers scale -3", -3, integers, true},
		{"integers scale 0", 0, integers, false},
		{"integers scale MaxInt", math.MaxInt, integers, false},
		{"integers scale MinInt", math.MinInt, integers, false},
		{"range up above", 10, rangeUp(5), true},
		{"range up equal", 5, rangeUp(5), false},
		{"range up below", 4, rangeUp(5), false},
		{"range up overflow", math.MaxInt, rangeUp(-1), false},
		{"range up extreme ok", math.MaxInt, rangeUp(0), true},
		{"range down below", 0, rangeDown(5), true},
		{"range down equal", 5, rangeDown(5), false},
		{"range down overflow", math.MinInt, rangeDown(0), false},
		{"range down extreme ok", math.MinInt, rangeDown(-1), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.op(random.Example().WithScale(tc.scale))
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, random.ErrIllegalState)
		})
	}
}

// TestGeometric_Domains checks the sign and bound of every family.
func TestGeometric_Domains(t *testing.T) {
	t.Parallel()

	p := random.Example().WithScale(4)
	for _, v := range take(t, 500, must(p.NaturalIntegersGeometric())) {
		require.GreaterOrEqual(t, v, 0)
	}
	for _, v := range take(t, 500, must(p.PositiveIntegersGeometric())) {
		require.GreaterOrEqual(t, v, 1)
	}
	for _, v := range take(t, 500, must(p.NonzeroIntegersGeometric())) {
		require.NotZero(t, v)
	}
	for _, v := range take(t, 500, must(p.RangeUpGeometric(-3))) {
		require.GreaterOrEqual(t, v, -3)
	}
	for _, v := range take(t, 500, must(p.RangeDownGeometric(10))) {
		require.LessOrEqual(t, v, 10)
	}
	n := random.Example().WithScale(-4)
	for _, v := range take(t, 500, must(n.NegativeIntegersGeometric())) {
		require.LessOrEqual(t, v, -1)
	}

	// Both signs show up.
	var neg, pos bool
	for _, v := range take(t, 500, must(p.IntegersGeometric())) {
		neg = neg || v < 0
		pos = pos || v > 0
	}
	assert.True(t, neg && pos)

	// Near the top of the int range draws that would overflow are skipped.
	hi := random.Example().WithScale(math.MaxInt)
	for _, v := range take(t, 50, must(hi.RangeUpGeometric(math.MaxInt-3))) {
		require.GreaterOrEqual(t, v, math.MaxInt-3)
	}
}

// TestGeometric_MeanConvergence checks that sample means approach the scale.
func TestGeometric_MeanConvergence(t *testing.T) {
	t.Parallel()
	skipLong(t)

	const draws = 200000
	tests := []struct {
		name  string
		scale int
		seq   func(p *random.Provider) (iter.Seq[int], error)
		want  float64
	}{
		{"natural 5", 5, (*random.Provider).NaturalIntegersGeometric, 5},
		{"positive 5", 5, (*random.Provider).PositiveIntegersGeometric, 5},
		{"positive 32", 32, (*random.Provider).PositiveIntegersGeometric, 32},
		{"negative -5", -5, (*random.Provider).NegativeIntegersGeometric, -5},
		{"range up 10 from 3", 10, func(p *random.Provider) (iter.Seq[int], error) { return p.RangeUpGeometric(3) }, 10},
		{"range down -10 from -3", -10, func(p *random.Provider) (iter.Seq[int], error) { return p.RangeDownGeometric(-3) }, -10},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := tc.seq(random.Example().WithScale(tc.scale))
			require.NoError(t, err)
			got := mean(take(t, draws, s))
			assert.InEpsilon(t, tc.want, got, 0.02)
		})
	}

	// Magnitude means for the signed families.
	p := random.Example().WithScale(6)
	abs := func(xs []int) []int {
		for i, x := range xs {
			xs[i] = max(x, -x)
		}
		return xs
	}
	assert.InEpsilon(t, 6.0, mean(abs(take(t, draws, must(p.NonzeroIntegersGeometric())))), 0.02)
	assert.InEpsilon(t, 6.0, mean(abs(take(t, draws, must(p.IntegersGeometric())))), 0.02)
}

// TestBigIntegers_MeanBitLength checks that bit lengths average out to the
// scale for every big family whose length is natural geometric.
func TestBigIntegers_MeanBitLength(t *testing.T) {
	t.Parallel()
	skipLong(t)

	const draws = 100000
	anchor := big.NewInt(-5000)
	tests := []struct {
		name string
		seq  func(p *random.Provider) (iter.Seq[*big.Int], error)
		base *big.Int
	}{
		{"natural", (*random.Provider).NaturalBigIntegers, nil},
		{"signed", (*random.Provider).BigIntegers, nil},
		{"range up", func(p *random.Provider) (iter.Seq[*big.Int], error) { return p.RangeUpBig(anchor) }, anchor},
		{"range down", func(p *random.Provider) (iter.Seq[*big.Int], error) { return p.RangeDownBig(anchor) }, anchor},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := tc.seq(random.Example().WithScale(12))
			require.NoError(t, err)
			lens := make([]int, 0, draws)
			for _, v := range take(t, draws, s) {
				if tc.base != nil {
					v = new(big.Int).Sub(v, tc.base)
				}
				lens = append(lens, v.BitLen())
			}
			assert.InEpsilon(t, 12.0, mean(lens), 0.02)
		})
	}
}

// TestBigIntegers_Preconditions mirrors the fixed-width boundaries.
func TestBigIntegers_Preconditions(t *testing.T) {
	t.Parallel()

	p := random.Example()
	for _, tc := range []struct {
		name  string
		floor int
		f     func(p *random.Provider) (iter.Seq[*big.Int], error)
	}{
		{"positive", 1, (*random.Provider).PositiveBigIntegers},
		{"negative", 1, (*random.Provider).NegativeBigIntegers},
		{"nonzero", 1, (*random.Provider).NonzeroBigIntegers},
		{"natural", 0, (*random.Provider).NaturalBigIntegers},
		{"integers", 0, (*random.Provider).BigIntegers},
	} {
		_, err := tc.f(p.WithScale(tc.floor))
		require.ErrorIs(t, err, random.ErrIllegalState, tc.name)
		_, err = tc.f(p.WithScale(tc.floor + 1))
		require.NoError(t, err, tc.name)
	}

	_, err := p.RangeUpBig(nil)
	require.ErrorIs(t, err, random.ErrInvalidArgument)
	_, err = p.WithScale(0).RangeDownBig(big.NewInt(3))
	require.ErrorIs(t, err, random.ErrIllegalState)
}

// TestBigIntegers_Domains checks signs, bounds and the bit-length mean.
func TestBigIntegers_Domains(t *testing.T) {
	t.Parallel()

	p := random.Example().WithScale(20)
	for _, v := range take(t, 300, must(p.PositiveBigIntegers())) {
		require.Equal(t, 1, v.Sign())
	}
	for _, v := range take(t, 300, must(p.NegativeBigIntegers())) {
		require.Equal(t, -1, v.Sign())
	}
	for _, v := range take(t, 300, must(p.NonzeroBigIntegers())) {
		require.NotZero(t, v.Sign())
	}
	for _, v := range take(t, 300, must(p.NaturalBigIntegers())) {
		require.GreaterOrEqual(t, v.Sign(), 0)
	}

	a := big.NewInt(-1000)
	for _, v := range take(t, 300, must(p.RangeUpBig(a))) {
		require.GreaterOrEqual(t, v.Cmp(a), 0)
	}
	for _, v := range take(t, 300, must(p.RangeDownBig(a))) {
		require.LessOrEqual(t, v.Cmp(a), 0)
	}
	assert.Equal(t, int64(-1000), a.Int64(), "bound must not be modified")

	if testing.Short() {
		return
	}
	lengths := make([]int, 0, 100000)
	for _, v := range take(t, 100000, must(p.PositiveBigIntegers())) {
		lengths = append(lengths, v.BitLen())
	}
	assert.InEpsilon(t, 20.0, mean(lengths), 0.02)
}
