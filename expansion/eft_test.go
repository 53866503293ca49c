// Package expansion_test exercises the error-free transforms and
// expansion-algebra routines against their defining identities: every
// EFT must reconstruct its operands' exact sum/product, and every
// Expansion produced by Sum/Scale/Multiply/Dot must still satisfy the
// non-overlapping, increasing-magnitude invariant.
package expansion_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geompred/expansion"
)

func init() {
	expansion.Init()
}

// bigOf converts a float64 operand to an exact big.Float for use as an
// oracle against the EFT outputs.
func bigOf(a float64) *big.Float {
	return new(big.Float).SetPrec(200).SetFloat64(a)
}

func TestTwoSum_ExactReconstruction(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b float64 }{
		{1.0, 1e-20},
		{1e300, -1e300},
		{0.1, 0.2},
		{math.MaxFloat64 / 2, math.MaxFloat64 / 4},
		{-7.5, 7.5},
		{0, 0},
	}
	for _, c := range cases {
		hi, lo := expansion.TwoSum(c.a, c.b)
		require.Equal(t, c.a+c.b, hi)

		want := new(big.Float).Add(bigOf(c.a), bigOf(c.b))
		got := new(big.Float).Add(bigOf(hi), bigOf(lo))
		diff := new(big.Float).Sub(want, got)
		require.True(t, diff.Cmp(big.NewFloat(0)) == 0, "TwoSum(%v,%v): hi+lo != a+b exactly", c.a, c.b)
	}
}

func TestFastTwoSum_RequiresMagnitudeOrdering(t *testing.T) {
	t.Parallel()
	a, b := 1e10, 3.0
	hi, lo := expansion.FastTwoSum(a, b)
	require.Equal(t, a+b, hi)

	want := new(big.Float).Add(bigOf(a), bigOf(b))
	got := new(big.Float).Add(bigOf(hi), bigOf(lo))
	require.Zero(t, want.Cmp(got))
}

func TestTwoDiff_ExactReconstruction(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b float64 }{
		{1.0, 1e-20},
		{5.5, 5.5},
		{1e300, 1e-300},
		{-3.0, 4.0},
	}
	for _, c := range cases {
		hi, lo := expansion.TwoDiff(c.a, c.b)
		require.Equal(t, c.a-c.b, hi)

		want := new(big.Float).Sub(bigOf(c.a), bigOf(c.b))
		got := new(big.Float).Add(bigOf(hi), bigOf(lo))
		require.Zero(t, want.Cmp(got))
	}
}

func TestFastTwoDiff_RequiresMagnitudeOrdering(t *testing.T) {
	t.Parallel()
	a, b := 1e10, 3.0
	hi, lo := expansion.FastTwoDiff(a, b)
	want := new(big.Float).Sub(bigOf(a), bigOf(b))
	got := new(big.Float).Add(bigOf(hi), bigOf(lo))
	require.Zero(t, want.Cmp(got))
}

func TestSplit_ReconstructsOperand(t *testing.T) {
	t.Parallel()
	for _, a := range []float64{1.0, 123456789.123, -9.87654321e10, 0, 1e-300} {
		hi, lo := expansion.Split(a)
		require.Equal(t, a, hi+lo)
	}
}

func TestTwoProduct_ExactReconstruction(t *testing.T) {
	t.Parallel()
	cases := []struct{ a, b float64 }{
		{1.0, 1.0},
		{123456.789, 987654.321},
		{1e150, 1e150},
		{-3.5, 2.25},
		{0, 5.0},
	}
	for _, c := range cases {
		hi, lo := expansion.TwoProduct(c.a, c.b)
		require.Equal(t, c.a*c.b, hi)

		want := new(big.Float).Mul(bigOf(c.a), bigOf(c.b))
		got := new(big.Float).Add(bigOf(hi), bigOf(lo))
		require.Zero(t, want.Cmp(got), "TwoProduct(%v,%v)", c.a, c.b)
	}
}

func TestTwoSquare_MatchesTwoProduct(t *testing.T) {
	t.Parallel()
	for _, a := range []float64{3.0, -123.456, 1e100, 0} {
		hi, lo := expansion.TwoSquare(a)
		wantHi, wantLo := expansion.TwoProduct(a, a)
		require.Equal(t, wantHi, hi)
		require.Equal(t, wantLo, lo)
	}
}
