package point_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geompred/point"
)

func TestNew2_ValidAndTrailingWeightIgnored(t *testing.T) {
	t.Parallel()
	p, err := point.New2([]float64{1.5, -2.5, 99.0})
	require.NoError(t, err)
	require.Equal(t, point.Point2{X: 1.5, Y: -2.5}, p)
	require.Equal(t, []float64{1.5, -2.5}, p.Coords())
}

func TestNew2_TooFewCoords(t *testing.T) {
	t.Parallel()
	_, err := point.New2([]float64{1.0})
	require.ErrorIs(t, err, point.ErrTooFewCoords)
}

func TestNew2_RejectsNaNAndInf(t *testing.T) {
	t.Parallel()
	_, err := point.New2([]float64{math.NaN(), 0})
	require.ErrorIs(t, err, point.ErrNaNOrInf)

	_, err = point.New2([]float64{0, math.Inf(1)})
	require.ErrorIs(t, err, point.ErrNaNOrInf)
}

func TestNew3_Valid(t *testing.T) {
	t.Parallel()
	p, err := point.New3([]float64{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, p.Coords())
}

func TestNewWeighted2_Valid(t *testing.T) {
	t.Parallel()
	wp, err := point.NewWeighted2([]float64{0, 0, 0.25})
	require.NoError(t, err)
	require.Equal(t, 0.25, wp.W)
	require.Equal(t, point.Point2{X: 0, Y: 0}, wp.Unweighted())
}

func TestNewWeighted3_TooFewCoords(t *testing.T) {
	t.Parallel()
	_, err := point.NewWeighted3([]float64{1, 2, 3})
	require.ErrorIs(t, err, point.ErrTooFewCoords)
}

func TestWeightedPoint3_UnweightedDropsWeight(t *testing.T) {
	t.Parallel()
	wp, err := point.NewWeighted3([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Equal(t, point.Point3{X: 1, Y: 2, Z: 3}, wp.Unweighted())
}
