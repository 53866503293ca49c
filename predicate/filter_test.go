package predicate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geompred/expansion"
)

func init() {
	expansion.Init()
}

// The filter-soundness tests check, white-box, that whenever a filtered
// kernel certifies its result (|r| > bound), the sign of r agrees with
// the sign the exact kernel computes for the same input. Random inputs
// are mixed with near-degenerate ones so both certified and uncertified
// outcomes occur; uncertified results carry no claim and are skipped.

func signOf(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestOrient2DFilter_Soundness(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(48109))

	certifiedCount := 0
	for i := 0; i < 5000; i++ {
		var a, b, c []float64
		if i%3 == 0 {
			x := rng.Float64()*2 - 1
			eps := math.Pow(2, -float64(rng.Intn(70)+1))
			a = []float64{0, 0}
			b = []float64{1, 0}
			c = []float64{x, eps * (rng.Float64()*2 - 1)}
		} else {
			a = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
			b = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
			c = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
		}

		r, ft := orient2dFiltered(a, b, c)
		if !certified(r, ft) {
			continue
		}
		certifiedCount++

		var buf [16]float64
		exact := orient2dExact(buf[:0], a, b, c)
		require.Equal(t, signOf(exact), signOf(r), "a=%v b=%v c=%v r=%v bound=%v", a, b, c, r, ft)
	}
	require.NotZero(t, certifiedCount, "fixture never exercised the certified path")
}

func TestBisect2DFilter_Soundness(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(60493))

	for i := 0; i < 5000; i++ {
		a := []float64{rng.Float64()*10 - 5, rng.Float64()*10 - 5}
		b := []float64{rng.Float64()*10 - 5, rng.Float64()*10 - 5}
		c := []float64{rng.Float64()*10 - 5, rng.Float64()*10 - 5}
		if i%4 == 0 {
			// Near-equidistant query: reflect a across the midpoint and
			// perturb, so acsqr-bcsqr nearly cancels.
			mx, my := (a[0]+b[0])/2, (a[1]+b[1])/2
			eps := math.Pow(2, -float64(rng.Intn(60)+1))
			c = []float64{mx + eps, my - eps}
		}

		r, ft := bisect2dFiltered(a, b, c)
		if !certified(r, ft) {
			continue
		}

		var buf [32]float64
		exact := bisect2dExact(buf[:0], a, b, c)
		require.Equal(t, signOf(exact), signOf(r), "a=%v b=%v c=%v", a, b, c)
	}
}

func TestInBall2DFilter_Soundness(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(77140))

	a := []float64{0, 0}
	b := []float64{1, 0}
	c := []float64{0, 1}
	for i := 0; i < 5000; i++ {
		var q []float64
		if i%3 == 0 {
			eps := math.Pow(2, -float64(rng.Intn(60)+1))
			q = []float64{1 + eps*(rng.Float64()*2 - 1), 1 + eps*(rng.Float64()*2 - 1)}
		} else {
			q = []float64{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
		}

		r, ft := inball2dFiltered(a, b, c, q)
		if !certified(r, ft) {
			continue
		}
		require.Equal(t, signOf(inball2dExact(a, b, c, q)), signOf(r), "q=%v", q)
	}
}

func TestInBall3DFilter_Soundness(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(82310))

	a := []float64{0, 0, 0}
	b := []float64{1, 0, 0}
	c := []float64{0, 1, 0}
	d := []float64{0, 0, 1}
	for i := 0; i < 2000; i++ {
		var q []float64
		if i%3 == 0 {
			eps := math.Pow(2, -float64(rng.Intn(60)+1))
			q = []float64{
				1 + eps*(rng.Float64()*2 - 1),
				1 + eps*(rng.Float64()*2 - 1),
				1 + eps*(rng.Float64()*2 - 1),
			}
		} else {
			q = []float64{rng.Float64()*3 - 1, rng.Float64()*3 - 1, rng.Float64()*3 - 1}
		}

		r, ft := inball3dFiltered(a, b, c, d, q)
		if !certified(r, ft) {
			continue
		}
		require.Equal(t, signOf(inball3dExact(a, b, c, d, q)), signOf(r), "q=%v", q)
	}
}
