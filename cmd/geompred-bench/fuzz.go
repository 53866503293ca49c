package main

import (
	"fmt"
	"io"
	"math/big"
	"math/rand"

	"github.com/katalvlaran/geompred/predicate"
)

// ratOrient2D computes orient2d exactly using big.Rat — an
// arbitrary-precision oracle independent of this library's own
// expansion arithmetic, used to check sign agreement with rational
// arithmetic under fuzzing.
func ratOrient2D(a, b, c []float64) int {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	acx := new(big.Rat).Sub(rat(a[0]), rat(c[0]))
	acy := new(big.Rat).Sub(rat(a[1]), rat(c[1]))
	bcx := new(big.Rat).Sub(rat(b[0]), rat(c[0]))
	bcy := new(big.Rat).Sub(rat(b[1]), rat(c[1]))

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return new(big.Rat).Sub(left, right).Sign()
}

func ratBisect2D(a, b, c []float64) int {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	sq := func(px, py, qx, qy *big.Rat) *big.Rat {
		dx := new(big.Rat).Sub(px, qx)
		dy := new(big.Rat).Sub(py, qy)
		return new(big.Rat).Add(new(big.Rat).Mul(dx, dx), new(big.Rat).Mul(dy, dy))
	}
	ax, ay := rat(a[0]), rat(a[1])
	bx, by := rat(b[0]), rat(b[1])
	cx, cy := rat(c[0]), rat(c[1])
	acSq := sq(ax, ay, cx, cy)
	bcSq := sq(bx, by, cx, cy)
	return new(big.Rat).Sub(acSq, bcSq).Sign()
}

// ratInBall2D computes the incircle determinant exactly using big.Rat,
// the oracle for InBall2D (and, by the weight-reduction short-circuit,
// InBall2W) — the same cofactor expansion inball2dExact evaluates.
func ratInBall2D(a, b, c, q []float64) int {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	sub := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
	mul := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	add := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

	adx, ady := sub(rat(a[0]), rat(q[0])), sub(rat(a[1]), rat(q[1]))
	bdx, bdy := sub(rat(b[0]), rat(q[0])), sub(rat(b[1]), rat(q[1]))
	cdx, cdy := sub(rat(c[0]), rat(q[0])), sub(rat(c[1]), rat(q[1]))

	aLift := add(mul(adx, adx), mul(ady, ady))
	bLift := add(mul(bdx, bdx), mul(bdy, bdy))
	cLift := add(mul(cdx, cdx), mul(cdy, cdy))

	bdxcdy, cdxbdy := mul(bdx, cdy), mul(cdx, bdy)
	cdxady, adxcdy := mul(cdx, ady), mul(adx, cdy)
	adxbdy, bdxady := mul(adx, bdy), mul(bdx, ady)

	termA := mul(aLift, sub(bdxcdy, cdxbdy))
	termB := mul(bLift, sub(cdxady, adxcdy))
	termC := mul(cLift, sub(adxbdy, bdxady))

	return add(add(termA, termB), termC).Sign()
}

// det3Rat is the big.Rat analogue of predicate.det3f: the 3x3
// determinant with rows u,v,w.
func det3Rat(ux, uy, uz, vx, vy, vz, wx, wy, wz *big.Rat) *big.Rat {
	mul := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	sub := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
	add := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

	t1 := mul(ux, sub(mul(vy, wz), mul(vz, wy)))
	t2 := mul(uy, sub(mul(vx, wz), mul(vz, wx)))
	t3 := mul(uz, sub(mul(vx, wy), mul(vy, wx)))
	return add(sub(t1, t2), t3)
}

// ratInBall3D is the 3D analogue of ratInBall2D, the oracle for the
// orthoball/circumball determinant inball3dExact computes
// (-aLift*minorA+bLift*minorB-cLift*minorC+dLift*minorD).
func ratInBall3D(a, b, c, d, q []float64) int {
	rat := func(v float64) *big.Rat { return new(big.Rat).SetFloat64(v) }
	sub := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) }
	mul := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) }
	add := func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) }

	adx, ady, adz := sub(rat(a[0]), rat(q[0])), sub(rat(a[1]), rat(q[1])), sub(rat(a[2]), rat(q[2]))
	bdx, bdy, bdz := sub(rat(b[0]), rat(q[0])), sub(rat(b[1]), rat(q[1])), sub(rat(b[2]), rat(q[2]))
	cdx, cdy, cdz := sub(rat(c[0]), rat(q[0])), sub(rat(c[1]), rat(q[1])), sub(rat(c[2]), rat(q[2]))
	ddx, ddy, ddz := sub(rat(d[0]), rat(q[0])), sub(rat(d[1]), rat(q[1])), sub(rat(d[2]), rat(q[2]))

	aLift := add(add(mul(adx, adx), mul(ady, ady)), mul(adz, adz))
	bLift := add(add(mul(bdx, bdx), mul(bdy, bdy)), mul(bdz, bdz))
	cLift := add(add(mul(cdx, cdx), mul(cdy, cdy)), mul(cdz, cdz))
	dLift := add(add(mul(ddx, ddx), mul(ddy, ddy)), mul(ddz, ddz))

	minorA := det3Rat(bdx, bdy, bdz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorB := det3Rat(adx, ady, adz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorC := det3Rat(adx, ady, adz, bdx, bdy, bdz, ddx, ddy, ddz)
	minorD := det3Rat(adx, ady, adz, bdx, bdy, bdz, cdx, cdy, cdz)

	det := add(sub(mul(bLift, minorB), mul(aLift, minorA)), sub(mul(dLift, minorD), mul(cLift, minorC)))
	return det.Sign()
}

// runFuzzSuite cross-checks Orient2D, Bisect2D, InBall2D, and InBall3D
// against their big.Rat oracles over n random rounds, including
// near-degenerate/near-cocircular configurations designed to stress
// the adaptive exact fallback; it returns the number of disagreements
// found.
func runFuzzSuite(w io.Writer, n int, seed int64) int {
	rng := rand.New(rand.NewSource(seed))
	failures := 0

	ball2a := []float64{0, 0}
	ball2b := []float64{1, 0}
	ball2c := []float64{0, 1}
	ball3a := []float64{0, 0, 0}
	ball3b := []float64{1, 0, 0}
	ball3c := []float64{0, 1, 0}
	ball3d := []float64{0, 0, 1}

	for i := 0; i < n; i++ {
		var a, b, c []float64
		var q2, q3 []float64
		if i%3 == 0 {
			x := rng.Float64()*2 - 1
			eps := rng.Float64() * 1e-12
			a = []float64{0, 0}
			b = []float64{1, 0}
			c = []float64{x, eps * (rng.Float64()*2 - 1)}

			e2 := rng.Float64() * 1e-12
			q2 = []float64{1 + e2*(rng.Float64()*2-1), 1 + e2*(rng.Float64()*2-1)}
			e3 := rng.Float64() * 1e-12
			q3 = []float64{1 + e3*(rng.Float64()*2-1), 1 + e3*(rng.Float64()*2-1), 1 + e3*(rng.Float64()*2-1)}
		} else {
			a = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
			b = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
			c = []float64{rng.Float64()*200 - 100, rng.Float64()*200 - 100}

			q2 = []float64{rng.Float64()*4 - 2, rng.Float64()*4 - 2}
			q3 = []float64{rng.Float64()*3 - 1, rng.Float64()*3 - 1, rng.Float64()*3 - 1}
		}

		if got, want := sign(predicate.Orient2D(a, b, c)), ratOrient2D(a, b, c); got != want {
			fmt.Fprintf(w, "FUZZ DISAGREEMENT orient2d: a=%v b=%v c=%v got=%d want=%d\n", a, b, c, got, want)
			failures++
		}
		if got, want := sign(predicate.Bisect2D(a, b, c)), ratBisect2D(a, b, c); got != want {
			fmt.Fprintf(w, "FUZZ DISAGREEMENT bisect2d: a=%v b=%v c=%v got=%d want=%d\n", a, b, c, got, want)
			failures++
		}
		if got, want := sign(predicate.InBall2D(ball2a, ball2b, ball2c, q2)), ratInBall2D(ball2a, ball2b, ball2c, q2); got != want {
			fmt.Fprintf(w, "FUZZ DISAGREEMENT inball2d: q=%v got=%d want=%d\n", q2, got, want)
			failures++
		}
		if got, want := sign(predicate.InBall3D(ball3a, ball3b, ball3c, ball3d, q3)), ratInBall3D(ball3a, ball3b, ball3c, ball3d, q3); got != want {
			fmt.Fprintf(w, "FUZZ DISAGREEMENT inball3d: q=%v got=%d want=%d\n", q3, got, want)
			failures++
		}
	}

	fmt.Fprintf(w, "fuzz: %d rounds, %d disagreement(s)\n", n, failures)
	return failures
}
