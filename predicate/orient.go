package predicate

import (
	"math"

	"github.com/katalvlaran/geompred/expansion"
)

// Orient2D returns a value whose sign tests which side of the
// directed line a->b the point c lies on: positive iff c is strictly
// left of a->b, negative iff strictly right, zero iff a, b, c are
// collinear (Shewchuk's sign convention).
func Orient2D(a, b, c []float64) float64 {
	r, ft := orient2dFiltered(a, b, c)
	if certified(r, ft) {
		recordFiltered(idOrient2D)
		return r
	}
	recordExact(idOrient2D)
	var buf [16]float64
	return orient2dExact(buf[:0], a, b, c)
}

// orient2dK is the error-bound constant factor for orient2d, derived
// from the depth of the filtered kernel's expression tree.
const orient2dK = 3.0

func orient2dFiltered(a, b, c []float64) (r, ft float64) {
	acx := a[0] - c[0]
	acy := a[1] - c[1]
	bcx := b[0] - c[0]
	bcy := b[1] - c[1]

	detLeft := acx * bcy
	detRight := acy * bcx
	det := detLeft - detRight

	bound := (math.Abs(detLeft) + math.Abs(detRight)) * orient2dK * expansion.Epsilon
	return det, bound
}

func orient2dExact(out expansion.Expansion, a, b, c []float64) float64 {
	var acxBuf, acyBuf, bcxBuf, bcyBuf [2]float64
	acx := expansion.FromDiff(acxBuf[:0], a[0], c[0])
	acy := expansion.FromDiff(acyBuf[:0], a[1], c[1])
	bcx := expansion.FromDiff(bcxBuf[:0], b[0], c[0])
	bcy := expansion.FromDiff(bcyBuf[:0], b[1], c[1])

	var leftBuf, rightBuf [8]float64
	left := expansion.Multiply(leftBuf[:0], acx, bcy)
	right := expansion.Multiply(rightBuf[:0], acy, bcx)

	det := expansion.Sub(out[:0], left, right)
	return det.Leading()
}

// Orient3D returns a value whose sign tests which side of the plane
// (a,b,c) the point d lies on, the plane oriented by the right-hand
// rule: positive iff d lies strictly below the plane, negative iff
// strictly above, zero iff the four points are coplanar.
func Orient3D(a, b, c, d []float64) float64 {
	r, ft := orient3dFiltered(a, b, c, d)
	if certified(r, ft) {
		recordFiltered(idOrient3D)
		return r
	}
	recordExact(idOrient3D)
	var buf [192]float64
	return orient3dExact(buf[:0], a, b, c, d)
}

const orient3dK = 7.0

func orient3dFiltered(a, b, c, d []float64) (r, ft float64) {
	adx, ady, adz := a[0]-d[0], a[1]-d[1], a[2]-d[2]
	bdx, bdy, bdz := b[0]-d[0], b[1]-d[1], b[2]-d[2]
	cdx, cdy, cdz := c[0]-d[0], c[1]-d[1], c[2]-d[2]

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	cdxady := cdx * ady
	adxcdy := adx * cdy
	adxbdy := adx * bdy
	bdxady := bdx * ady

	det := adz*(bdxcdy-cdxbdy) + bdz*(cdxady-adxcdy) + cdz*(adxbdy-bdxady)

	sum := math.Abs(bdxcdy) + math.Abs(cdxbdy) +
		math.Abs(cdxady) + math.Abs(adxcdy) +
		math.Abs(adxbdy) + math.Abs(bdxady)
	sum *= math.Abs(adz) + math.Abs(bdz) + math.Abs(cdz)

	bound := sum * orient3dK * expansion.Epsilon
	return det, bound
}

func orient3dExact(out expansion.Expansion, a, b, c, d []float64) float64 {
	// Stage 1: Lift the nine coordinate differences into exact 2-term
	// expansions.
	var adxB, adyB, adzB, bdxB, bdyB, bdzB, cdxB, cdyB, cdzB [2]float64
	adx := expansion.FromDiff(adxB[:0], a[0], d[0])
	ady := expansion.FromDiff(adyB[:0], a[1], d[1])
	adz := expansion.FromDiff(adzB[:0], a[2], d[2])
	bdx := expansion.FromDiff(bdxB[:0], b[0], d[0])
	bdy := expansion.FromDiff(bdyB[:0], b[1], d[1])
	bdz := expansion.FromDiff(bdzB[:0], b[2], d[2])
	cdx := expansion.FromDiff(cdxB[:0], c[0], d[0])
	cdy := expansion.FromDiff(cdyB[:0], c[1], d[1])
	cdz := expansion.FromDiff(cdzB[:0], c[2], d[2])

	// Stage 2: Pairwise products feeding the three 2x2 cofactors.
	var bdxcdyB, cdxbdyB, cdxadyB, adxcdyB, adxbdyB, bdxadyB [8]float64
	bdxcdy := expansion.Multiply(bdxcdyB[:0], bdx, cdy)
	cdxbdy := expansion.Multiply(cdxbdyB[:0], cdx, bdy)
	cdxady := expansion.Multiply(cdxadyB[:0], cdx, ady)
	adxcdy := expansion.Multiply(adxcdyB[:0], adx, cdy)
	adxbdy := expansion.Multiply(adxbdyB[:0], adx, bdy)
	bdxady := expansion.Multiply(bdxadyB[:0], bdx, ady)

	// Stage 3: The 2x2 cofactor minors.
	var minorABuf, minorBBuf, minorCBuf [16]float64
	minorA := expansion.Sub(minorABuf[:0], bdxcdy, cdxbdy)
	minorB := expansion.Sub(minorBBuf[:0], cdxady, adxcdy)
	minorC := expansion.Sub(minorCBuf[:0], adxbdy, bdxady)

	// Stage 4: Scale each minor by its z-difference and accumulate.
	var termABuf, termBBuf, termCBuf [64]float64
	termA := expansion.Multiply(termABuf[:0], adz, minorA)
	termB := expansion.Multiply(termBBuf[:0], bdz, minorB)
	termC := expansion.Multiply(termCBuf[:0], cdz, minorC)

	var abBuf [128]float64
	ab := expansion.Sum(abBuf[:0], termA, termB)
	sum := expansion.Sum(out[:0], ab, termC)
	return sum.Leading()
}

// certified reports whether a filtered result r, with error bound ft,
// certifies the sign of the exact value: the bound must be strictly
// smaller than |r| and r must be an IEEE-754 normal value, ruling out
// subnormal results that could otherwise slip past the bound
// comparison and be returned without exact verification.
func certified(r, ft float64) bool {
	if r > ft || r < -ft {
		return isNormalOrZero(r)
	}
	return false
}

// smallestNormal is the smallest positive normal float64, 2^-1022.
const smallestNormal = 2.2250738585072014e-308

func isNormalOrZero(r float64) bool {
	if r == 0 {
		return true
	}
	return math.Abs(r) >= smallestNormal
}
