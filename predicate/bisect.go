package predicate

import (
	"math"

	"github.com/katalvlaran/geompred/expansion"
)

// Bisect2D returns a value whose sign compares |c-a|^2 to |c-b|^2:
// negative iff c is strictly closer to a than to b, positive iff
// closer to b, zero iff equidistant.
func Bisect2D(a, b, c []float64) float64 {
	r, ft := bisect2dFiltered(a, b, c)
	if certified(r, ft) {
		recordFiltered(idBisect2D)
		return r
	}
	recordExact(idBisect2D)
	var buf [32]float64
	return bisect2dExact(buf[:0], a, b, c)
}

const bisect2dK = 5.0

func bisect2dFiltered(a, b, c []float64) (r, ft float64) {
	acx, acy := a[0]-c[0], a[1]-c[1]
	bcx, bcy := b[0]-c[0], b[1]-c[1]

	acsqr := acx*acx + acy*acy
	bcsqr := bcx*bcx + bcy*bcy

	bound := (math.Abs(acsqr) + math.Abs(bcsqr)) * bisect2dK * expansion.Epsilon
	return acsqr - bcsqr, bound
}

func bisect2dExact(out expansion.Expansion, a, b, c []float64) float64 {
	acSq, bcSq := squaredDist2(a, c), squaredDist2(b, c)
	diff := expansion.Sub(out[:0], acSq, bcSq)
	return diff.Leading()
}

// squaredDist2 computes |p-q|^2 exactly as an Expansion: each
// coordinate difference is a 2-term Expansion, squared and summed
// through Dot.
func squaredDist2(p, q []float64) expansion.Expansion {
	var pxB, pyB [2]float64
	px := expansion.FromDiff(pxB[:0], p[0], q[0])
	py := expansion.FromDiff(pyB[:0], p[1], q[1])

	var out [16]float64
	return expansion.Dot(out[:0], px, px, py, py)
}

// squaredDist3 is the 3D analogue of squaredDist2.
func squaredDist3(p, q []float64) expansion.Expansion {
	var pxB, pyB, pzB [2]float64
	px := expansion.FromDiff(pxB[:0], p[0], q[0])
	py := expansion.FromDiff(pyB[:0], p[1], q[1])
	pz := expansion.FromDiff(pzB[:0], p[2], q[2])

	var out [24]float64
	return expansion.Dot(out[:0], px, px, py, py, pz, pz)
}

// Bisect3D is the 3D analogue of Bisect2D.
func Bisect3D(a, b, c []float64) float64 {
	r, ft := bisect3dFiltered(a, b, c)
	if certified(r, ft) {
		recordFiltered(idBisect3D)
		return r
	}
	recordExact(idBisect3D)
	var buf [48]float64
	return bisect3dExact(buf[:0], a, b, c)
}

const bisect3dK = 6.0

func bisect3dFiltered(a, b, c []float64) (r, ft float64) {
	acx, acy, acz := a[0]-c[0], a[1]-c[1], a[2]-c[2]
	bcx, bcy, bcz := b[0]-c[0], b[1]-c[1], b[2]-c[2]

	acsqr := acx*acx + acy*acy + acz*acz
	bcsqr := bcx*bcx + bcy*bcy + bcz*bcz

	bound := (math.Abs(acsqr) + math.Abs(bcsqr)) * bisect3dK * expansion.Epsilon
	return acsqr - bcsqr, bound
}

func bisect3dExact(out expansion.Expansion, a, b, c []float64) float64 {
	acSq, bcSq := squaredDist3(a, c), squaredDist3(b, c)
	diff := expansion.Sub(out[:0], acSq, bcSq)
	return diff.Leading()
}

// Bisect2W is the power-distance generalization of Bisect2D: it
// compares (|c-a|^2 - wa) to (|c-b|^2 - wb), where wa, wb are the
// weights carried at index 2 of a and b. When wa == wb this is
// bit-identical to Bisect2D; the dispatcher short-circuits to that
// cheaper path in that case.
func Bisect2W(a, b, c []float64) float64 {
	if a[2] == b[2] {
		return Bisect2D(a, b, c)
	}
	r, ft := bisect2wFiltered(a, b, c)
	if certified(r, ft) {
		recordFiltered(idBisect2W)
		return r
	}
	recordExact(idBisect2W)
	var buf [34]float64
	return bisect2wExact(buf[:0], a, b, c)
}

const bisect2wK = 6.0

func bisect2wFiltered(a, b, c []float64) (r, ft float64) {
	acx, acy := a[0]-c[0], a[1]-c[1]
	bcx, bcy := b[0]-c[0], b[1]-c[1]

	acsqr := acx*acx + acy*acy
	bcsqr := bcx*bcx + bcy*bcy

	aSum := acsqr - a[2]
	bSum := bcsqr - b[2]

	bound := (math.Abs(acsqr) + math.Abs(a[2]) + math.Abs(bcsqr) + math.Abs(b[2])) * bisect2wK * expansion.Epsilon
	return aSum - bSum, bound
}

func bisect2wExact(out expansion.Expansion, a, b, c []float64) float64 {
	acSq, bcSq := squaredDist2(a, c), squaredDist2(b, c)

	var awB, bwB [1]float64
	aw := expansion.FromScalar(awB[:0], a[2])
	bw := expansion.FromScalar(bwB[:0], b[2])

	var aSumB, bSumB [17]float64
	aSum := expansion.Sub(aSumB[:0], acSq, aw)
	bSum := expansion.Sub(bSumB[:0], bcSq, bw)

	diff := expansion.Sub(out[:0], aSum, bSum)
	return diff.Leading()
}

// Bisect3W is the 3D analogue of Bisect2W (weight at index 3).
func Bisect3W(a, b, c []float64) float64 {
	if a[3] == b[3] {
		return Bisect3D(a, b, c)
	}
	r, ft := bisect3wFiltered(a, b, c)
	if certified(r, ft) {
		recordFiltered(idBisect3W)
		return r
	}
	recordExact(idBisect3W)
	var buf [50]float64
	return bisect3wExact(buf[:0], a, b, c)
}

const bisect3wK = 7.0

func bisect3wFiltered(a, b, c []float64) (r, ft float64) {
	acx, acy, acz := a[0]-c[0], a[1]-c[1], a[2]-c[2]
	bcx, bcy, bcz := b[0]-c[0], b[1]-c[1], b[2]-c[2]

	acsqr := acx*acx + acy*acy + acz*acz
	bcsqr := bcx*bcx + bcy*bcy + bcz*bcz

	aSum := acsqr - a[3]
	bSum := bcsqr - b[3]

	bound := (math.Abs(acsqr) + math.Abs(a[3]) + math.Abs(bcsqr) + math.Abs(b[3])) * bisect3wK * expansion.Epsilon
	return aSum - bSum, bound
}

func bisect3wExact(out expansion.Expansion, a, b, c []float64) float64 {
	acSq, bcSq := squaredDist3(a, c), squaredDist3(b, c)

	var awB, bwB [1]float64
	aw := expansion.FromScalar(awB[:0], a[3])
	bw := expansion.FromScalar(bwB[:0], b[3])

	var aSumB, bSumB [25]float64
	aSum := expansion.Sub(aSumB[:0], acSq, aw)
	bSum := expansion.Sub(bSumB[:0], bcSq, bw)

	diff := expansion.Sub(out[:0], aSum, bSum)
	return diff.Leading()
}
