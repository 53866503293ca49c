package predicate

import (
	"math"

	"github.com/katalvlaran/geompred/expansion"
)

// vec2/vec3 hold the per-axis coordinate-difference expansions for one
// translated simplex vertex, used by the 2x2/3x3 exact cofactor
// determinants that the inball kernels are built from.
type vec2 struct{ x, y expansion.Expansion }
type vec3 struct{ x, y, z expansion.Expansion }

func diffVec2(p, q []float64) vec2 {
	return vec2{
		x: expansion.FromDiff(make(expansion.Expansion, 0, 2), p[0], q[0]),
		y: expansion.FromDiff(make(expansion.Expansion, 0, 2), p[1], q[1]),
	}
}

func diffVec3(p, q []float64) vec3 {
	return vec3{
		x: expansion.FromDiff(make(expansion.Expansion, 0, 2), p[0], q[0]),
		y: expansion.FromDiff(make(expansion.Expansion, 0, 2), p[1], q[1]),
		z: expansion.FromDiff(make(expansion.Expansion, 0, 2), p[2], q[2]),
	}
}

// sqLen2 computes v.x^2+v.y^2 exactly.
func sqLen2(v vec2) expansion.Expansion {
	return expansion.Dot(make(expansion.Expansion, 0, 16), v.x, v.x, v.y, v.y)
}

// sqLen3 computes v.x^2+v.y^2+v.z^2 exactly.
func sqLen3(v vec3) expansion.Expansion {
	return expansion.Dot(make(expansion.Expansion, 0, 24), v.x, v.x, v.y, v.y, v.z, v.z)
}

// det2 computes the exact 2x2 determinant u.x*v.y - u.y*v.x.
func det2(u, v vec2) expansion.Expansion {
	left := expansion.Multiply(make(expansion.Expansion, 0, 8), u.x, v.y)
	right := expansion.Multiply(make(expansion.Expansion, 0, 8), u.y, v.x)
	return expansion.Sub(make(expansion.Expansion, 0, len(left)+len(right)), left, right)
}

// det3 computes the exact 3x3 determinant whose rows are u, v, w,
// expanded along the first row (u's components). Orient3D's exact
// kernel (orient.go's orient3dExact) computes the same determinant
// for rows a-d, b-d, c-d but expands it along the z column instead.
func det3(u, v, w vec3) expansion.Expansion {
	vwYZ := det2(vec2{v.y, v.z}, vec2{w.y, w.z})
	vwXZ := det2(vec2{v.x, v.z}, vec2{w.x, w.z})
	vwXY := det2(vec2{v.x, v.y}, vec2{w.x, w.y})

	termX := expansion.Multiply(make(expansion.Expansion, 0, 2*len(u.x)*len(vwYZ)), u.x, vwYZ)
	termY := expansion.Multiply(make(expansion.Expansion, 0, 2*len(u.y)*len(vwXZ)), u.y, vwXZ)
	termZ := expansion.Multiply(make(expansion.Expansion, 0, 2*len(u.z)*len(vwXY)), u.z, vwXY)

	xy := expansion.Sub(make(expansion.Expansion, 0, len(termX)+len(termY)), termX, termY)
	return expansion.Sum(make(expansion.Expansion, 0, len(xy)+len(termZ)), xy, termZ)
}

// InBall2D returns a value whose sign tests whether q lies inside the
// circle circumscribing the positively-oriented triangle (a,b,c):
// positive iff strictly inside, negative iff strictly outside, zero
// iff q lies exactly on the circle.
func InBall2D(a, b, c, q []float64) float64 {
	r, ft := inball2dFiltered(a, b, c, q)
	if certified(r, ft) {
		recordFiltered(idInBall2D)
		return r
	}
	recordExact(idInBall2D)
	return inball2dExact(a, b, c, q)
}

const inball2dK = 11.0

func inball2dFiltered(a, b, c, q []float64) (r, ft float64) {
	adx, ady := a[0]-q[0], a[1]-q[1]
	bdx, bdy := b[0]-q[0], b[1]-q[1]
	cdx, cdy := c[0]-q[0], c[1]-q[1]

	aLift := adx*adx + ady*ady
	bLift := bdx*bdx + bdy*bdy
	cLift := cdx*cdx + cdy*cdy

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	sum := aLift*(math.Abs(bdxcdy)+math.Abs(cdxbdy)) +
		bLift*(math.Abs(cdxady)+math.Abs(adxcdy)) +
		cLift*(math.Abs(adxbdy)+math.Abs(bdxady))
	bound := sum * inball2dK * expansion.Epsilon
	return det, bound
}

// inball2dExact sizes every intermediate Expansion from the actual
// operand lengths it observes (rather than a predeclared fixed-size
// stack buffer): the generic vertex*minor multiplication this cofactor
// expansion performs can overshoot the hand-derived worst-case bounds
// of the specialized incircle construction well before
// zero-elimination catches up, so the scratch space is heap-allocated
// throughout. Only the exact fallback pays that cost; the filtered
// hot path never reaches this function.
func inball2dExact(a, b, c, q []float64) float64 {
	// Stage 1: Translate the triangle to q and lift each vertex by its
	// squared distance.
	va, vb, vc := diffVec2(a, q), diffVec2(b, q), diffVec2(c, q)
	aLift, bLift, cLift := sqLen2(va), sqLen2(vb), sqLen2(vc)

	// Stage 2: The 2x2 cofactor minors (minorB enters negated, via the
	// Sub below).
	minorA := det2(vb, vc)
	minorB := det2(va, vc)
	minorC := det2(va, vb)

	// Stage 3: Combine lift*minor terms into the 3x3 determinant.
	termA := expansion.Multiply(make(expansion.Expansion, 0, 2*len(aLift)*len(minorA)), aLift, minorA)
	termB := expansion.Multiply(make(expansion.Expansion, 0, 2*len(bLift)*len(minorB)), bLift, minorB)
	termC := expansion.Multiply(make(expansion.Expansion, 0, 2*len(cLift)*len(minorC)), cLift, minorC)

	ab := expansion.Sub(make(expansion.Expansion, 0, len(termA)+len(termB)), termA, termB)
	sum := expansion.Sum(make(expansion.Expansion, 0, len(ab)+len(termC)), ab, termC)
	return sum.Leading()
}

// InBall3D is the 3D analogue of InBall2D: positive iff q lies
// strictly inside the sphere circumscribing the positively-oriented
// tetrahedron (a,b,c,d).
func InBall3D(a, b, c, d, q []float64) float64 {
	r, ft := inball3dFiltered(a, b, c, d, q)
	if certified(r, ft) {
		recordFiltered(idInBall3D)
		return r
	}
	recordExact(idInBall3D)
	return inball3dExact(a, b, c, d, q)
}

const inball3dK = 17.0

func inball3dFiltered(a, b, c, d, q []float64) (r, ft float64) {
	adx, ady, adz := a[0]-q[0], a[1]-q[1], a[2]-q[2]
	bdx, bdy, bdz := b[0]-q[0], b[1]-q[1], b[2]-q[2]
	cdx, cdy, cdz := c[0]-q[0], c[1]-q[1], c[2]-q[2]
	ddx, ddy, ddz := d[0]-q[0], d[1]-q[1], d[2]-q[2]

	aLift := adx*adx + ady*ady + adz*adz
	bLift := bdx*bdx + bdy*bdy + bdz*bdz
	cLift := cdx*cdx + cdy*cdy + cdz*cdz
	dLift := ddx*ddx + ddy*ddy + ddz*ddz

	minorA := det3f(bdx, bdy, bdz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorB := det3f(adx, ady, adz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorC := det3f(adx, ady, adz, bdx, bdy, bdz, ddx, ddy, ddz)
	minorD := det3f(adx, ady, adz, bdx, bdy, bdz, cdx, cdy, cdz)

	det := -aLift*minorA + bLift*minorB - cLift*minorC + dLift*minorD

	sum := aLift*perm3f(bdx, bdy, bdz, cdx, cdy, cdz, ddx, ddy, ddz) +
		bLift*perm3f(adx, ady, adz, cdx, cdy, cdz, ddx, ddy, ddz) +
		cLift*perm3f(adx, ady, adz, bdx, bdy, bdz, ddx, ddy, ddz) +
		dLift*perm3f(adx, ady, adz, bdx, bdy, bdz, cdx, cdy, cdz)
	bound := sum * inball3dK * expansion.Epsilon
	return det, bound
}

// det3f is the plain-float64 3x3 determinant with rows u,v,w, used
// only by the filtered kernels (the exact kernels use det3 on
// Expansion vectors instead).
func det3f(ux, uy, uz, vx, vy, vz, wx, wy, wz float64) float64 {
	return ux*(vy*wz-vz*wy) - uy*(vx*wz-vz*wx) + uz*(vx*wy-vy*wx)
}

// perm3f is det3f with every term taken in absolute value: the
// magnitude sum that bounds det3f's rounding error even when the
// determinant itself cancels to near zero.
func perm3f(ux, uy, uz, vx, vy, vz, wx, wy, wz float64) float64 {
	return math.Abs(ux)*(math.Abs(vy*wz)+math.Abs(vz*wy)) +
		math.Abs(uy)*(math.Abs(vx*wz)+math.Abs(vz*wx)) +
		math.Abs(uz)*(math.Abs(vx*wy)+math.Abs(vy*wx))
}

// inball3dExact follows the same heap-scratch convention as
// inball2dExact; see its doc comment.
func inball3dExact(a, b, c, d, q []float64) float64 {
	// Stage 1: Translate the tetrahedron to q and lift each vertex by
	// its squared distance.
	va, vb, vc, vd := diffVec3(a, q), diffVec3(b, q), diffVec3(c, q), diffVec3(d, q)
	aLift, bLift, cLift, dLift := sqLen3(va), sqLen3(vb), sqLen3(vc), sqLen3(vd)

	// Stage 2: The 3x3 cofactor minors.
	minorA := det3(vb, vc, vd)
	minorB := det3(va, vc, vd)
	minorC := det3(va, vb, vd)
	minorD := det3(va, vb, vc)

	// Stage 3: Combine lift*minor terms into the 4x4 determinant,
	// -termA+termB-termC+termD, matching the filtered kernel's cofactor
	// signs (positive iff q is inside the ball of a positively-oriented
	// tetrahedron).
	termA := expansion.Multiply(make(expansion.Expansion, 0, 2*len(aLift)*len(minorA)), aLift, minorA)
	termB := expansion.Multiply(make(expansion.Expansion, 0, 2*len(bLift)*len(minorB)), bLift, minorB)
	termC := expansion.Multiply(make(expansion.Expansion, 0, 2*len(cLift)*len(minorC)), cLift, minorC)
	termD := expansion.Multiply(make(expansion.Expansion, 0, 2*len(dLift)*len(minorD)), dLift, minorD)

	ab := expansion.Sub(make(expansion.Expansion, 0, len(termA)+len(termB)), termB, termA)
	cd := expansion.Sub(make(expansion.Expansion, 0, len(termC)+len(termD)), termD, termC)
	sum := expansion.Sum(make(expansion.Expansion, 0, len(ab)+len(cd)), ab, cd)
	return sum.Leading()
}

// InBall2W is the power-distance generalization of InBall2D: the
// lifted height term |p-q|^2 is replaced by the power distance
// |p-q|^2 - (w_p - w_q), every simplex vertex and the query carrying a
// weight at index 2. When all four weights are equal this is
// bit-identical to InBall2D; the dispatcher short-circuits to that
// cheaper path in that case.
func InBall2W(a, b, c, q []float64) float64 {
	if a[2] == b[2] && b[2] == c[2] && c[2] == q[2] {
		return InBall2D(a, b, c, q)
	}
	r, ft := inball2wFiltered(a, b, c, q)
	if certified(r, ft) {
		recordFiltered(idInBall2W)
		return r
	}
	recordExact(idInBall2W)
	return inball2wExact(a, b, c, q)
}

const inball2wK = 13.0

func inball2wFiltered(a, b, c, q []float64) (r, ft float64) {
	adx, ady := a[0]-q[0], a[1]-q[1]
	bdx, bdy := b[0]-q[0], b[1]-q[1]
	cdx, cdy := c[0]-q[0], c[1]-q[1]

	aLift := adx*adx + ady*ady - (a[2] - q[2])
	bLift := bdx*bdx + bdy*bdy - (b[2] - q[2])
	cLift := cdx*cdx + cdy*cdy - (c[2] - q[2])

	bdxcdy, cdxbdy := bdx*cdy, cdx*bdy
	cdxady, adxcdy := cdx*ady, adx*cdy
	adxbdy, bdxady := adx*bdy, bdx*ady

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	aPerm := adx*adx + ady*ady + math.Abs(a[2]-q[2])
	bPerm := bdx*bdx + bdy*bdy + math.Abs(b[2]-q[2])
	cPerm := cdx*cdx + cdy*cdy + math.Abs(c[2]-q[2])

	sum := aPerm*(math.Abs(bdxcdy)+math.Abs(cdxbdy)) +
		bPerm*(math.Abs(cdxady)+math.Abs(adxcdy)) +
		cPerm*(math.Abs(adxbdy)+math.Abs(bdxady))
	bound := sum * inball2wK * expansion.Epsilon
	return det, bound
}

// powerLift2 computes |p-q|^2 - (w_p - w_q) exactly, returning both
// the translated coordinate vector (for reuse in the cofactor minors)
// and the lift expansion.
func powerLift2(p, q []float64) (vec2, expansion.Expansion) {
	v := diffVec2(p, q)
	dist := sqLen2(v)
	w := expansion.FromDiff(make(expansion.Expansion, 0, 2), p[2], q[2])
	lift := expansion.Sub(make(expansion.Expansion, 0, len(dist)+len(w)), dist, w)
	return v, lift
}

// powerLift3 is the 3D analogue of powerLift2 (weight at index 3).
func powerLift3(p, q []float64) (vec3, expansion.Expansion) {
	v := diffVec3(p, q)
	dist := sqLen3(v)
	w := expansion.FromDiff(make(expansion.Expansion, 0, 2), p[3], q[3])
	lift := expansion.Sub(make(expansion.Expansion, 0, len(dist)+len(w)), dist, w)
	return v, lift
}

// inball2wExact follows the same heap-scratch convention as
// inball2dExact; see its doc comment.
func inball2wExact(a, b, c, q []float64) float64 {
	// Stage 1: Translate to q and lift each vertex by its power
	// distance.
	va, aLift := powerLift2(a, q)
	vb, bLift := powerLift2(b, q)
	vc, cLift := powerLift2(c, q)

	// Stage 2: Minors and combination, as in inball2dExact.
	minorA := det2(vb, vc)
	minorB := det2(va, vc)
	minorC := det2(va, vb)

	termA := expansion.Multiply(make(expansion.Expansion, 0, 2*len(aLift)*len(minorA)), aLift, minorA)
	termB := expansion.Multiply(make(expansion.Expansion, 0, 2*len(bLift)*len(minorB)), bLift, minorB)
	termC := expansion.Multiply(make(expansion.Expansion, 0, 2*len(cLift)*len(minorC)), cLift, minorC)

	ab := expansion.Sub(make(expansion.Expansion, 0, len(termA)+len(termB)), termA, termB)
	sum := expansion.Sum(make(expansion.Expansion, 0, len(ab)+len(termC)), ab, termC)
	return sum.Leading()
}

// InBall3W is the 3D analogue of InBall2W (weight at index 3).
func InBall3W(a, b, c, d, q []float64) float64 {
	if a[3] == b[3] && b[3] == c[3] && c[3] == d[3] && d[3] == q[3] {
		return InBall3D(a, b, c, d, q)
	}
	r, ft := inball3wFiltered(a, b, c, d, q)
	if certified(r, ft) {
		recordFiltered(idInBall3W)
		return r
	}
	recordExact(idInBall3W)
	return inball3wExact(a, b, c, d, q)
}

const inball3wK = 20.0

func inball3wFiltered(a, b, c, d, q []float64) (r, ft float64) {
	adx, ady, adz := a[0]-q[0], a[1]-q[1], a[2]-q[2]
	bdx, bdy, bdz := b[0]-q[0], b[1]-q[1], b[2]-q[2]
	cdx, cdy, cdz := c[0]-q[0], c[1]-q[1], c[2]-q[2]
	ddx, ddy, ddz := d[0]-q[0], d[1]-q[1], d[2]-q[2]

	aLift := adx*adx + ady*ady + adz*adz - (a[3] - q[3])
	bLift := bdx*bdx + bdy*bdy + bdz*bdz - (b[3] - q[3])
	cLift := cdx*cdx + cdy*cdy + cdz*cdz - (c[3] - q[3])
	dLift := ddx*ddx + ddy*ddy + ddz*ddz - (d[3] - q[3])

	minorA := det3f(bdx, bdy, bdz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorB := det3f(adx, ady, adz, cdx, cdy, cdz, ddx, ddy, ddz)
	minorC := det3f(adx, ady, adz, bdx, bdy, bdz, ddx, ddy, ddz)
	minorD := det3f(adx, ady, adz, bdx, bdy, bdz, cdx, cdy, cdz)

	det := -aLift*minorA + bLift*minorB - cLift*minorC + dLift*minorD

	aPerm := adx*adx + ady*ady + adz*adz + math.Abs(a[3]-q[3])
	bPerm := bdx*bdx + bdy*bdy + bdz*bdz + math.Abs(b[3]-q[3])
	cPerm := cdx*cdx + cdy*cdy + cdz*cdz + math.Abs(c[3]-q[3])
	dPerm := ddx*ddx + ddy*ddy + ddz*ddz + math.Abs(d[3]-q[3])

	sum := aPerm*perm3f(bdx, bdy, bdz, cdx, cdy, cdz, ddx, ddy, ddz) +
		bPerm*perm3f(adx, ady, adz, cdx, cdy, cdz, ddx, ddy, ddz) +
		cPerm*perm3f(adx, ady, adz, bdx, bdy, bdz, ddx, ddy, ddz) +
		dPerm*perm3f(adx, ady, adz, bdx, bdy, bdz, cdx, cdy, cdz)
	bound := sum * inball3wK * expansion.Epsilon
	return det, bound
}

// inball3wExact follows the same heap-scratch convention as
// inball2dExact; see its doc comment.
func inball3wExact(a, b, c, d, q []float64) float64 {
	// Stage 1: Translate to q and lift each vertex by its power
	// distance.
	va, aLift := powerLift3(a, q)
	vb, bLift := powerLift3(b, q)
	vc, cLift := powerLift3(c, q)
	vd, dLift := powerLift3(d, q)

	// Stage 2: Minors and combination, as in inball3dExact.
	minorA := det3(vb, vc, vd)
	minorB := det3(va, vc, vd)
	minorC := det3(va, vb, vd)
	minorD := det3(va, vb, vc)

	termA := expansion.Multiply(make(expansion.Expansion, 0, 2*len(aLift)*len(minorA)), aLift, minorA)
	termB := expansion.Multiply(make(expansion.Expansion, 0, 2*len(bLift)*len(minorB)), bLift, minorB)
	termC := expansion.Multiply(make(expansion.Expansion, 0, 2*len(cLift)*len(minorC)), cLift, minorC)
	termD := expansion.Multiply(make(expansion.Expansion, 0, 2*len(dLift)*len(minorD)), dLift, minorD)

	// -termA+termB-termC+termD; see inball3dExact's matching comment.
	ab := expansion.Sub(make(expansion.Expansion, 0, len(termA)+len(termB)), termB, termA)
	cd := expansion.Sub(make(expansion.Expansion, 0, len(termC)+len(termD)), termD, termC)
	sum := expansion.Sum(make(expansion.Expansion, 0, len(ab)+len(cd)), ab, cd)
	return sum.Leading()
}
