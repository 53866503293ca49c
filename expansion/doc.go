// Package expansion implements multi-precision expansion arithmetic:
// the representation of an arbitrary-precision real number as a sum of
// non-overlapping IEEE-754 doubles, along with the error-free
// transforms (EFTs) and expansion-algebra routines that build and
// combine such sums without rounding error.
//
// An Expansion of length n is an ordered sequence e[0], e[1], ...,
// e[n-1] such that:
//
//   - non-overlapping: for i<j either e[i]==0 or |e[i]| < ulp(e[j])
//   - increasing magnitude: |e[0]| <= |e[1]| <= ... <= |e[n-1]|
//
// The value represented is the unrounded sum of all components; the
// last nonzero component (the "leading" term) carries the sign of the
// exact value. See J.R. Shewchuk, "Adaptive Precision Floating-Point
// Arithmetic and Fast Robust Geometric Predicates," Discrete &
// Computational Geometry 18 (1997), 305-363.
//
// Callers supply the backing array for any output Expansion, sized by
// the growth formulas documented on each function. The error-free
// transforms, FromScalar, FromDiff, Sum and Scale allocate nothing;
// Sub heap-allocates a negated copy of its second operand, and
// Multiply and Dot heap-allocate their partial-product and
// running-total scratch buffers. No routine in this package branches on
// the caller's choice of capacity beyond a defensive panic if the
// supplied backing array is too small — that condition is a derivation
// bug in the caller, never a consequence of user input, so it panics
// rather than returning an error (see ./errors.go).
package expansion
