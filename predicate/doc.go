// Package predicate implements the adaptive geometric predicate
// surface: three families of sign questions (orientation,
// bisector/power-distance comparison, in-ball/in-orthoball membership)
// in two and three dimensions; the bisector and in-ball families each
// come in an unweighted and a weighted (power-distance) variant, for a
// total of ten entry points.
//
// Every entry point follows the same two-stage dispatch: a filtered
// kernel evaluates the predicate in plain float64 arithmetic
// together with a rigorous a-priori error bound; when that bound
// certifies the sign of the result, it is returned directly. Otherwise
// an exact kernel re-evaluates the same expression using the
// expansion package's multi-precision arithmetic and returns the
// sign of its leading component. The filtered path is the hot path:
// it allocates nothing and runs in a handful of flops. The exact path
// is reached only on nearly-degenerate inputs, where its cost is
// acceptable because it is rare.
//
// Every entry point accepts raw []float64 points, exactly as the
// wire contract requires: unweighted predicates read only the first d
// entries of each point and ignore any trailing weight; weighted
// predicates additionally read entry d as the power-distance weight.
// See the point package for optional value-type wrappers.
//
// The returned float64's sign is the only meaningful part of the
// result — callers must never compare the magnitude against anything
// but zero. There is no error channel: malformed input (a point
// slice shorter than the predicate's dimension) is a caller bug and
// panics via an ordinary out-of-bounds slice access, the same way any
// other undersized-slice bug would in Go. NaN/Inf coordinates are
// caller-excluded undefined behavior per the wire contract; this
// package does not check for them on the hot path.
//
// Call expansion.Init() once, before the first predicate invocation,
// from a single goroutine. After that every entry point here is a
// pure function of its inputs and is safe for unsynchronized
// concurrent use from any number of goroutines.
package predicate
