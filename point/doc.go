// Package point adapts the predicate surface's "flat sequence of
// doubles" input model (a point is d or d+1 float64s, the optional
// trailing entry being a power-distance weight) to idiomatic Go call
// sites.
//
// Point2/Point3 and WeightedPoint2/WeightedPoint3 are plain value
// types a caller can build, store in a slice, and pass around with
// normal Go field access, while Coords returns the flat []float64 view
// the predicate package's entry points actually consume. Nothing here
// is required by the predicate package — predicate.Orient2D and its
// siblings accept raw []float64 directly — these types exist purely so
// callers are not forced to hand-build slices at every call site.
package point
