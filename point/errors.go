// Package point: sentinel error set.
// These are returned only by the constructors in point.go, never by
// Coords or any predicate entry point — the predicate surface itself
// has no error channel. Every message is prefixed
// "point: ..." so callers can errors.Is against a stable sentinel
// regardless of wrapping.
package point

import "errors"

var (
	// ErrTooFewCoords is returned when a constructor is given a slice
	// shorter than the dimension it requires.
	ErrTooFewCoords = errors.New("point: too few coordinates")

	// ErrNaNOrInf is returned when a constructor is given a
	// coordinate or weight that is NaN or ±Inf. The predicate surface
	// has undefined behavior on such inputs; these constructors
	// reject them up front instead.
	ErrNaNOrInf = errors.New("point: NaN or Inf coordinate")
)
