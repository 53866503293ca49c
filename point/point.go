package point

import (
	"fmt"
	"math"
)

// Point2 is an unweighted point in the Euclidean plane.
type Point2 struct {
	X, Y float64
}

// Point3 is an unweighted point in Euclidean 3-space.
type Point3 struct {
	X, Y, Z float64
}

// WeightedPoint2 is a 2D site carrying a power-distance weight (a
// squared radius): the site (p, W) contributes |q-p|^2 - W to any
// power-distance computation involving it.
type WeightedPoint2 struct {
	X, Y, W float64
}

// WeightedPoint3 is the 3D analogue of WeightedPoint2.
type WeightedPoint3 struct {
	X, Y, Z, W float64
}

// Coords returns the flat 2-entry view for passing directly to an
// unweighted predicate entry point.
func (p Point2) Coords() []float64 { return []float64{p.X, p.Y} }

// Coords returns the flat 3-entry view.
func (p Point3) Coords() []float64 { return []float64{p.X, p.Y, p.Z} }

// Coords returns the flat 3-entry (d+1) view the weighted predicates
// consume, the weight in the trailing slot.
func (p WeightedPoint2) Coords() []float64 { return []float64{p.X, p.Y, p.W} }

// Coords returns the flat 4-entry (d+1) view for weighted 3D
// predicates.
func (p WeightedPoint3) Coords() []float64 { return []float64{p.X, p.Y, p.Z, p.W} }

// Unweighted discards the weight, giving the underlying site as a
// plain Point2 — useful with the weight-equality short-circuit, which
// re-dispatches to the unweighted kernel.
func (p WeightedPoint2) Unweighted() Point2 { return Point2{p.X, p.Y} }

// Unweighted is the 3D analogue of Point2.Unweighted.
func (p WeightedPoint3) Unweighted() Point3 { return Point3{p.X, p.Y, p.Z} }

func checkFinite(name string, vs ...float64) error {
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("point: %s: %w at index %d", name, ErrNaNOrInf, i)
		}
	}
	return nil
}

// New2 builds a Point2 from a flat slice, consuming only its first two
// entries; any trailing weight is ignored, matching how the unweighted
// predicates treat their inputs.
func New2(coords []float64) (Point2, error) {
	if len(coords) < 2 {
		return Point2{}, fmt.Errorf("point: New2: %w (want >=2, got %d)", ErrTooFewCoords, len(coords))
	}
	if err := checkFinite("New2", coords[0], coords[1]); err != nil {
		return Point2{}, err
	}
	return Point2{X: coords[0], Y: coords[1]}, nil
}

// New3 builds a Point3 from a flat slice, consuming only its first
// three entries.
func New3(coords []float64) (Point3, error) {
	if len(coords) < 3 {
		return Point3{}, fmt.Errorf("point: New3: %w (want >=3, got %d)", ErrTooFewCoords, len(coords))
	}
	if err := checkFinite("New3", coords[0], coords[1], coords[2]); err != nil {
		return Point3{}, err
	}
	return Point3{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// NewWeighted2 builds a WeightedPoint2 from a flat d+1 slice: the
// first two entries are coordinates, the third is the power-distance
// weight.
func NewWeighted2(coords []float64) (WeightedPoint2, error) {
	if len(coords) < 3 {
		return WeightedPoint2{}, fmt.Errorf("point: NewWeighted2: %w (want >=3, got %d)", ErrTooFewCoords, len(coords))
	}
	if err := checkFinite("NewWeighted2", coords[0], coords[1], coords[2]); err != nil {
		return WeightedPoint2{}, err
	}
	return WeightedPoint2{X: coords[0], Y: coords[1], W: coords[2]}, nil
}

// NewWeighted3 builds a WeightedPoint3 from a flat d+1 slice.
func NewWeighted3(coords []float64) (WeightedPoint3, error) {
	if len(coords) < 4 {
		return WeightedPoint3{}, fmt.Errorf("point: NewWeighted3: %w (want >=4, got %d)", ErrTooFewCoords, len(coords))
	}
	if err := checkFinite("NewWeighted3", coords[0], coords[1], coords[2], coords[3]); err != nil {
		return WeightedPoint3{}, err
	}
	return WeightedPoint3{X: coords[0], Y: coords[1], Z: coords[2], W: coords[3]}, nil
}
