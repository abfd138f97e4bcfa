// Package predicates implements the exact geometric predicates the
// triangulation kernel relies on for correctness: orientation, in-circle,
// encroachment, circumcenter, and segment intersection, all at the fixed
// tolerance ε = 1e-14.
package predicates

import (
	"math"

	"github.com/havenmesh/triangulate/types"
)

// Eps is the fixed tolerance used by every predicate in this file, per the
// data model's vertex-equality epsilon.
const Eps = types.GhostEpsilon

// Orientation classifies the turn made by three ordered points.
type Orientation int

const (
	Colinear Orientation = iota
	CCW
	CW
)

// Continence classifies a point's relationship to a region.
type Continence int

const (
	Outside Continence = iota
	Inside
	Boundary
)

// Orient returns the orientation of the ordered triple (a, b, c) using the
// sign of the determinant |ax ay 1; bx by 1; cx cy 1|, delegating to the
// adaptive-precision evaluator so near-degenerate inputs never flip sign
// under round-off.
func Orient(a, b, c types.Point) Orientation {
	switch orientSign(a, b, c) {
	case 1:
		return CCW
	case -1:
		return CW
	default:
		return Colinear
	}
}

// InCircle classifies point d against the circumcircle of (a, b, c), which
// must be supplied in CCW order. Boundary is returned when the lifting
// determinant is exactly zero: its sign is decided by inCircleSign, which
// falls back to arbitrary-precision arithmetic near zero, so no Eps band
// applies.
func InCircle(a, b, c, d types.Point) Continence {
	switch inCircleSign(a, b, c, d) {
	case 1:
		return Inside
	case -1:
		return Outside
	default:
		return Boundary
	}
}

// Encroach tests whether p lies inside, on, or outside the diametral circle
// of segment (v1, v2): p is Inside iff (p-v1)·(p-v2) < 0, Boundary iff the
// dot product is within Eps of zero, Outside otherwise.
func Encroach(v1, v2, p types.Point) Continence {
	dot := (p.X-v1.X)*(p.X-v2.X) + (p.Y-v1.Y)*(p.Y-v2.Y)
	if math.Abs(dot) <= Eps {
		return Boundary
	}
	if dot < 0 {
		return Inside
	}
	return Outside
}

// Circumcenter solves the 2x2 linear system for the center of the circle
// through a, b, c. It returns ok=false when the three points are collinear
// (the system is singular).
func Circumcenter(a, b, c types.Point) (types.Point, bool) {
	ax, ay := b.X-a.X, b.Y-a.Y
	bx, by := c.X-a.X, c.Y-a.Y
	d := 2 * (ax*by - ay*bx)
	if math.Abs(d) <= Eps {
		return types.Point{}, false
	}
	aLen2 := ax*ax + ay*ay
	bLen2 := bx*bx + by*by
	ux := (by*aLen2 - ay*bLen2) / d
	uy := (ax*bLen2 - bx*aLen2) / d
	return types.Point{X: a.X + ux, Y: a.Y + uy}, true
}

// CircumRadius2 returns the squared distance from the circumcenter to a.
func CircumRadius2(a, b, c types.Point) (float64, bool) {
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return 0, false
	}
	return Dist2(center, a), true
}

// QualityRatio returns circumradius / shortest-edge-length for triangle
// (a, b, c), the measure the Ruppert refinement loop bounds. It equals the
// product of the two non-shortest side lengths divided by four times the
// area, per the data model note in spec §9 glossary; ok is false for
// a degenerate (collinear) triangle.
func QualityRatio(a, b, c types.Point) (float64, bool) {
	area2 := Area2(a, b, c)
	if math.Abs(area2) <= Eps {
		return 0, false
	}
	la := math.Sqrt(Dist2(b, c))
	lb := math.Sqrt(Dist2(a, c))
	lc := math.Sqrt(Dist2(a, b))
	shortest := math.Min(la, math.Min(lb, lc))
	if shortest <= Eps {
		return 0, false
	}
	center, ok := Circumcenter(a, b, c)
	if !ok {
		return 0, false
	}
	r := math.Sqrt(Dist2(center, a))
	return r / shortest, true
}

// Intersection returns the intersection point of two closed segments when
// it lies within both bounding boxes (endpoints count), or the midpoint of
// the overlap for collinear-overlapping segments. ok is false when the
// segments are parallel and disjoint, or when the abstract line
// intersection falls outside either segment.
func Intersection(p1, p2, q1, q2 types.Point) (types.Point, bool) {
	pt, kind := SegmentIntersectionPoint(p1, p2, q1, q2, Eps)
	if kind == types.IntersectNone {
		return types.Point{}, false
	}
	return pt, true
}

// Midpoint returns the midpoint of segment (a, b).
func Midpoint(a, b types.Point) types.Point {
	return types.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// Dot returns the dot product of vectors (b-a) and (d-c).
func Dot(a, b, c, d types.Point) float64 {
	return (b.X-a.X)*(d.X-c.X) + (b.Y-a.Y)*(d.Y-c.Y)
}

// Parallel reports whether segments (a,b) and (c,d) are parallel within Eps.
func Parallel(a, b, c, d types.Point) bool {
	abx, aby := b.X-a.X, b.Y-a.Y
	cdx, cdy := d.X-c.X, d.Y-c.Y
	return math.Abs(abx*cdy-aby*cdx) <= Eps
}

// Angle returns the signed angle ∠(a, b, c) in radians, in (-π, π],
// positive for a counter-clockwise turn from (b-a) to (c-b).
func Angle(a, b, c types.Point) float64 {
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y
	return math.Atan2(v1x*v2y-v1y*v2x, v1x*v2x+v1y*v2y)
}
