package predicates

import (
	"math"

	"github.com/havenmesh/triangulate/types"
)

// Area2 computes twice the signed area of a triangle.
func Area2(a, b, c types.Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// PointInTriangle tests if a point is inside or on a triangle, using the
// same adaptive-precision Orient the rest of the package relies on so a
// point exactly on an edge is never misclassified by round-off.
func PointInTriangle(p, a, b, c types.Point, eps float64) bool {
	if math.Abs(Area2(a, b, c)) <= eps {
		return false
	}

	o1 := Orient(a, b, p)
	o2 := Orient(b, c, p)
	o3 := Orient(c, a, p)

	if (o1 != CW && o2 != CW && o3 != CW) || (o1 != CCW && o2 != CCW && o3 != CCW) {
		return true
	}
	return false
}

// PointStrictlyInTriangle tests if a point lies strictly inside a triangle.
func PointStrictlyInTriangle(p, a, b, c types.Point, eps float64) bool {
	if math.Abs(Area2(a, b, c)) <= eps {
		return false
	}

	o1 := Orient(a, b, p)
	o2 := Orient(b, c, p)
	o3 := Orient(c, a, p)

	if o1 == Colinear || o2 == Colinear || o3 == Colinear {
		return false
	}

	return o1 == o2 && o2 == o3
}
