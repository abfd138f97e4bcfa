package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// centroid returns the arithmetic mean of three points.
func centroid(a, b, c types.Point) types.Point {
	return types.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
}

// admissiblePoint reports whether p may participate in the domain: not
// strictly outside the boundary (when one is given) and not strictly
// inside any hole.
func admissiblePoint(p types.Point, boundary *polyline.Polyline, holes []polyline.Polyline) bool {
	if boundary != nil && len(boundary.Points) > 0 {
		c, ok := boundary.Contains(p)
		if ok && c == predicates.Outside {
			return false
		}
	}
	for _, h := range holes {
		c, ok := h.Contains(p)
		if ok && c == predicates.Inside {
			return false
		}
	}
	return true
}

// admissibleTriangle reports whether the prospective triangle (a,b,c) may
// be inserted: its centroid must not be strictly outside the boundary nor
// strictly inside any hole. Ghost triangles (any vertex the ghost sentinel)
// are always admissible — they represent exterior bookkeeping, not domain
// geometry, so boundary/hole continence does not apply to them.
func admissibleTriangle(store *mesh.Store, t types.Triangle, boundary *polyline.Polyline, holes []polyline.Polyline) bool {
	if t.IsGhost() {
		return true
	}
	c := centroid(store.PointOf(t.V1()), store.PointOf(t.V2()), store.PointOf(t.V3()))
	return admissiblePoint(c, boundary, holes)
}

// isConstraint reports whether the undirected edge underlying the oriented
// segment e is a member of the running constraint set.
func isConstraint(constraints map[types.Edge]bool, e types.Segment) bool {
	return constraints[e.AsEdge()]
}

// reorderGhostLast rotates a triangle so that, if it carries the ghost
// vertex, the ghost occupies V3.
func reorderGhostLast(t types.Triangle) types.Triangle {
	for i := 0; i < 3; i++ {
		if t[i].IsGhost() {
			return types.Triangle{t[(i+1)%3], t[(i+2)%3], t[i]}
		}
	}
	return t
}

// encircles decides whether candidate point p conflicts with triangle t,
// i.e. whether inserting p at t should trigger cavity expansion across t.
// For a ghost triangle (v1, v2, ghost) this is the orientation-based
// extension from §4.4: p conflicts iff orientation(v1, v2, p) is CCW.
func encircles(store *mesh.Store, t types.Triangle, p types.Point) bool {
	if t.IsGhost() {
		g := reorderGhostLast(t)
		v1 := store.PointOf(g.V1())
		v2 := store.PointOf(g.V2())
		return predicates.Orient(v1, v2, p) == predicates.CCW
	}
	a := store.PointOf(t.V1())
	b := store.PointOf(t.V2())
	c := store.PointOf(t.V3())
	return predicates.InCircle(a, b, c, p) == predicates.Inside
}
