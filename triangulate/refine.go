package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// RefinementWarning reports that refinement was stopped by the iteration
// cap rather than reaching a fixed point. The mesh returned alongside it
// is not rolled back — it is the best-effort result of however much
// refinement completed.
type RefinementWarning struct {
	Iterations int
}

func (w *RefinementWarning) Error() string {
	return "triangulate: refinement stopped at the iteration cap before reaching a fixed point"
}

// thirdVertex returns the vertex of t other than a and b.
func thirdVertex(t types.Triangle, a, b types.VertexID) types.VertexID {
	for _, v := range t {
		if v != a && v != b {
			return v
		}
	}
	return types.NilVertex
}

// splitSegment replaces the mesh edge (v1, v2) with a new vertex at its
// midpoint, splitting each of its (up to two) adjacent triangles in two.
// It returns the new vertex's ID.
func splitSegment(store *mesh.Store, v1, v2 types.VertexID) types.VertexID {
	p1 := store.PointOf(v1)
	p2 := store.PointOf(v2)
	mid := predicates.Midpoint(p1, p2)
	midID := store.AddVertex(mid)

	if tA, ok := store.TriangleAt(types.NewSegment(v1, v2)); ok {
		apex := thirdVertex(tA, v1, v2)
		store.RemoveTriangle(tA)
		store.IncludeTriangle(reorderGhostLast(types.Triangle{v1, midID, apex}))
		store.IncludeTriangle(reorderGhostLast(types.Triangle{midID, v2, apex}))
	}
	if tB, ok := store.TriangleAt(types.NewSegment(v2, v1)); ok {
		apex := thirdVertex(tB, v2, v1)
		store.RemoveTriangle(tB)
		store.IncludeTriangle(reorderGhostLast(types.Triangle{v2, midID, apex}))
		store.IncludeTriangle(reorderGhostLast(types.Triangle{midID, v1, apex}))
	}

	return midID
}

// encroachingVertex returns a mesh vertex strictly inside the diametral
// circle of (v1, v2), if any.
func encroachingVertex(store *mesh.Store, v1, v2 types.VertexID) (types.VertexID, bool) {
	p1 := store.PointOf(v1)
	p2 := store.PointOf(v2)
	for i := 0; i < store.NumVertices(); i++ {
		id := types.VertexID(i)
		if id == v1 || id == v2 {
			continue
		}
		if predicates.Encroach(p1, p2, store.PointOf(id)) == predicates.Inside {
			return id, true
		}
	}
	return types.NilVertex, false
}

// Unencroach repeatedly splits every constraint segment encroached by a
// mesh vertex, at its midpoint, until no half of any split remains
// encroached. It returns, for each segment that was a constraint when
// Unencroach was called, the set of (possibly identical) leaf segments it
// was rewritten into.
func Unencroach(store *mesh.Store, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline, maxIterations int) map[types.Edge][]types.Edge {
	type pending struct {
		v1, v2 types.VertexID
		origin types.Edge
	}

	result := make(map[types.Edge][]types.Edge, len(constraints))
	var work []pending
	for e := range constraints {
		result[e] = []types.Edge{e}
		work = append(work, pending{e.V1(), e.V2(), e})
	}

	for i := 0; len(work) > 0 && i < maxIterations; i++ {
		s := work[0]
		work = work[1:]

		if _, encroached := encroachingVertex(store, s.v1, s.v2); !encroached {
			continue
		}

		mid := splitSegment(store, s.v1, s.v2)
		old := types.NewEdge(s.v1, s.v2)
		delete(constraints, old)
		left := types.NewEdge(s.v1, mid)
		right := types.NewEdge(mid, s.v2)
		constraints[left] = true
		constraints[right] = true

		leaves := result[s.origin]
		rewritten := make([]types.Edge, 0, len(leaves)+1)
		for _, leaf := range leaves {
			if leaf != old {
				rewritten = append(rewritten, leaf)
			}
		}
		result[s.origin] = append(rewritten, left, right)

		work = append(work, pending{s.v1, mid, s.origin}, pending{mid, s.v2, s.origin})
	}

	return result
}

// findEncroachedConstraint returns a constraint segment whose diametral
// circle strictly contains p, if any.
func findEncroachedConstraint(store *mesh.Store, constraints map[types.Edge]bool, p types.Point) (types.Edge, bool) {
	for e := range constraints {
		a := store.PointOf(e.V1())
		b := store.PointOf(e.V2())
		if predicates.Encroach(a, b, p) == predicates.Inside {
			return e, true
		}
	}
	return types.Edge{}, false
}

// findPoorTriangle returns a non-ghost triangle whose quality ratio is at
// or above qualityRatio, or (when maxArea is set) whose area exceeds it,
// skipping any triangle whose canonical key is in skip.
func findPoorTriangle(store *mesh.Store, qualityRatio float64, maxArea *float64, skip map[types.Triangle]bool) (types.Triangle, bool) {
	for _, t := range store.SolidTriangles() {
		if skip[t.CanonicalKey()] {
			continue
		}
		a, b, c := store.PointOf(t.V1()), store.PointOf(t.V2()), store.PointOf(t.V3())
		ratio, ok := predicates.QualityRatio(a, b, c)
		if ok && ratio >= qualityRatio {
			return t, true
		}
		if maxArea != nil {
			if area := triangleArea(a, b, c); area > *maxArea {
				return t, true
			}
		}
	}
	return types.Triangle{}, false
}

func triangleArea(a, b, c types.Point) float64 {
	area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
	if area < 0 {
		area = -area
	}
	return area / 2
}

// SplitIrregular inserts Steiner points (triangle circumcenters, or the
// midpoint of a segment the circumcenter would encroach) until every
// non-ghost triangle satisfies qualityRatio and maxArea, or the iteration
// cap is reached.
func SplitIrregular(store *mesh.Store, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline, qualityRatio float64, maxArea *float64, maxIterations int) (bool, error) {
	skip := make(map[types.Triangle]bool)
	changed := false

	for i := 0; i < maxIterations; i++ {
		t, ok := findPoorTriangle(store, qualityRatio, maxArea, skip)
		if !ok {
			return changed, nil
		}

		a, b, c := store.PointOf(t.V1()), store.PointOf(t.V2()), store.PointOf(t.V3())
		center, ok := predicates.Circumcenter(a, b, c)
		if !ok {
			skip[t.CanonicalKey()] = true
			continue
		}

		if e, encroached := findEncroachedConstraint(store, constraints, center); encroached {
			splitSegment(store, e.V1(), e.V2())
			delete(constraints, e)
			changed = true
			continue
		}

		if !admissiblePoint(center, boundary, holes) {
			skip[t.CanonicalKey()] = true
			continue
		}

		id := store.AddVertex(center)
		if err := Include(store, []types.VertexID{id}, constraints, boundary, holes); err != nil {
			return changed, err
		}
		changed = true
	}

	return changed, &RefinementWarning{Iterations: maxIterations}
}

// Refine alternates Unencroach and SplitIrregular until neither changes
// the mesh in a full pass (a fixed point) or the iteration cap is spent,
// in which case it returns a *RefinementWarning alongside the best-effort
// mesh rather than rolling back any work.
func Refine(store *mesh.Store, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline, qualityRatio float64, maxArea *float64, maxIterations int) (*RefinementWarning, error) {
	spent := 0
	for spent < maxIterations {
		before := store.NumTriangles()
		Unencroach(store, constraints, boundary, holes, maxIterations-spent)
		spent++

		changed, err := SplitIrregular(store, constraints, boundary, holes, qualityRatio, maxArea, maxIterations-spent)
		spent++
		if err != nil {
			if warn, ok := err.(*RefinementWarning); ok {
				return warn, nil
			}
			return nil, err
		}

		if !changed && store.NumTriangles() == before {
			return nil, nil
		}
	}
	return &RefinementWarning{Iterations: spent}, nil
}
