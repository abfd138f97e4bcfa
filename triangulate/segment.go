package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// IncludeSegment recovers the constrained segment (pID, qID): if the
// straight edge already exists in the mesh it is simply registered as a
// constraint, otherwise the cavity of triangles that conflict with it is
// excised and locally re-triangulated with the segment forced present,
// then copied back.
func IncludeSegment(store *mesh.Store, pID, qID types.VertexID, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline) error {
	edge := types.NewEdge(pID, qID)

	if _, ok := store.TriangleAt(types.NewSegment(pID, qID)); ok {
		constraints[edge] = true
		return nil
	}
	if _, ok := store.TriangleAt(types.NewSegment(qID, pID)); ok {
		constraints[edge] = true
		return nil
	}

	p := store.PointOf(pID)
	q := store.PointOf(qID)

	var cavity []types.Triangle
	for _, t := range store.SolidTriangles() {
		if triangleBlockedByConstraint(t, constraints) {
			continue
		}
		if triangleConflictsWithSegment(store, t, p, q) {
			cavity = append(cavity, t)
		}
	}

	if len(cavity) == 0 {
		// The mesh is a full tiling of the domain, so a genuinely new edge
		// between two distinct points always crosses the interior of at
		// least one triangle and so conflicts with at least one candidate
		// unless every conflicting triangle was excluded by
		// triangleBlockedByConstraint — i.e. this segment transversally
		// crosses an already-recorded constraint. Callers are expected to
		// split a segment at every such crossing before calling
		// IncludeSegment (see Triangulator.includeSegmentSplitAtCrossings),
		// so reaching this with an empty cavity signals that didn't happen
		// rather than that the edge is already present.
		return ErrCorruptAdjacency
	}

	vertexSet := make(map[types.VertexID]bool)
	triEdges := make([][3]polyline.OrientedEdge, len(cavity))
	for i, t := range cavity {
		a, b, c := store.PointOf(t.V1()), store.PointOf(t.V2()), store.PointOf(t.V3())
		triEdges[i] = [3]polyline.OrientedEdge{{A: a, B: b}, {A: b, B: c}, {A: c, B: a}}
		vertexSet[t.V1()] = true
		vertexSet[t.V2()] = true
		vertexSet[t.V3()] = true
	}

	for _, t := range cavity {
		store.RemoveTriangle(t)
	}

	hulls := polyline.TrianglesHull(triEdges)
	if len(hulls) == 0 {
		return ErrCorruptAdjacency
	}
	hull := hulls[0]

	local := mesh.NewStore()
	toMain := make(map[types.Point]types.VertexID, len(vertexSet)+2)
	for id := range vertexSet {
		toMain[store.PointOf(id)] = id
	}
	toMain[p] = pID
	toMain[q] = qID

	lp := local.AddVertex(p)
	lq := local.AddVertex(q)
	bootstrapFromSegment(local, lp, lq)
	localConstraints := map[types.Edge]bool{types.NewEdge(lp, lq): true}

	seen := map[types.Point]bool{p: true, q: true}
	var others []types.VertexID
	addLocal := func(pt types.Point) {
		if seen[pt] {
			return
		}
		seen[pt] = true
		others = append(others, local.AddVertex(pt))
	}
	for _, hp := range hull.Points {
		addLocal(hp)
	}
	for id := range vertexSet {
		addLocal(store.PointOf(id))
	}

	if err := Include(local, others, localConstraints, nil, nil); err != nil {
		return err
	}

	for _, t := range local.SolidTriangles() {
		a, aok := toMain[local.PointOf(t.V1())]
		b, bok := toMain[local.PointOf(t.V2())]
		c, cok := toMain[local.PointOf(t.V3())]
		if !aok || !bok || !cok {
			return ErrCorruptAdjacency
		}
		store.IncludeTriangle(types.NewTriangle(a, b, c))
	}

	constraints[edge] = true
	return nil
}

// triangleBlockedByConstraint reports whether any of t's three edges is
// already a member of the running constraint set; such a triangle is never
// added to a recovery cavity, so segment recovery never breaches an
// already-recovered constraint.
func triangleBlockedByConstraint(t types.Triangle, constraints map[types.Edge]bool) bool {
	for _, e := range t.OrientedEdges() {
		if constraints[e.AsEdge()] {
			return true
		}
	}
	return false
}

// triangleConflictsWithSegment reports whether t must be excised to recover
// segment pq: either pq transversally crosses one of t's edges, or t's
// circumcircle encloses p or q.
func triangleConflictsWithSegment(store *mesh.Store, t types.Triangle, p, q types.Point) bool {
	a := store.PointOf(t.V1())
	b := store.PointOf(t.V2())
	c := store.PointOf(t.V3())

	edges := [3][2]types.Point{{a, b}, {b, c}, {c, a}}
	for _, e := range edges {
		if _, ok := predicates.Intersection(p, q, e[0], e[1]); ok {
			return true
		}
	}

	if predicates.InCircle(a, b, c, p) == predicates.Inside {
		return true
	}
	if predicates.InCircle(a, b, c, q) == predicates.Inside {
		return true
	}
	return false
}
