package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// IncludeBoundary triangulates the domain bounded by a closed polyline that
// has not yet been consumed: it bootstraps the mesh from the boundary's
// first edge, Delaunay-triangulates the full vertex set with no gating,
// carves away the triangles exterior to the polygon, and caps every
// boundary edge with an inward-facing ghost. It returns the resolved
// vertex IDs (in boundary order) and the boundary's edges as a constraint
// set ready to be merged into a Triangulator's running constraints.
func IncludeBoundary(store *mesh.Store, boundary polyline.Polyline) ([]types.VertexID, map[types.Edge]bool, error) {
	n := len(boundary.Points)
	if n < 3 {
		return nil, nil, ErrNoBoundary
	}

	ids := make([]types.VertexID, n)
	for i, p := range boundary.Points {
		ids[i] = store.AddVertex(p)
	}

	bootstrapFromSegment(store, ids[0], ids[1])

	if err := Include(store, ids[2:], nil, nil, nil); err != nil {
		return nil, nil, err
	}

	// The unconstrained triangulation of B's own vertex set is not
	// guaranteed to realize every boundary edge as a mesh edge (concave
	// boundaries routinely have diagonals crossing where an edge should
	// be), so each boundary edge is force-recovered before carving can
	// rely on walking it.
	boundaryEdges := make(map[types.Edge]bool, n)
	for i := 0; i < n; i++ {
		if err := IncludeSegment(store, ids[i], ids[(i+1)%n], boundaryEdges, nil, nil); err != nil {
			return nil, nil, err
		}
	}

	carveExterior(store, ids, boundaryEdges)

	for i := 0; i < n; i++ {
		capTri := types.Triangle{ids[(i+1)%n], ids[i], types.GhostVertexID}
		store.IncludeTriangle(capTri)
	}

	return ids, boundaryEdges, nil
}

// bootstrapFromSegment seeds an empty store with the two ghost triangles
// that tile the whole plane around the degenerate initial segment v1-v2.
func bootstrapFromSegment(store *mesh.Store, v1, v2 types.VertexID) {
	store.IncludeTriangle(types.Triangle{v1, v2, types.GhostVertexID})
	store.IncludeTriangle(types.Triangle{v2, v1, types.GhostVertexID})
}

// carveExterior removes every triangle (real or ghost) lying outside the
// closed loop ids, by flood-filling outward from the loop's reversed
// (outward-facing) edges without ever crossing a boundary edge itself.
func carveExterior(store *mesh.Store, ids []types.VertexID, boundaryEdges map[types.Edge]bool) {
	n := len(ids)
	removed := make(map[types.Triangle]bool)

	var stack []types.Segment
	for i := 0; i < n; i++ {
		outward := types.NewSegment(ids[(i+1)%n], ids[i])
		stack = append(stack, outward)
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t, ok := store.TriangleAt(e)
		if !ok {
			continue
		}
		key := t.CanonicalKey()
		if removed[key] {
			continue
		}
		removed[key] = true

		for _, inner := range t.OrientedEdges() {
			if boundaryEdges[inner.AsEdge()] {
				continue
			}
			stack = append(stack, inner.Reversed())
		}
	}

	for t := range removed {
		store.RemoveTriangle(t)
	}
}
