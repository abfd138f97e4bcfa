package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// Include inserts each of ids into store via Bowyer-Watson cavity
// expansion, respecting constraints (cavity expansion never crosses a
// constrained edge) and the admissibility of boundary/holes (nil boundary
// and empty holes mean "no gating", used for the initial unconstrained
// triangulation of a boundary's own vertex set). An id that is already a
// vertex of some triangle in store is skipped, so re-inserting a vertex
// leaves the mesh unchanged.
//
// Vertices are processed one at a time rather than via a shared conflict
// map: each insertion runs its own cavity search to a fixed point before
// the next begins. This produces the same triangulation (up to the
// Delaunay-equivalent flip freedom the specification explicitly allows)
// as a simultaneous conflict-map implementation, with a simpler and more
// auditable control flow.
func Include(store *mesh.Store, ids []types.VertexID, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline) error {
	for _, id := range ids {
		if err := insertOne(store, id, constraints, boundary, holes); err != nil {
			return err
		}
	}
	return nil
}

// insertOne runs a single Bowyer-Watson point insertion of the vertex
// already present in store at id.
func insertOne(store *mesh.Store, id types.VertexID, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline) error {
	p := store.PointOf(id)

	// A vertex that is already a corner of the mesh has been inserted before.
	for _, t := range store.Triangles() {
		if triangleHasVertex(t, id) {
			return nil
		}
	}

	var seed types.Triangle
	found := false
	for _, t := range store.Triangles() {
		if triangleHasVertex(t, id) {
			continue
		}
		if encircles(store, t, p) {
			seed = t
			found = true
			break
		}
	}
	if !found {
		return ErrCorruptAdjacency
	}

	removed := map[types.Triangle]bool{seed.CanonicalKey(): true}
	var boundaryEdges []types.Segment

	seedEdges := seed.OrientedEdges()
	stack := append([]types.Segment(nil), seedEdges[:]...)
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbor, ok := store.TriangleAt(e.Reversed())
		if !ok {
			boundaryEdges = append(boundaryEdges, e)
			continue
		}
		if removed[neighbor.CanonicalKey()] {
			continue
		}
		if triangleHasVertex(neighbor, id) {
			boundaryEdges = append(boundaryEdges, e)
			continue
		}
		if isConstraint(constraints, e) {
			boundaryEdges = append(boundaryEdges, e)
			continue
		}
		if !encircles(store, neighbor, p) {
			boundaryEdges = append(boundaryEdges, e)
			continue
		}

		removed[neighbor.CanonicalKey()] = true
		for _, ne := range neighbor.OrientedEdges() {
			if ne == e.Reversed() {
				continue
			}
			stack = append(stack, ne)
		}
	}

	for key := range removed {
		store.RemoveTriangle(key)
	}

	for _, e := range boundaryEdges {
		tri := types.NewTriangle(e.Start(), e.End(), id)
		if e.Start().IsGhost() || e.End().IsGhost() {
			tri = reorderGhostLast(tri)
		}
		if !admissibleTriangle(store, tri, boundary, holes) {
			continue
		}
		store.IncludeTriangle(tri)
	}

	return nil
}

func triangleHasVertex(t types.Triangle, id types.VertexID) bool {
	return t[0] == id || t[1] == id || t[2] == id
}
