package triangulate

import (
	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// IncludeHole carves a hole out of an already-triangulated domain: it
// inserts the hole's vertices respecting the running constraint set,
// force-recovers every hole edge, flood-fills and removes the triangles
// inside the hole, and caps each hole edge with an inward-facing ghost. It
// returns the resolved vertex IDs (in hole order) and the hole's edges as
// a constraint set ready to be merged into the running constraints.
func IncludeHole(store *mesh.Store, hole polyline.Polyline, constraints map[types.Edge]bool, boundary *polyline.Polyline, holes []polyline.Polyline) ([]types.VertexID, map[types.Edge]bool, error) {
	n := len(hole.Points)
	if n < 3 {
		return nil, nil, ErrHoleOverlap
	}

	ids := make([]types.VertexID, n)
	for i, p := range hole.Points {
		id, ok := store.FindVertexNear(p)
		if !ok {
			id = store.AddVertex(p)
			if err := Include(store, []types.VertexID{id}, constraints, boundary, holes); err != nil {
				return nil, nil, err
			}
		}
		ids[i] = id
	}

	holeEdges := make(map[types.Edge]bool, n)
	for i := 0; i < n; i++ {
		if err := IncludeSegment(store, ids[i], ids[(i+1)%n], constraints, boundary, holes); err != nil {
			return nil, nil, err
		}
		holeEdges[types.NewEdge(ids[i], ids[(i+1)%n])] = true
	}

	carveInterior(store, ids, holeEdges)

	for i := 0; i < n; i++ {
		capTri := types.Triangle{ids[i], ids[(i+1)%n], types.GhostVertexID}
		store.IncludeTriangle(capTri)
	}

	for e := range holeEdges {
		constraints[e] = true
	}

	return ids, holeEdges, nil
}

// carveInterior removes every triangle lying inside the closed loop ids,
// flood-filling inward from the loop's own (forward) edges without
// crossing the loop itself.
func carveInterior(store *mesh.Store, ids []types.VertexID, loopEdges map[types.Edge]bool) {
	n := len(ids)
	removed := make(map[types.Triangle]bool)

	var stack []types.Segment
	for i := 0; i < n; i++ {
		inward := types.NewSegment(ids[i], ids[(i+1)%n])
		stack = append(stack, inward)
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
			if loopEdges[inner.AsEdge()] {
				continue
			}
			stack = append(stack, inner.Reversed())
		}
	}

	for t := range removed {
		store.RemoveTriangle(t)
	}
}
