package mesh

import "github.com/havenmesh/triangulate/types"

// IncludeTriangle inserts t's three inner edges into the adjacency map and
// t into the triangle set. It returns false without modifying the store if
// t (under cyclic rotation) is already present.
//
// Non-ghost triangles are expected to already be CCW; this is not
// re-checked here (the Bowyer-Watson insertion procedures are responsible
// for orientation, since degeneracy/collinearity checks need the vertex
// coordinates this package-level call does not have).
func (m *Store) IncludeTriangle(t types.Triangle) bool {
	key := t.CanonicalKey()
	if _, exists := m.triangles[key]; exists {
		return false
	}

	edges := t.OrientedEdges()
	m.triangles[key] = t
	for _, e := range edges {
		m.adjacency[e] = t
	}

	if m.cfg.debugAddTriangle != nil {
		m.cfg.debugAddTriangle(t)
	}
	return true
}

// RemoveTriangle removes t from the triangle set and deletes its three
// inner edges from the adjacency map. It returns false if t was not
// present.
func (m *Store) RemoveTriangle(t types.Triangle) bool {
	key := t.CanonicalKey()
	if _, exists := m.triangles[key]; !exists {
		return false
	}

	delete(m.triangles, key)
	for _, e := range t.OrientedEdges() {
		delete(m.adjacency, e)
	}

	if m.cfg.debugRemove != nil {
		m.cfg.debugRemove(t)
	}
	return true
}

// HasTriangle reports whether t (under cyclic rotation) is present.
func (m *Store) HasTriangle(t types.Triangle) bool {
	_, ok := m.triangles[t.CanonicalKey()]
	return ok
}

// Edges returns the oriented inner edges currently present across every
// triangle. len(result) == 3*NumTriangles() at rest.
func (m *Store) Edges() []types.Segment {
	out := make([]types.Segment, 0, len(m.adjacency))
	for e := range m.adjacency {
		out = append(out, e)
	}
	return out
}
