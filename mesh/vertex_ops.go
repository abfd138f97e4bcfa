package mesh

import (
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/spatial"
	"github.com/havenmesh/triangulate/types"
)

// AddVertex adds a non-ghost vertex to the store, or returns the id of an
// existing vertex within merge distance.
func (m *Store) AddVertex(p types.Point) types.VertexID {
	if m.cfg.mergeVertices {
		if m.vertexIndex == nil {
			m.vertexIndex = spatial.NewHashGrid(m.cfg.effectiveMergeDistance())
			for id, existing := range m.vertices {
				m.vertexIndex.AddVertex(types.VertexID(id), existing.Point)
			}
		}

		radius := m.cfg.effectiveMergeDistance()
		candidates := m.vertexIndex.FindVerticesNear(p, radius)
		for _, candidate := range candidates {
			if predicates.Dist2(p, m.vertices[candidate].Point) <= radius*radius {
				if m.cfg.debugAddVertex != nil {
					m.cfg.debugAddVertex(candidate, m.vertices[candidate].Point)
				}
				return candidate
			}
		}
	}

	id := types.VertexID(len(m.vertices))
	m.vertices = append(m.vertices, types.NewVertex(p))

	if m.vertexIndex != nil {
		m.vertexIndex.AddVertex(id, p)
	}

	if m.cfg.debugAddVertex != nil {
		m.cfg.debugAddVertex(id, p)
	}

	return id
}

// FindVertexNear searches for a vertex within merge distance of p.
func (m *Store) FindVertexNear(p types.Point) (types.VertexID, bool) {
	if m.vertexIndex == nil {
		m.buildVertexIndex()
	}
	if m.vertexIndex == nil {
		return types.NilVertex, false
	}

	radius := m.cfg.effectiveMergeDistance()
	candidates := m.vertexIndex.FindVerticesNear(p, radius)
	for _, candidate := range candidates {
		if predicates.Dist2(p, m.vertices[candidate].Point) <= radius*radius {
			return candidate, true
		}
	}
	return types.NilVertex, false
}

func (m *Store) buildVertexIndex() {
	radius := m.cfg.effectiveMergeDistance()
	if radius <= 0 {
		return
	}
	m.vertexIndex = spatial.NewHashGrid(radius)
	for id, v := range m.vertices {
		m.vertexIndex.AddVertex(types.VertexID(id), v.Point)
	}
	m.vertexIndex.Build()
}
