// Package mesh implements the triangulation store: a set of triangles plus
// a half-edge adjacency map, per the data model's Triangulation type. It
// keeps the map and triangle set atomically in sync across insertion and
// removal so every higher-level procedure (Bowyer-Watson cavity expansion,
// boundary carving, segment recovery) can walk the mesh by oriented-edge
// lookup alone.
package mesh

import (
	"github.com/havenmesh/triangulate/spatial"
	"github.com/havenmesh/triangulate/types"
)

// Store owns the triangle set T and the oriented-edge adjacency map A of a
// growing Delaunay triangulation. The ghost vertex, when present, always
// occupies index GhostVertexID; it is not stored in the vertex slice.
type Store struct {
	vertices []types.Vertex

	// triangles is keyed by the triangle's rotation-normalized form so a
	// triangle and its two cyclic rotations collide on the same entry.
	triangles map[types.Triangle]types.Triangle

	// adjacency maps an oriented inner edge (v1->v2) to the unique triangle
	// that has it as an inner edge. len(adjacency) == 3*len(triangles).
	adjacency map[types.Segment]types.Triangle

	cfg config

	vertexIndex spatial.Index
}

// NewStore creates a new empty triangulation store with the given options.
func NewStore(opts ...Option) *Store {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	m := &Store{
		vertices:  make([]types.Vertex, 0, 64),
		triangles: make(map[types.Triangle]types.Triangle),
		adjacency: make(map[types.Segment]types.Triangle),
		cfg:       cfg,
	}

	if cfg.mergeVertices {
		m.vertexIndex = spatial.NewHashGrid(cfg.effectiveMergeDistance())
	}

	return m
}

// NumVertices returns the number of non-ghost vertices in the store.
func (m *Store) NumVertices() int {
	return len(m.vertices)
}

// NumTriangles returns the number of triangles (ghost and non-ghost).
func (m *Store) NumTriangles() int {
	return len(m.triangles)
}

// GetVertex returns the coordinates of a non-ghost vertex by ID.
func (m *Store) GetVertex(id types.VertexID) types.Point {
	return m.vertices[id].Point
}

// IsValidVertexID reports whether id references an existing non-ghost
// vertex or is the ghost sentinel.
func (m *Store) IsValidVertexID(id types.VertexID) bool {
	return id.IsGhost() || (id >= 0 && int(id) < len(m.vertices))
}

// Epsilon returns the configured epsilon tolerance.
func (m *Store) Epsilon() float64 {
	return m.cfg.epsilon
}

// Triangles returns a copy of every triangle currently in the store.
func (m *Store) Triangles() []types.Triangle {
	out := make([]types.Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		out = append(out, t)
	}
	return out
}

// SolidTriangles returns a copy of every non-ghost triangle.
func (m *Store) SolidTriangles() []types.Triangle {
	out := make([]types.Triangle, 0, len(m.triangles))
	for _, t := range m.triangles {
		if !t.IsGhost() {
			out = append(out, t)
		}
	}
	return out
}

// Vertices returns a copy of every non-ghost vertex's coordinates.
func (m *Store) Vertices() []types.Point {
	out := make([]types.Point, len(m.vertices))
	for i, v := range m.vertices {
		out[i] = v.Point
	}
	return out
}

// TriangleAt looks up the triangle across the oriented edge e, i.e. the
// triangle for which e is an inner edge. ok is false when no such triangle
// exists (e is on the current outer frontier).
func (m *Store) TriangleAt(e types.Segment) (types.Triangle, bool) {
	t, ok := m.adjacency[e]
	return t, ok
}

// PointOf resolves a VertexID (including the ghost sentinel, which has no
// meaningful coordinates) to a Point. It panics on an out-of-range non-ghost
// id, which indicates a corrupt caller rather than recoverable input.
func (m *Store) PointOf(id types.VertexID) types.Point {
	if id.IsGhost() {
		return types.Point{}
	}
	return m.vertices[id].Point
}
