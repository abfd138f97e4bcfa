package types

// GhostVertexID is the reserved VertexID of the single shared ghost sentinel
// within a mesh.Store. It is distinct from NilVertex: NilVertex means "no
// vertex here", GhostVertexID means "the vertex at infinity".
const GhostVertexID VertexID = -2

// IsGhost reports whether v is the ghost sentinel id.
func (v VertexID) IsGhost() bool {
	return v == GhostVertexID
}

// IsGhost reports whether any vertex of the triangle is the ghost sentinel.
//
// By convention a ghost triangle always carries the ghost as V3; IsGhost
// does not assume this and checks all three slots so it stays correct for
// triangles under construction.
func (t Triangle) IsGhost() bool {
	return t[0].IsGhost() || t[1].IsGhost() || t[2].IsGhost()
}

// Equal reports whether two triangles name the same ordered cycle of
// vertices, i.e. equality invariant under the three cyclic rotations but
// not under reflection (a CCW triangle and its CW mirror are different
// triangles).
func (t Triangle) Equal(o Triangle) bool {
	for i := 0; i < 3; i++ {
		if t[0] == o[i] && t[1] == o[(i+1)%3] && t[2] == o[(i+2)%3] {
			return true
		}
	}
	return false
}

// OrientedEdges returns the triangle's three inner half-edges in CCW
// traversal order: (v1,v2), (v2,v3), (v3,v1). These are the keys the
// adjacency map A indexes a triangle by.
func (t Triangle) OrientedEdges() [3]Segment {
	return [3]Segment{
		NewSegment(t[0], t[1]),
		NewSegment(t[1], t[2]),
		NewSegment(t[2], t[0]),
	}
}

// CanonicalKey returns a rotation-normalized representation suitable for use
// as a map key, rotating so the smallest VertexID comes first.
func (t Triangle) CanonicalKey() Triangle {
	min := 0
	for i := 1; i < 3; i++ {
		if t[i] < t[min] {
			min = i
		}
	}
	return Triangle{t[min], t[(min+1)%3], t[(min+2)%3]}
}
