package mesh

import "errors"

var (
	// ErrInvalidVertexID indicates a vertex ID is out of range or invalid.
	ErrInvalidVertexID = errors.New("mesh: invalid vertex id")

	// ErrDegenerateTriangle indicates triangle vertices are collinear.
	ErrDegenerateTriangle = errors.New("mesh: degenerate triangle (collinear)")

	// ErrDuplicateTriangle indicates the triangle's inner edges are already
	// claimed by another triangle in the adjacency map.
	ErrDuplicateTriangle = errors.New("mesh: duplicate triangle")

	// ErrCorruptAdjacency indicates a lookup found the adjacency map and
	// triangle set disagree; this should only happen if invariants were
	// violated by a prior bug.
	ErrCorruptAdjacency = errors.New("mesh: corrupt adjacency map")

	// ErrTriangleNotFound indicates RemoveTriangle was asked to remove a
	// triangle that is not present.
	ErrTriangleNotFound = errors.New("mesh: triangle not present")
)
