package triangulate

import (
	"errors"

	"github.com/havenmesh/triangulate/types"
)

var (
	// ErrVertexOutsideBoundary is returned when a constraint vertex does
	// not lie strictly inside the established boundary.
	ErrVertexOutsideBoundary = errors.New("triangulate: vertex lies outside the boundary")

	// ErrVertexInsideHole is returned when a constraint vertex lies
	// strictly inside an established hole.
	ErrVertexInsideHole = errors.New("triangulate: vertex lies inside a hole")

	// ErrSegmentCrossesBoundary is returned when a constraint segment is
	// not strictly inside the boundary and strictly outside every hole.
	ErrSegmentCrossesBoundary = errors.New("triangulate: segment crosses the boundary or a hole")

	// ErrHoleOverlap is returned when a new hole is not strictly inside
	// the boundary, or overlaps an existing hole or segment.
	ErrHoleOverlap = errors.New("triangulate: hole overlaps the boundary, another hole, or a segment")

	// ErrCorruptAdjacency signals that a vertices::include lookup found a
	// missing adjacency entry. This should only occur if an invariant was
	// violated by a prior bug; the operation is aborted rather than
	// silently patched over.
	ErrCorruptAdjacency = errors.New("triangulate: corrupt adjacency map")

	// ErrNoBoundary is returned by operations that require a boundary to
	// already have been inserted via Triangulate.
	ErrNoBoundary = errors.New("triangulate: boundary has not been inserted yet")
)

// ValidationError reports the offending entities of a rejected batch
// insertion. Callers can inspect Points to report exactly which inputs were
// rejected rather than aborting the whole batch blindly.
type ValidationError struct {
	Err    error
	Points []types.Point
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
