package document

import "errors"

var (
	// ErrDomainDoesNotCoalesce is returned when the include polylines of a
	// document do not union into a single connected boundary.
	ErrDomainDoesNotCoalesce = errors.New("document: include polylines do not coalesce into one boundary")

	// ErrRemovalSplitsBoundary is returned when subtracting a boundary-
	// crossing removal would split the boundary into more than one piece.
	ErrRemovalSplitsBoundary = errors.New("document: removal splits the boundary into multiple pieces")

	// ErrUnknownIntent is returned for an Action.Intent outside
	// include/remove/constraint.
	ErrUnknownIntent = errors.New("document: unknown action intent")

	// ErrUnknownGeometry is returned for an Action.Geometry outside
	// polyline/circle/segments/vertices.
	ErrUnknownGeometry = errors.New("document: unknown action geometry")

	// ErrEmptyBoundary is returned when a document has no include actions
	// at all, leaving no boundary to triangulate.
	ErrEmptyBoundary = errors.New("document: no include actions to form a boundary")
)
