// Package document implements the JSON input/output document exchanged
// with the command line: an Input describes a domain as a list of
// include/remove/constraint actions over polylines, circles, segments, and
// vertices; Assemble turns that into a triangulate.Triangulator ready to
// run; an Output reports the resulting mesh.
package document

import (
	"time"

	"github.com/google/uuid"

	"github.com/havenmesh/triangulate/types"
)

// Point mirrors the wire point {x, y, z?}: z is accepted for input
// compatibility but the triangulator is strictly 2D, so it is dropped on
// read and never emitted on write.
type Point struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

// ToTypesPoint discards Z and returns the 2D point the triangulator uses.
func (p Point) ToTypesPoint() types.Point {
	return types.Point{X: p.X, Y: p.Y}
}

// FromTypesPoint wraps a 2D point for the wire format.
func FromTypesPoint(p types.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// RefineParams carries the refinement knobs, overridable by CLI flags.
type RefineParams struct {
	MaxArea *float64 `json:"max_area"`
	Quality float64  `json:"quality"`
}

// Action describes one piece of domain geometry: an include/remove polygon,
// a circle discretized into one, a set of constraint segments, or a set of
// standalone constraint vertices.
type Action struct {
	Intent   string    `json:"intent"`
	Geometry string    `json:"geometry"`
	Scalars  []float64 `json:"scalars,omitempty"`
	Points   []Point   `json:"points,omitempty"`
	Assemble [][]int   `json:"assemble,omitempty"`
}

// Intents recognized in Action.Intent.
const (
	IntentInclude    = "include"
	IntentRemove     = "remove"
	IntentConstraint = "constraint"
)

// Geometry kinds recognized in Action.Geometry.
const (
	GeometryPolyline = "polyline"
	GeometryCircle   = "circle"
	GeometrySegments = "segments"
	GeometryVertices = "vertices"
)

// Input is the full document read from --input.
type Input struct {
	ID      uuid.UUID    `json:"id"`
	Name    string       `json:"name"`
	Date    string       `json:"date"`
	Actions []Action     `json:"actions"`
	Params  RefineParams `json:"params"`
}

// Normalize fills in the id/date defaults the wire schema specifies
// ("default random"/"default now") when the document arrived without them.
func (in *Input) Normalize() {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.Date == "" {
		in.Date = time.Now().UTC().Format(time.RFC3339)
	}
}

// Triangle mirrors the output triangle {v1, v2, v3}, zero-based indices
// into Output.Coordinates.
type Triangle struct {
	V1 int `json:"v1"`
	V2 int `json:"v2"`
	V3 int `json:"v3"`
}

// Output is the document written to --output: the resolved mesh plus the
// input document's identity fields carried through unchanged.
type Output struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Date        string     `json:"date"`
	Coordinates []Point    `json:"coordinates"`
	Triangles   []Triangle `json:"triangles"`

	// Tetrahedrons is always empty: the triangulator is strictly planar.
	Tetrahedrons []struct{} `json:"tetrahedrons"`
}
