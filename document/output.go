package document

import (
	"github.com/havenmesh/triangulate/triangulate"
)

// BuildOutput reads the final mesh out of tr and wraps it with the input
// document's identity fields, ready to be written to --output. Vertex IDs
// map directly to Store.Vertices() indices (mesh.Store.AddVertex hands out
// IDs in insertion order with no gaps), so triangle vertex indices need no
// translation.
func BuildOutput(in Input, tr *triangulate.Triangulator) Output {
	store := tr.Store()

	coords := store.Vertices()
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = FromTypesPoint(c)
	}

	solid := store.SolidTriangles()
	triangles := make([]Triangle, len(solid))
	for i, t := range solid {
		triangles[i] = Triangle{V1: int(t.V1()), V2: int(t.V2()), V3: int(t.V3())}
	}

	return Output{
		ID:           in.ID,
		Name:         in.Name,
		Date:         in.Date,
		Coordinates:  points,
		Triangles:    triangles,
		Tetrahedrons: []struct{}{},
	}
}
