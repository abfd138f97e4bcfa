package rasterize

import (
	"image/color"

	"github.com/havenmesh/triangulate/polyline"
)

// DebugElement is a labeled line segment overlaid on the rendered mesh,
// in mesh coordinates rather than pixel coordinates.
type DebugElement struct {
	Name                       string
	SourceX, SourceY           float64
	TargetX, TargetY           float64
}

// DebugLocation is a labeled point overlaid on the rendered mesh, in mesh
// coordinates rather than pixel coordinates.
type DebugLocation struct {
	Name string
	X, Y float64
}

// Config holds options for rasterizing a mesh to an image.
type Config struct {
	Width  int
	Height int

	Background     color.Color
	VertexColor    color.Color
	EdgeColor      color.Color
	TriangleColor  color.Color
	BoundaryColor  color.Color
	HoleColor      color.Color

	FillTriangles  bool
	DrawVertices   bool
	DrawEdges      bool
	DrawBoundary   bool
	DrawHoles      bool

	VertexLabels   bool
	EdgeLabels     bool
	TriangleLabels bool

	DebugElements  []DebugElement
	DebugLocations []DebugLocation

	// Boundary and Holes are overlaid as closed loops on top of the mesh.
	// The Store itself has no notion of domain boundary; callers that have
	// one (typically a triangulate.Triangulator's Boundary() and Holes()) pass
	// it in via WithBoundary/WithHoles.
	Boundary polyline.Polyline
	Holes    []polyline.Polyline
}

// DefaultConfig returns sensible default rasterization settings.
func DefaultConfig() Config {
	return Config{
		Width:  800,
		Height: 600,

		Background:     color.RGBA{R: 255, G: 255, B: 255, A: 255}, // White
		VertexColor:    color.RGBA{R: 0, G: 0, B: 0, A: 255},       // Black
		EdgeColor:      color.RGBA{R: 64, G: 64, B: 64, A: 255},    // Dark gray
		TriangleColor:  color.RGBA{R: 100, G: 100, B: 255, A: 128}, // Semi-transparent blue
		BoundaryColor:  color.RGBA{R: 0, G: 128, B: 0, A: 255},     // Green
		HoleColor:      color.RGBA{R: 255, G: 0, B: 0, A: 255},     // Red

		FillTriangles: true,
		DrawVertices:  true,
		DrawEdges:     true,
		DrawBoundary:  true,
		DrawHoles:     true,

		VertexLabels:   false,
		EdgeLabels:     false,
		TriangleLabels: false,
	}
}
