package rasterize

import (
	"image/color"

	"github.com/havenmesh/triangulate/polyline"
)

// Option configures rasterization.
type Option func(*Config)

// WithDimensions sets the output image dimensions.
func WithDimensions(width, height int) Option {
	return func(c *Config) {
		if width > 0 {
			c.Width = width
		}
		if height > 0 {
			c.Height = height
		}
	}
}

// WithVertexLabels enables or disables vertex ID labels.
func WithVertexLabels(enable bool) Option {
	return func(c *Config) {
		c.VertexLabels = enable
	}
}

// WithEdgeLabels enables or disables edge labels.
func WithEdgeLabels(enable bool) Option {
	return func(c *Config) {
		c.EdgeLabels = enable
	}
}

// WithTriangleLabels enables or disables triangle labels.
func WithTriangleLabels(enable bool) Option {
	return func(c *Config) {
		c.TriangleLabels = enable
	}
}

// WithFillTriangles enables or disables triangle fills.
func WithFillTriangles(enable bool) Option {
	return func(c *Config) {
		c.FillTriangles = enable
	}
}

// WithBoundaryColor sets the color used to draw the domain boundary loop.
func WithBoundaryColor(col color.Color) Option {
	return func(c *Config) {
		c.BoundaryColor = col
	}
}

// WithHoleColor sets the color used to draw hole loops.
func WithHoleColor(col color.Color) Option {
	return func(c *Config) {
		c.HoleColor = col
	}
}

// WithDebugElement appends a labeled line segment to be overlaid on the
// rendered mesh, given in mesh coordinates.
func WithDebugElement(name string, sx, sy, tx, ty float64) Option {
	return func(c *Config) {
		c.DebugElements = append(c.DebugElements, DebugElement{
			Name: name, SourceX: sx, SourceY: sy, TargetX: tx, TargetY: ty,
		})
	}
}

// WithDebugLocation appends a labeled point to be overlaid on the rendered
// mesh, given in mesh coordinates.
func WithDebugLocation(name string, x, y float64) Option {
	return func(c *Config) {
		c.DebugLocations = append(c.DebugLocations, DebugLocation{Name: name, X: x, Y: y})
	}
}

// WithBoundary sets the domain boundary loop to overlay on the rendered mesh.
func WithBoundary(p polyline.Polyline) Option {
	return func(c *Config) {
		c.Boundary = p
	}
}

// WithHoles sets the hole loops to overlay on the rendered mesh.
func WithHoles(holes []polyline.Polyline) Option {
	return func(c *Config) {
		c.Holes = holes
	}
}
