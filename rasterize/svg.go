package rasterize

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// RasterizeSVG writes an SVG rendering of a triangulation store to w, using
// the same layering and Config as Rasterize.
func RasterizeSVG(w io.Writer, m *mesh.Store, opts ...Option) error {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}

	transform := computeTransform(m, cfg)
	canvas := svg.New(w)
	canvas.Start(cfg.Width, cfg.Height)
	defer canvas.End()

	canvas.Rect(0, 0, cfg.Width, cfg.Height, "fill:"+hexColor(cfg.Background))

	if cfg.FillTriangles {
		for _, tri := range m.SolidTriangles() {
			ax, ay := transform.Apply(m.PointOf(tri.V1()))
			bx, by := transform.Apply(m.PointOf(tri.V2()))
			cx, cy := transform.Apply(m.PointOf(tri.V3()))
			canvas.Polygon([]int{ax, bx, cx}, []int{ay, by, cy}, "fill:"+hexColor(cfg.TriangleColor))
		}
	}

	if cfg.DrawEdges {
		style := "stroke:" + hexColor(cfg.EdgeColor) + ";stroke-width:1;fill:none"
		for _, tri := range m.SolidTriangles() {
			svgTriangleEdges(canvas, transform,
				m.PointOf(tri.V1()), m.PointOf(tri.V2()), m.PointOf(tri.V3()), style)
		}
	}

	if cfg.DrawBoundary && len(cfg.Boundary.Points) > 0 {
		svgLoop(canvas, transform, cfg.Boundary, "stroke:"+hexColor(cfg.BoundaryColor)+";stroke-width:2;fill:none")
	}

	if cfg.DrawHoles {
		for _, hole := range cfg.Holes {
			svgLoop(canvas, transform, hole, "stroke:"+hexColor(cfg.HoleColor)+";stroke-width:2;fill:none")
		}
	}

	if cfg.DrawVertices {
		for _, p := range m.Vertices() {
			x, y := transform.Apply(p)
			canvas.Circle(x, y, 2, "fill:"+hexColor(cfg.VertexColor))
		}
	}

	return nil
}

func svgTriangleEdges(canvas *svg.SVG, transform Transform, a, b, c types.Point, style string) {
	ax, ay := transform.Apply(a)
	bx, by := transform.Apply(b)
	cx, cy := transform.Apply(c)
	canvas.Polygon([]int{ax, bx, cx}, []int{ay, by, cy}, style)
}

func svgLoop(canvas *svg.SVG, transform Transform, p polyline.Polyline, style string) {
	xs := make([]int, len(p.Points))
	ys := make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = transform.Apply(pt)
	}
	if p.Closed {
		canvas.Polygon(xs, ys, style)
	} else {
		canvas.Polyline(xs, ys, style)
	}
}

func hexColor(c color.Color) string {
	if c == nil {
		return "none"
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
