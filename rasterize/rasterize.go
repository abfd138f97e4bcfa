package rasterize

import (
	"image"
	"image/color"
	"math"

	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// Rasterize renders a triangulation store to an RGBA image.
func Rasterize(m *mesh.Store, opts ...Option) (*image.RGBA, error) {
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

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	fillBackground(img, cfg.Background)

	transform := computeTransform(m, cfg)

	// Render in layers from back to front with alpha blending.

	if cfg.FillTriangles {
		renderTriangleFills(img, m, transform, cfg.TriangleColor)
	}

	if cfg.DrawEdges {
		renderEdges(img, m, transform, cfg.EdgeColor)
	}

	if cfg.DrawBoundary && len(cfg.Boundary.Points) > 0 {
		renderLoop(img, transform, cfg.Boundary, cfg.BoundaryColor)
	}

	if cfg.DrawHoles {
		for _, hole := range cfg.Holes {
			renderLoop(img, transform, hole, cfg.HoleColor)
		}
	}

	if cfg.DrawVertices {
		renderVertices(img, m, transform, cfg.VertexColor)
	}

	// Label rendering is a no-op placeholder until text rendering lands.
	if cfg.VertexLabels {
		renderVertexLabels(img, m, transform)
	}
	if cfg.EdgeLabels {
		renderEdgeLabels(img, m, transform)
	}
	if cfg.TriangleLabels {
		renderTriangleLabels(img, m, transform)
	}

	renderDebugElements(img, cfg, transform)
	renderDebugLocations(img, cfg, transform)

	return img, nil
}

// Transform converts mesh coordinates to image coordinates.
type Transform struct {
	scale   float64
	offsetX float64
	offsetY float64
}

// Apply converts a mesh point to image pixel coordinates.
func (t Transform) Apply(p types.Point) (int, int) {
	x := int(math.Round((p.X + t.offsetX) * t.scale))
	y := int(math.Round((p.Y + t.offsetY) * t.scale))
	return x, y
}

func computeTransform(m *mesh.Store, cfg Config) Transform {
	width, height := cfg.Width, cfg.Height

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p types.Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	for _, p := range m.Vertices() {
		grow(p)
	}
	for _, p := range cfg.Boundary.Points {
		grow(p)
	}
	for _, hole := range cfg.Holes {
		for _, p := range hole.Points {
			grow(p)
		}
	}

	if math.IsInf(minX, 1) {
		return Transform{scale: 1}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	paddingX := rangeX * 0.1
	paddingY := rangeY * 0.1

	minX -= paddingX
	minY -= paddingY
	maxX += paddingX
	maxY += paddingY

	spanX := maxX - minX
	spanY := maxY - minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}

	scaleX := float64(width-1) / spanX
	scaleY := float64(height-1) / spanY
	scale := math.Min(scaleX, scaleY)
	if scale <= 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		scale = 1
	}

	return Transform{
		scale:   scale,
		offsetX: -minX,
		offsetY: -minY,
	}
}

func fillBackground(img *image.RGBA, col color.Color) {
	if col == nil {
		col = color.RGBA{0, 0, 0, 0}
	}
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			img.Set(x, y, col)
		}
	}
}

func renderTriangleFills(img *image.RGBA, m *mesh.Store, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, tri := range m.SolidTriangles() {
		a := m.PointOf(tri.V1())
		b := m.PointOf(tri.V2())
		c := m.PointOf(tri.V3())
		ax, ay := transform.Apply(a)
		bx, by := transform.Apply(b)
		cx, cy := transform.Apply(c)
		FillTriangleAlpha(img, ax, ay, bx, by, cx, cy, col)
	}
}

func renderLoop(img *image.RGBA, transform Transform, p polyline.Polyline, col color.Color) {
	if col == nil || len(p.Points) < 2 {
		return
	}
	n := len(p.Points)
	last := n
	if !p.Closed {
		last = n - 1
	}
	for i := 0; i < last; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		x1, y1 := transform.Apply(a)
		x2, y2 := transform.Apply(b)
		DrawLineThickAlpha(img, x1, y1, x2, y2, col, 2)
	}
}

func renderEdges(img *image.RGBA, m *mesh.Store, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, tri := range m.SolidTriangles() {
		a := m.PointOf(tri.V1())
		b := m.PointOf(tri.V2())
		c := m.PointOf(tri.V3())
		x1, y1 := transform.Apply(a)
		x2, y2 := transform.Apply(b)
		x3, y3 := transform.Apply(c)
		DrawLineAlpha(img, x1, y1, x2, y2, col)
		DrawLineAlpha(img, x2, y2, x3, y3, col)
		DrawLineAlpha(img, x3, y3, x1, y1, col)
	}
}

func renderVertices(img *image.RGBA, m *mesh.Store, transform Transform, col color.Color) {
	if col == nil {
		return
	}
	for _, p := range m.Vertices() {
		x, y := transform.Apply(p)
		DrawPointAlpha(img, x, y, col)
	}
}

func renderVertexLabels(_ *image.RGBA, _ *mesh.Store, _ Transform)   {}
func renderEdgeLabels(_ *image.RGBA, _ *mesh.Store, _ Transform)     {}
func renderTriangleLabels(_ *image.RGBA, _ *mesh.Store, _ Transform) {}

func edgeFunction(x0, y0, x1, y1, x2, y2 int) int {
	return (x2-x0)*(y1-y0) - (y2-y0)*(x1-x0)
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// renderDebugElements draws debug lines with labels.
func renderDebugElements(img *image.RGBA, cfg Config, transform Transform) {
	if len(cfg.DebugElements) == 0 {
		return
	}

	debugColor := color.RGBA{R: 255, G: 0, B: 255, A: 255}

	for _, elem := range cfg.DebugElements {
		sx, sy := transform.Apply(types.Point{X: elem.SourceX, Y: elem.SourceY})
		tx, ty := transform.Apply(types.Point{X: elem.TargetX, Y: elem.TargetY})

		DrawLineThickAlpha(img, sx, sy, tx, ty, debugColor, 2)
		DrawCircleAlpha(img, sx, sy, 3, debugColor)
		DrawCircleAlpha(img, tx, ty, 3, debugColor)

		// Label rendering would go here when text rendering is implemented.
		_ = elem.Name
	}
}

// renderDebugLocations draws debug location markers with labels.
func renderDebugLocations(img *image.RGBA, cfg Config, transform Transform) {
	if len(cfg.DebugLocations) == 0 {
		return
	}

	debugColor := color.RGBA{R: 0, G: 255, B: 255, A: 255}

	for _, loc := range cfg.DebugLocations {
		x, y := transform.Apply(types.Point{X: loc.X, Y: loc.Y})

		DrawCircleAlpha(img, x, y, 5, debugColor)
		DrawCircleAlpha(img, x, y, 7, debugColor)
		DrawCircleAlpha(img, x, y, 9, debugColor)
		DrawPointAlpha(img, x, y, debugColor)

		_ = loc.Name
	}
}
