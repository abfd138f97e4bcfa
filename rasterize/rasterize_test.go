package rasterize

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/types"
)

func triangleStore(t *testing.T, a, b, c types.Point) *mesh.Store {
	t.Helper()
	m := mesh.NewStore()
	va := m.AddVertex(a)
	vb := m.AddVertex(b)
	vc := m.AddVertex(c)
	if !m.IncludeTriangle(types.NewTriangle(va, vb, vc)) {
		t.Fatalf("unexpected duplicate triangle")
	}
	return m
}

func TestRasterizeBasic(t *testing.T) {
	m := triangleStore(t, types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 1})

	img, err := Rasterize(m, WithDimensions(200, 100))
	if err != nil {
		t.Fatalf("unexpected rasterize error: %v", err)
	}
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Fatalf("unexpected image dimensions: %v", img.Bounds())
	}
}

func TestRasterizeOptions(t *testing.T) {
	m := triangleStore(t, types.Point{X: 0, Y: 0}, types.Point{X: 2, Y: 0}, types.Point{X: 0, Y: 2})

	img, err := Rasterize(m, WithFillTriangles(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col := img.At(0, 0); col == nil {
		t.Fatalf("expected background color")
	}
}

func TestDebugElements(t *testing.T) {
	m := triangleStore(t, types.Point{X: 0, Y: 0}, types.Point{X: 10, Y: 0}, types.Point{X: 5, Y: 10})

	img, err := Rasterize(m,
		WithDimensions(400, 400),
		WithDebugElement("edge1", 1, 1, 4, 4),
		WithDebugElement("edge2", 4, 4, 6, 2),
		WithDebugLocation("point1", 5, 5),
		WithDebugLocation("point2", 7, 3),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if img.Bounds().Dx() != 400 || img.Bounds().Dy() != 400 {
		t.Fatalf("unexpected image dimensions: %v", img.Bounds())
	}

	foundMagenta := false
	for x := 0; x < 400; x++ {
		for y := 0; y < 400; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r > 50000 && b > 50000 && g < 10000 {
				foundMagenta = true
				break
			}
		}
		if foundMagenta {
			break
		}
	}
	if !foundMagenta {
		t.Error("expected magenta debug element pixels somewhere in the image")
	}

	foundCyan := false
	for x := 0; x < 400; x++ {
		for y := 0; y < 400; y++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r < 10000 && g > 50000 && b > 50000 {
				foundCyan = true
				break
			}
		}
		if foundCyan {
			break
		}
	}
	if !foundCyan {
		t.Error("expected cyan debug location pixels somewhere in the image")
	}
}

func TestDebugWithEmptyMesh(t *testing.T) {
	m := mesh.NewStore()

	img, err := Rasterize(m,
		WithDimensions(200, 200),
		WithDebugElement("test", 10, 10, 100, 100),
		WithDebugLocation("loc", 50, 50),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img == nil {
		t.Fatal("expected non-nil image")
	}
}

func TestRasterizeSVG(t *testing.T) {
	m := triangleStore(t, types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 0, Y: 1})

	var buf bytes.Buffer
	if err := RasterizeSVG(&buf, m, WithDimensions(100, 100)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("expected well-formed svg document, got: %s", out)
	}
	if !strings.Contains(out, "polygon") {
		t.Errorf("expected a polygon element for the filled triangle")
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(color.RGBA{R: 255, G: 0, B: 0, A: 255}); got != "#ff0000" {
		t.Errorf("hexColor red = %q, want #ff0000", got)
	}
	if got := hexColor(nil); got != "none" {
		t.Errorf("hexColor nil = %q, want none", got)
	}
}
