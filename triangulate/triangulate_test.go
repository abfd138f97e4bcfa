package triangulate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/triangulate"
	"github.com/havenmesh/triangulate/types"
)

func square(x0, y0, x1, y1 float64) polyline.Polyline {
	return polyline.NewClosed(
		types.Point{X: x0, Y: y0},
		types.Point{X: x1, Y: y0},
		types.Point{X: x1, Y: y1},
		types.Point{X: x0, Y: y1},
	)
}

// numSolidTriangles and totalArea cover I1 (every solid triangle is
// non-degenerate and admissible) indirectly: a triangulation of a 10x10
// square always covers exactly 100 units of area regardless of how many
// triangles it is cut into.
func totalArea(tr *triangulate.Triangulator) float64 {
	sum := 0.0
	for _, t := range tr.Store().SolidTriangles() {
		a := tr.Store().PointOf(t.V1())
		b := tr.Store().PointOf(t.V2())
		c := tr.Store().PointOf(t.V3())
		area := (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
		if area < 0 {
			area = -area
		}
		sum += area / 2
	}
	return sum
}

func TestTriangulateSquare(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.Triangulate())

	solid := tr.Store().SolidTriangles()
	assert.NotEmpty(t, solid)
	assert.InDelta(t, 100.0, totalArea(tr), 1e-6)
}

func TestTriangulateSquareWithInteriorVertices(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.InsertVertices(
		types.Point{X: 3, Y: 3},
		types.Point{X: 7, Y: 3},
		types.Point{X: 5, Y: 7},
	))
	require.NoError(t, tr.Triangulate())

	assert.InDelta(t, 100.0, totalArea(tr), 1e-6)
}

func TestTriangulateSquareWithHole(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.InsertHole(square(3, 3, 7, 7)))
	require.NoError(t, tr.Triangulate())

	// 100 units of outer square minus 16 units of the cut hole.
	assert.InDelta(t, 84.0, totalArea(tr), 1e-6)
}

func TestTriangulateConcaveBoundary(t *testing.T) {
	// An L-shaped boundary, concave at (5,5): this exercises
	// force-recovery of a boundary edge that the unconstrained
	// triangulation of its own vertex set would not otherwise realize.
	boundary := polyline.NewClosed(
		types.Point{X: 0, Y: 0},
		types.Point{X: 10, Y: 0},
		types.Point{X: 10, Y: 5},
		types.Point{X: 5, Y: 5},
		types.Point{X: 5, Y: 10},
		types.Point{X: 0, Y: 10},
	)
	tr := triangulate.New(boundary)
	require.NoError(t, tr.Triangulate())

	// Full 10x10 square minus the missing 5x5 quadrant.
	assert.InDelta(t, 75.0, totalArea(tr), 1e-6)
}

func TestTriangulateWithSegment(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.InsertSegments([2]types.Point{
		{X: 1, Y: 1}, {X: 9, Y: 9},
	}))
	require.NoError(t, tr.Triangulate())

	assert.InDelta(t, 100.0, totalArea(tr), 1e-6)
}

func TestInsertVerticesRejectsOutsideBoundary(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	err := tr.InsertVertices(types.Point{X: 50, Y: 50})
	require.Error(t, err)

	var verr *triangulate.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, verr, triangulate.ErrVertexOutsideBoundary)
}

func TestInsertHoleRejectsOverlap(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.InsertHole(square(3, 3, 7, 7)))

	err := tr.InsertHole(square(6, 6, 9, 9))
	require.Error(t, err)
	assert.ErrorIs(t, err, triangulate.ErrHoleOverlap)
}

func TestRefineImprovesQuality(t *testing.T) {
	// A thin sliver triangle boundary gives refinement real work to do.
	boundary := polyline.NewClosed(
		types.Point{X: 0, Y: 0},
		types.Point{X: 20, Y: 0},
		types.Point{X: 20, Y: 1},
		types.Point{X: 0, Y: 1},
	)
	tr := triangulate.New(boundary)
	require.NoError(t, tr.Triangulate())

	warning, err := tr.Refine(1.2, nil)
	require.NoError(t, err)
	if warning != nil {
		t.Logf("refinement hit its iteration cap: %v", warning)
	}

	assert.InDelta(t, 20.0, totalArea(tr), 1e-6)
}

// TestMeshAdjacencyIsConsistent checks every solid triangle's three inner
// half-edges resolve back to that same triangle in the adjacency map, and
// that every solid triangle is wound counter-clockwise.
func TestMeshAdjacencyIsConsistent(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, tr.InsertVertices(
		types.Point{X: 3, Y: 3},
		types.Point{X: 7, Y: 3},
		types.Point{X: 5, Y: 7},
	))
	require.NoError(t, tr.Triangulate())

	store := tr.Store()
	solid := store.SolidTriangles()
	require.NotEmpty(t, solid)

	for _, tri := range solid {
		for _, e := range tri.OrientedEdges() {
			owner, ok := store.TriangleAt(e)
			require.True(t, ok, "edge %v has no owning triangle", e)
			assert.True(t, owner.Equal(tri), "edge %v resolves to %v, want %v", e, owner, tri)
		}

		a := store.PointOf(tri.V1())
		b := store.PointOf(tri.V2())
		c := store.PointOf(tri.V3())
		assert.Equal(t, predicates.CCW, predicates.Orient(a, b, c), "solid triangle %v is not CCW", tri)
	}
}

// TestRefineQualityRatioBound checks every solid triangle after refinement
// has a circumradius/shortest-edge ratio at or below the requested bound.
func TestRefineQualityRatioBound(t *testing.T) {
	boundary := polyline.NewClosed(
		types.Point{X: 0, Y: 0},
		types.Point{X: 20, Y: 0},
		types.Point{X: 20, Y: 1},
		types.Point{X: 0, Y: 1},
	)
	tr := triangulate.New(boundary)
	require.NoError(t, tr.Triangulate())

	const quality = 1.4
	_, err := tr.Refine(quality, nil)
	require.NoError(t, err)

	store := tr.Store()
	for _, tri := range store.SolidTriangles() {
		a := store.PointOf(tri.V1())
		b := store.PointOf(tri.V2())
		c := store.PointOf(tri.V3())

		ratio, ok := predicates.QualityRatio(a, b, c)
		require.True(t, ok, "degenerate triangle %v after refine", tri)

		// A triangle incident to a boundary edge shorter than the
		// refiner can split further is an accepted exception to the
		// bound; only check triangles whose shortest side clears that
		// floor.
		shortest := shortestSide(a, b, c)
		if shortest < 0.05 {
			continue
		}
		assert.LessOrEqual(t, ratio, quality+1e-6, "triangle %v exceeds quality bound: ratio=%v", tri, ratio)
	}
}

func shortestSide(a, b, c types.Point) float64 {
	la := dist(b, c)
	lb := dist(a, c)
	lc := dist(a, b)
	shortest := la
	if lb < shortest {
		shortest = lb
	}
	if lc < shortest {
		shortest = lc
	}
	return shortest
}

func dist(a, b types.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// TestTriangulateIsIdempotent checks that triangulating the same boundary
// twice from scratch produces the same set of solid triangles.
func TestTriangulateIsIdempotent(t *testing.T) {
	first := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, first.Triangulate())

	second := triangulate.New(square(0, 0, 10, 10))
	require.NoError(t, second.Triangulate())

	firstSolid := first.Store().SolidTriangles()
	secondSolid := second.Store().SolidTriangles()
	require.Len(t, secondSolid, len(firstSolid))

	firstArea := totalArea(first)
	secondArea := totalArea(second)
	assert.InDelta(t, firstArea, secondArea, 1e-9)

	for _, tri := range firstSolid {
		a := first.Store().PointOf(tri.V1())
		b := first.Store().PointOf(tri.V2())
		c := first.Store().PointOf(tri.V3())
		found := false
		for _, other := range secondSolid {
			oa := second.Store().PointOf(other.V1())
			ob := second.Store().PointOf(other.V2())
			oc := second.Store().PointOf(other.V3())
			if oa == a && ob == b && oc == c {
				found = true
				break
			}
		}
		assert.True(t, found, "triangle %v from first run missing in second run", tri)
	}
}

// TestInsertVerticesIsIdempotent checks that inserting the same interior
// point, triangulating, then inserting it again and re-triangulating,
// leaves the mesh's vertex count unchanged and the point present.
func TestInsertVerticesIsIdempotent(t *testing.T) {
	tr := triangulate.New(square(0, 0, 10, 10))
	p := types.Point{X: 4, Y: 4}

	require.NoError(t, tr.InsertVertices(p))
	require.NoError(t, tr.Triangulate())
	after1 := tr.Store().NumVertices()

	require.NoError(t, tr.InsertVertices(p))
	require.NoError(t, tr.Triangulate())
	after2 := tr.Store().NumVertices()

	assert.Equal(t, after1, after2, "re-inserting the same point should merge, not duplicate")

	found := false
	for _, v := range tr.Store().Vertices() {
		if v == p {
			found = true
			break
		}
	}
	assert.True(t, found, "expected inserted point to appear in the vertex set")
}
