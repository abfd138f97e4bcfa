package predicates

import (
	"math"
	"testing"

	"github.com/havenmesh/triangulate/types"
)

func TestOrientNearDegenerate(t *testing.T) {
	// The float64 fast path alone would report this as collinear; the
	// exact fallback must still recover the true CCW sign.
	o := Orient(
		types.Point{X: 0, Y: 0},
		types.Point{X: 1e-30, Y: 0},
		types.Point{X: 0, Y: 1e-30},
	)
	if o != CCW {
		t.Fatalf("expected CCW for near-degenerate triangle, got %v", o)
	}

	if o := Orient(
		types.Point{X: 0, Y: 0},
		types.Point{X: 1, Y: 1},
		types.Point{X: 2, Y: 2},
	); o != Colinear {
		t.Fatalf("expected collinear, got %v", o)
	}
}

func TestInCircleBoundary(t *testing.T) {
	a := types.Point{X: 0, Y: 0}
	b := types.Point{X: 1, Y: 0}
	c := types.Point{X: 0, Y: 1}

	if got := InCircle(a, b, c, types.Point{X: 0.25, Y: 0.25}); got != Inside {
		t.Fatalf("expected Inside, got %v", got)
	}
	if got := InCircle(a, b, c, types.Point{X: 2, Y: 2}); got != Outside {
		t.Fatalf("expected Outside, got %v", got)
	}
	if got := InCircle(a, b, c, types.Point{X: 1, Y: 1}); got != Boundary {
		t.Fatalf("expected Boundary, got %v", got)
	}
}

func TestLineCrossParamsNearParallel(t *testing.T) {
	// Two lines with a tiny intersection angle: the float64 determinant is
	// within the adaptive filter, so this exercises the exact fallback.
	a1 := types.Point{X: 0, Y: 0}
	a2 := types.Point{X: 1, Y: 0}
	b1 := types.Point{X: 0, Y: 1e-20}
	b2 := types.Point{X: 1, Y: -1e-20}

	t0, _, ok := lineCrossParams(a1, a2, b1, b2)
	if !ok {
		t.Fatalf("expected the near-parallel lines to still cross")
	}
	if math.Abs(t0-0.5) > 1e-6 {
		t.Fatalf("expected crossing near the midpoint, got t=%v", t0)
	}
}

func TestLineCrossParamsParallel(t *testing.T) {
	a1 := types.Point{X: 0, Y: 0}
	a2 := types.Point{X: 1, Y: 0}
	b1 := types.Point{X: 0, Y: 1}
	b2 := types.Point{X: 1, Y: 1}

	if _, _, ok := lineCrossParams(a1, a2, b1, b2); ok {
		t.Fatalf("expected parallel lines to report ok=false")
	}
}
