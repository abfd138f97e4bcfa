// Package polyline implements the Boolean algebra over simple polygons
// (intersection, union, subtraction), point and polyline containment, and
// the supporting arrangement/hull operations the triangulation kernel uses
// to assemble and carve domains.
package polyline

import (
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// Polyline is a sequence of points together with an open/closed flag.
//
// Closed polylines of at least three points are assumed to be simple
// (non-self-intersecting) polygons; callers that construct a Polyline from
// untrusted input should verify this separately; no function of this
// package checks a single polyline for self-intersection.
type Polyline struct {
	Points []types.Point
	Closed bool
}

// NewClosed constructs a closed polyline from the given vertices.
func NewClosed(points ...types.Point) Polyline {
	return Polyline{Points: append([]types.Point(nil), points...), Closed: true}
}

// NewOpen constructs an open polyline from the given vertices.
func NewOpen(points ...types.Point) Polyline {
	return Polyline{Points: append([]types.Point(nil), points...), Closed: false}
}

// segment is an oriented pair of points, used as the unit of the boolean
// algebra's segment pool.
type segment struct {
	a, b types.Point
}

// pairs returns the oriented edges of the polyline: consecutive pairs, plus
// the closing pair (last, first) when the polyline is closed.
func (p Polyline) pairs() []segment {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	limit := n
	if !p.Closed {
		limit = n - 1
	}
	out := make([]segment, 0, limit)
	for i := 0; i < limit; i++ {
		j := (i + 1) % n
		out = append(out, segment{p.Points[i], p.Points[j]})
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of the polyline's
// points. ok is false for an empty polyline.
func (p Polyline) BoundingBox() (types.AABB, bool) {
	if len(p.Points) == 0 {
		return types.AABB{}, false
	}
	box := types.AABB{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		if pt.X < box.Min.X {
			box.Min.X = pt.X
		}
		if pt.Y < box.Min.Y {
			box.Min.Y = pt.Y
		}
		if pt.X > box.Max.X {
			box.Max.X = pt.X
		}
		if pt.Y > box.Max.Y {
			box.Max.Y = pt.Y
		}
	}
	return box, true
}

// Minified returns a copy of the polyline with consecutive collinear runs
// collapsed to their endpoints (the interior point of a straight run
// carries no shape information).
func (p Polyline) Minified() Polyline {
	n := len(p.Points)
	if n < 3 {
		return p
	}
	start, limit := 0, n
	if !p.Closed {
		start, limit = 1, n-1
	}
	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}
	for i := start; i < limit; i++ {
		prev := p.Points[(i-1+n)%n]
		cur := p.Points[i]
		next := p.Points[(i+1)%n]
		if predicates.Orient(prev, cur, next) == predicates.Colinear {
			keep[i] = false
		}
	}
	out := make([]types.Point, 0, n)
	for i, pt := range p.Points {
		if keep[i] {
			out = append(out, pt)
		}
	}
	return Polyline{Points: out, Closed: p.Closed}
}

// Contains classifies point against a closed polyline using a half-integer
// parity ray cast: vertical edges never contribute to the running parity
// tally except that a point lying on one is immediately Boundary; for other
// edges a colinear hit is Boundary, and a crossing contributes ±2 to parity
// (±1 when the point shares an x-coordinate with one endpoint, halving the
// double-count that would otherwise occur at a vertex). ok is false for an
// open polyline, which this algorithm is not defined over.
func (p Polyline) Contains(pt types.Point) (predicates.Continence, bool) {
	if !p.Closed {
		return 0, false
	}

	parity := 0
	for _, s := range p.pairs() {
		v1, v2 := s.a, s.b
		if v1.X == v2.X {
			if v1.X != pt.X {
				continue
			}
			lo, hi := v1.Y, v2.Y
			if lo > hi {
				lo, hi = hi, lo
			}
			if pt.Y >= lo && pt.Y <= hi {
				return predicates.Boundary, true
			}
			continue
		}

		if (v1.X < pt.X && v2.X < pt.X) || (v1.X > pt.X && v2.X > pt.X) {
			continue
		}

		switch predicates.Orient(v1, v2, pt) {
		case predicates.Colinear:
			return predicates.Boundary, true
		case predicates.CCW:
			if v1.X == pt.X || v2.X == pt.X {
				parity++
			} else {
				parity += 2
			}
		case predicates.CW:
			if v1.X == pt.X || v2.X == pt.X {
				parity--
			} else {
				parity -= 2
			}
		}
	}

	if parity == 0 {
		return predicates.Outside, true
	}
	return predicates.Inside, true
}

// Continence reports how p2 sits relative to p1 by probing every vertex and
// edge midpoint of p2 against p1.Contains. When every probe agrees on one
// side (allowing boundary hits to go either way), that side is returned.
// Disagreement between a strict Inside probe and a strict Outside probe
// returns ok=false.
func Continence(p1, p2 Polyline) (predicates.Continence, bool) {
	if !p1.Closed {
		return 0, false
	}

	probes := make([]types.Point, 0, len(p2.Points)*2)
	probes = append(probes, p2.Points...)
	for _, s := range p2.pairs() {
		probes = append(probes, predicates.Midpoint(s.a, s.b))
	}

	sawInside, sawOutside := false, false
	for _, pr := range probes {
		c, ok := p1.Contains(pr)
		if !ok {
			return 0, false
		}
		switch c {
		case predicates.Inside:
			sawInside = true
		case predicates.Outside:
			sawOutside = true
		}
	}

	switch {
	case sawInside && sawOutside:
		return 0, false
	case sawInside:
		return predicates.Inside, true
	case sawOutside:
		return predicates.Outside, true
	default:
		return predicates.Boundary, true
	}
}
