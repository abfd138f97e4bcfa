package polyline

import (
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// splitIntersections splits every segment in the pool at every transverse
// crossing with another segment in the pool, iterating until no crossing
// remains. Endpoint touches are not splits, and neither are parallel pairs
// (a collinear overlap has no transverse crossing).
func splitIntersections(pool []segment) []segment {
	work := append([]segment(nil), pool...)
	for {
		splitAny := false
		for i := 0; i < len(work); i++ {
			for j := i + 1; j < len(work); j++ {
				a, b := work[i], work[j]
				if predicates.Parallel(a.a, a.b, b.a, b.b) {
					continue
				}
				pt, ok := predicates.Intersection(a.a, a.b, b.a, b.b)
				if !ok {
					continue
				}
				if pointEqual(pt, a.a) || pointEqual(pt, a.b) || pointEqual(pt, b.a) || pointEqual(pt, b.b) {
					continue
				}
				// Replace i and j with their two halves at pt, restart scan.
				work[i] = segment{a.a, pt}
				work = append(work, segment{pt, a.b})
				work[j] = segment{b.a, pt}
				work = append(work, segment{pt, b.b})
				splitAny = true
			}
		}
		if !splitAny {
			return work
		}
	}
}

func pointEqual(a, b types.Point) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy <= predicates.Eps*predicates.Eps
}

// samePolygon reports whether two closed polylines trace the same cycle of
// vertices, in either rotation or winding direction. Every boolean op below
// special-cases this: once every pool segment from p1 coincides exactly
// with one from p2, the segment-midpoint/boundary classification the
// generic algorithm relies on to pick a side degenerates (every midpoint
// sits exactly on both boundaries), so the self-intersection/self-union/
// self-subtraction identities are handled directly instead.
func samePolygon(p1, p2 Polyline) bool {
	if !p1.Closed || !p2.Closed || len(p1.Points) == 0 || len(p1.Points) != len(p2.Points) {
		return false
	}
	n := len(p1.Points)
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if p1.Points[i] != p2.Points[(i+shift)%n] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// removeAntiParallelOverlaps drops pairs of colinear segments pointing in
// opposite directions that represent a cancelled boundary overlap between
// the two input polygons, re-emitting the non-overlapping remainders.
func removeAntiParallelOverlaps(pool []segment, p1, p2 Polyline) []segment {
	outsideAny := func(pts ...types.Point) bool {
		for _, pt := range pts {
			if c, ok := p1.Contains(pt); ok && c == predicates.Outside {
				return true
			}
			if c, ok := p2.Contains(pt); ok && c == predicates.Outside {
				return true
			}
		}
		return false
	}

	stack := append([]segment(nil), pool...)
	var kept []segment
	if len(stack) == 0 {
		return kept
	}
	kept = append(kept, pop(&stack))

	for len(stack) > 0 {
		cur := pop(&stack)
		matchIdx := -1
		for idx, k := range kept {
			if _, ok := predicates.Intersection(cur.a, cur.b, k.a, k.b); !ok {
				continue
			}
			isParallel := predicates.Parallel(cur.a, cur.b, k.a, k.b)
			oppositeDir := predicates.Dot(cur.a, cur.b, k.a, k.b) < 0
			continuation := pointEqual(cur.a, k.b) || pointEqual(cur.b, k.a)
			if isParallel && oppositeDir && (continuation || outsideAny(cur.a, cur.b, k.a, k.b)) {
				matchIdx = idx
				break
			}
		}
		if matchIdx < 0 {
			kept = append(kept, cur)
			continue
		}
		k := kept[matchIdx]
		kept = append(kept[:matchIdx], kept[matchIdx+1:]...)

		v1, v2 := cur.a, cur.b
		v3, v4 := k.a, k.b
		if !pointEqual(v2, v3) && (pointEqual(v1, v4) || outsideAny(v1, v4)) {
			stack = append(stack, segment{v3, v2})
		}
		if !pointEqual(v1, v4) && (pointEqual(v2, v3) || outsideAny(v2, v3)) {
			stack = append(stack, segment{v1, v4})
		}
	}
	return kept
}

func pop(s *[]segment) segment {
	n := len(*s)
	v := (*s)[n-1]
	*s = (*s)[:n-1]
	return v
}

// chain assembles closed polylines out of a segment pool by, at every
// junction with multiple continuations, picking the one with the extremal
// signed turn angle. smallestAngle selects a right turn (used by
// intersection/subtraction); !smallestAngle selects a left turn (union).
func chain(pool []segment, smallestAngle bool) ([]Polyline, []segment) {
	remaining := append([]segment(nil), pool...)
	var result []Polyline
	var unused []segment

	take := func(idx int) segment {
		s := remaining[idx]
		remaining = append(remaining[:idx], remaining[idx+1:]...)
		return s
	}

	for len(remaining) > 0 {
		chainSegs := []segment{take(0)}

		for {
			last := chainSegs[len(chainSegs)-1]
			v1, v2 := last.a, last.b

			bestIdx := -1
			var bestAngle float64
			for idx, cand := range remaining {
				v3, v4 := cand.a, cand.b
				if pointEqual(v1, v3) || pointEqual(v1, v4) || pointEqual(v2, v4) {
					continue
				}
				if !pointEqual(v2, v3) {
					continue
				}
				angle := predicates.Angle(v1, v2, v4)
				if bestIdx < 0 {
					bestIdx, bestAngle = idx, angle
					continue
				}
				if smallestAngle && angle < bestAngle {
					bestIdx, bestAngle = idx, angle
				}
				if !smallestAngle && angle > bestAngle {
					bestIdx, bestAngle = idx, angle
				}
			}

			if bestIdx < 0 {
				if len(chainSegs) > 2 && pointEqual(chainSegs[len(chainSegs)-1].b, chainSegs[0].a) {
					pts := make([]types.Point, len(chainSegs))
					for i, s := range chainSegs {
						pts[i] = s.a
					}
					result = append(result, NewClosed(pts...))
				} else {
					unused = append(unused, chainSegs...)
				}
				break
			}
			chainSegs = append(chainSegs, take(bestIdx))
		}
	}
	return result, unused
}

// Intersection computes the Boolean intersection of two closed,
// counter-clockwise-oriented polylines. It returns the list of closed
// polylines bounding the intersection region and the set of pool segments
// that did not end up on the result boundary.
func Intersection(p1, p2 Polyline) ([]Polyline, []segment) {
	if p1.Closed == false || p2.Closed == false {
		pool := append(p1.pairs(), p2.pairs()...)
		return nil, splitIntersections(pool)
	}
	if samePolygon(p1, p2) {
		return []Polyline{p1}, nil
	}

	box1, _ := p1.BoundingBox()
	box2, _ := p2.BoundingBox()
	if !predicates.AABBOverlap(box1, box2) {
		return nil, nil
	}

	pool := splitIntersections(append(p1.pairs(), p2.pairs()...))
	pool = removeAntiParallelOverlaps(pool, p1, p2)

	var kept []segment
	var unused []segment
	for _, s := range pool {
		mid := predicates.Midpoint(s.a, s.b)
		c1, _ := p1.Contains(mid)
		c2, _ := p2.Contains(mid)
		if c1 != predicates.Outside && c2 != predicates.Outside {
			kept = append(kept, s)
		} else {
			unused = append(unused, s)
		}
	}

	polys, moreUnused := chain(kept, true)
	unused = append(unused, moreUnused...)
	return polys, unused
}

// Union computes the Boolean union of two closed, counter-clockwise
// polylines sharing some area. ok is false when the polygons' bounding
// boxes do not overlap at all, or either input is open.
func Union(p1, p2 Polyline) (Polyline, []segment, bool) {
	if !p1.Closed || !p2.Closed {
		return Polyline{}, nil, false
	}
	if samePolygon(p1, p2) {
		return p1, nil, true
	}
	box1, _ := p1.BoundingBox()
	box2, _ := p2.BoundingBox()
	if !predicates.AABBOverlap(box1, box2) {
		return Polyline{}, nil, false
	}

	pool := splitIntersections(append(p1.pairs(), p2.pairs()...))

	var kept []segment
	var unused []segment
	for _, s := range pool {
		mid := predicates.Midpoint(s.a, s.b)
		c1, _ := p1.Contains(mid)
		c2, _ := p2.Contains(mid)
		if c1 == predicates.Outside || c2 == predicates.Outside {
			kept = append(kept, s)
		} else {
			unused = append(unused, s)
		}
	}

	polys, moreUnused := chain(kept, false)
	unused = append(unused, moreUnused...)
	if len(polys) == 0 {
		return Polyline{}, unused, false
	}
	return polys[0], unused, true
}

// Subtraction computes P1 minus P2 (both closed, counter-clockwise). It
// returns the list of resulting closed polylines and the unused segments.
func Subtraction(p1, p2 Polyline) ([]Polyline, []segment) {
	if p1.Closed && p2.Closed && samePolygon(p1, p2) {
		return nil, nil
	}

	box1, ok1 := p1.BoundingBox()
	box2, ok2 := p2.BoundingBox()
	if !p1.Closed || !p2.Closed || !ok1 || !ok2 || !predicates.AABBOverlap(box1, box2) {
		pool := append(p1.pairs(), reversed(p2).pairs()...)
		return nil, splitIntersections(pool)
	}

	pool := splitIntersections(append(p1.pairs(), reversed(p2).pairs()...))
	pool = removeAntiParallelOverlaps(pool, p1, p2)

	var kept []segment
	var unused []segment
	for _, s := range pool {
		mid := predicates.Midpoint(s.a, s.b)
		c1, _ := p1.Contains(mid)
		c2, _ := p2.Contains(mid)
		if c1 != predicates.Outside && c2 != predicates.Inside {
			kept = append(kept, s)
		} else {
			unused = append(unused, s)
		}
	}

	polys, moreUnused := chain(kept, true)
	unused = append(unused, moreUnused...)
	return polys, unused
}

func reversed(p Polyline) Polyline {
	n := len(p.Points)
	out := make([]types.Point, n)
	for i, pt := range p.Points {
		out[n-1-i] = pt
	}
	return Polyline{Points: out, Closed: p.Closed}
}
