package triangulate

import (
	"sort"

	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/types"
)

// InsertVertices validates each point against the established domain
// (strictly inside the boundary, strictly outside every hole) and queues it
// for the next call to Triangulate. A point that fails validation is
// reported, with every offending point collected, in a *ValidationError;
// valid points in the same call are still queued.
func (tr *Triangulator) InsertVertices(points ...types.Point) error {
	var bad []types.Point
	for _, p := range points {
		if !tr.pointInDomain(p) {
			bad = append(bad, p)
			continue
		}
		tr.pendingVertices = append(tr.pendingVertices, p)
	}
	if len(bad) > 0 {
		return &ValidationError{Err: ErrVertexOutsideBoundary, Points: bad}
	}
	return nil
}

// InsertSegments validates each constraint segment (both endpoints must lie
// in the domain, and the open segment must not cross the boundary or a
// hole) and queues it for the next call to Triangulate.
func (tr *Triangulator) InsertSegments(segments ...[2]types.Point) error {
	var bad []types.Point
	for _, s := range segments {
		if !tr.pointInDomain(s[0]) || !tr.pointInDomain(s[1]) {
			bad = append(bad, s[0], s[1])
			continue
		}
		if tr.segmentCrossesDomain(s[0], s[1]) {
			bad = append(bad, s[0], s[1])
			continue
		}
		tr.pendingSegments = append(tr.pendingSegments, s)
	}
	if len(bad) > 0 {
		return &ValidationError{Err: ErrSegmentCrossesBoundary, Points: bad}
	}
	return nil
}

// InsertHole validates a hole loop (it must lie fully inside the boundary,
// outside every other hole, whether already triangulated or still queued,
// and must not cross any already-queued segment) and queues it for the next
// call to Triangulate. Containment is judged by Continence, which probes the
// new hole's vertices and edge midpoints only.
func (tr *Triangulator) InsertHole(hole polyline.Polyline) error {
	if len(hole.Points) < 3 {
		return &ValidationError{Err: ErrHoleOverlap, Points: hole.Points}
	}

	if len(tr.boundary.Points) > 0 {
		if c, ok := polyline.Continence(tr.boundary, hole); !ok || c == predicates.Outside {
			return &ValidationError{Err: ErrHoleOverlap, Points: hole.Points}
		}
	}
	for _, h := range append(append([]polyline.Polyline(nil), tr.holes...), tr.pendingHoles...) {
		if c, ok := polyline.Continence(h, hole); !ok || c != predicates.Outside {
			return &ValidationError{Err: ErrHoleOverlap, Points: hole.Points}
		}
	}
	for _, s := range tr.pendingSegments {
		if loopCrossed(hole, s[0], s[1]) {
			return &ValidationError{Err: ErrHoleOverlap, Points: hole.Points}
		}
	}

	tr.pendingHoles = append(tr.pendingHoles, hole)
	return nil
}

// pointInDomain reports whether p lies within the established boundary
// (or no boundary has been set yet, in which case anything is admissible
// pending the boundary's own insertion) and outside every established hole.
func (tr *Triangulator) pointInDomain(p types.Point) bool {
	if len(tr.boundary.Points) > 0 {
		if c, ok := tr.boundary.Contains(p); ok && c == predicates.Outside {
			return false
		}
	}
	for _, h := range tr.holes {
		if c, ok := h.Contains(p); ok && c == predicates.Inside {
			return false
		}
	}
	return true
}

// segmentCrossesDomain reports whether the open segment (a, b) transversally
// crosses the boundary or any established hole.
func (tr *Triangulator) segmentCrossesDomain(a, b types.Point) bool {
	if loopCrossed(tr.boundary, a, b) {
		return true
	}
	for _, h := range tr.holes {
		if loopCrossed(h, a, b) {
			return true
		}
	}
	return false
}

// loopCrossed reports whether the open segment (a, b) transversally crosses
// any edge of the closed loop p.
func loopCrossed(p polyline.Polyline, a, b types.Point) bool {
	n := len(p.Points)
	for i := 0; i < n; i++ {
		e0 := p.Points[i]
		e1 := p.Points[(i+1)%n]
		if _, ok := predicates.Intersection(a, b, e0, e1); ok {
			return true
		}
	}
	return false
}

// Triangulate runs the full construction pipeline in the fixed order the
// domain requires regardless of call order: the boundary first (once),
// then every queued hole, then every queued constraint segment, then every
// queued loose vertex. Each stage consumes its queue on success.
func (tr *Triangulator) Triangulate() error {
	if !tr.boundaryInserted {
		_, edges, err := IncludeBoundary(tr.store, tr.boundary)
		if err != nil {
			return err
		}
		for e := range edges {
			tr.constraints[e] = true
		}
		tr.boundaryInserted = true
	}

	for _, hole := range tr.pendingHoles {
		_, edges, err := IncludeHole(tr.store, hole, tr.constraints, &tr.boundary, tr.holes)
		if err != nil {
			return err
		}
		for e := range edges {
			tr.constraints[e] = true
		}
		tr.holes = append(tr.holes, hole)
	}
	tr.pendingHoles = nil

	for _, s := range tr.pendingSegments {
		pID := tr.resolveVertex(s[0])
		qID := tr.resolveVertex(s[1])
		if err := tr.includeSegmentSplitAtCrossings(pID, qID); err != nil {
			return err
		}
	}
	tr.pendingSegments = nil

	ids := make([]types.VertexID, 0, len(tr.pendingVertices))
	for _, p := range tr.pendingVertices {
		ids = append(ids, tr.resolveVertex(p))
	}
	tr.pendingVertices = nil
	if err := Include(tr.store, ids, tr.constraints, &tr.boundary, tr.holes); err != nil {
		return err
	}

	return nil
}

// resolveVertex returns the store vertex ID at p, adding it if it is not
// already present within the store's merge tolerance.
func (tr *Triangulator) resolveVertex(p types.Point) types.VertexID {
	if id, ok := tr.store.FindVertexNear(p); ok {
		return id
	}
	return tr.store.AddVertex(p)
}

// includeSegmentSplitAtCrossings recovers segment (pID, qID), first splitting
// it at every point where it transversally crosses an already-recorded
// constraint edge, so the constraint graph stays planar (spec.md §4.9): a
// segment is never recovered as a single edge that passes clean through an
// earlier one. Each crossing becomes a new mesh vertex, and the pieces are
// recovered in order so that a piece's own endpoints never straddle a
// constraint recorded by an earlier piece.
func (tr *Triangulator) includeSegmentSplitAtCrossings(pID, qID types.VertexID) error {
	p := tr.store.PointOf(pID)
	q := tr.store.PointOf(qID)

	type crossing struct {
		param float64
		point types.Point
	}
	var crossings []crossing
	for e := range tr.constraints {
		a := tr.store.PointOf(e.V1())
		b := tr.store.PointOf(e.V2())
		pt, ok := predicates.Intersection(p, q, a, b)
		if !ok {
			continue
		}
		if predicates.Dist2(pt, p) <= predicates.Eps*predicates.Eps || predicates.Dist2(pt, q) <= predicates.Eps*predicates.Eps {
			continue
		}
		crossings = append(crossings, crossing{param: along(p, q, pt), point: pt})
	}
	sort.Slice(crossings, func(i, j int) bool { return crossings[i].param < crossings[j].param })

	chain := make([]types.VertexID, 0, len(crossings)+2)
	chain = append(chain, pID)
	for _, c := range crossings {
		chain = append(chain, tr.resolveVertex(c.point))
	}
	chain = append(chain, qID)

	for i := 0; i+1 < len(chain); i++ {
		if err := IncludeSegment(tr.store, chain[i], chain[i+1], tr.constraints, &tr.boundary, tr.holes); err != nil {
			return err
		}
	}
	return nil
}

// along returns pt's position along segment (a, b) as a fraction of its
// length, used only to order a batch of crossings from a to b.
func along(a, b, pt types.Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	if dx*dx >= dy*dy {
		return (pt.X - a.X) / dx
	}
	return (pt.Y - a.Y) / dy
}

// Refine runs Ruppert-style quality refinement to a fixed point: every
// constraint segment is freed of encroaching vertices, and every triangle
// whose circumradius-to-shortest-edge ratio is at or above qualityRatio (or,
// when maxArea is non-nil, whose area exceeds it) is split, repeating until
// neither pass changes the mesh. If the configured iteration cap is spent
// first, Refine returns a *RefinementWarning alongside the best-effort mesh
// rather than rolling any of it back.
func (tr *Triangulator) Refine(qualityRatio float64, maxArea *float64) (*RefinementWarning, error) {
	if !tr.boundaryInserted {
		return nil, ErrNoBoundary
	}
	tr.cfg.log.Infow("refining mesh", "qualityRatio", qualityRatio, "maxArea", maxArea, "maxIterations", tr.cfg.maxRefine)
	warning, err := Refine(tr.store, tr.constraints, &tr.boundary, tr.holes, qualityRatio, maxArea, tr.cfg.maxRefine)
	if err != nil {
		return nil, err
	}
	if warning != nil {
		tr.cfg.log.Warnw("refinement stopped at its iteration cap", "iterations", warning.Iterations)
	}
	return warning, nil
}
