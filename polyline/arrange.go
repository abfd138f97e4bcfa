package polyline

import "github.com/havenmesh/triangulate/types"

// OrientedEdge is a directed pair of points, the point-space analogue of a
// half-edge, used by Arrange and TrianglesHull.
type OrientedEdge struct {
	A, B types.Point
}

// Arrange reconstructs the closed polyline formed by a set of oriented
// edges that are known to form a single simple cycle, by following each
// edge's head to the next edge whose tail matches. ok is false if the edges
// do not close into exactly one cycle.
func Arrange(edges []OrientedEdge) (Polyline, bool) {
	if len(edges) == 0 {
		return Polyline{}, false
	}

	next := make(map[types.Point]types.Point, len(edges))
	for _, e := range edges {
		next[e.A] = e.B
	}
	if len(next) != len(edges) {
		// Duplicate tails mean this isn't a single simple cycle.
		return Polyline{}, false
	}

	start := edges[0].A
	pts := []types.Point{start}
	cur := next[start]
	for !pointEqual(cur, start) {
		pts = append(pts, cur)
		nxt, ok := next[cur]
		if !ok {
			return Polyline{}, false
		}
		cur = nxt
		if len(pts) > len(edges)+1 {
			return Polyline{}, false
		}
	}
	if len(pts) != len(edges) {
		// The walk closed before using every edge: more than one cycle.
		return Polyline{}, false
	}
	return NewClosed(pts...), true
}

// TrianglesHull computes the boundary polylines of the union of a set of
// triangles (each given as three oriented edges), by cancelling every edge
// that appears with both orientations (an interior, shared edge) and
// arranging the surviving boundary edges into one or more closed cycles.
func TrianglesHull(triangleEdges [][3]OrientedEdge) []Polyline {
	var all []OrientedEdge
	for _, t := range triangleEdges {
		all = append(all, t[0], t[1], t[2])
	}

	remaining := make([]OrientedEdge, 0, len(all))
	used := make([]bool, len(all))
	for i, e := range all {
		if used[i] {
			continue
		}
		cancelled := false
		for j := i + 1; j < len(all); j++ {
			if used[j] {
				continue
			}
			if pointEqual(all[j].A, e.B) && pointEqual(all[j].B, e.A) {
				used[j] = true
				cancelled = true
				break
			}
		}
		if !cancelled {
			remaining = append(remaining, e)
		}
	}

	var polys []Polyline
	consumed := make([]bool, len(remaining))
	for i := range remaining {
		if consumed[i] {
			continue
		}
		group := []OrientedEdge{remaining[i]}
		consumed[i] = true
		changed := true
		for changed {
			changed = false
			for j := range remaining {
				if consumed[j] {
					continue
				}
				head := group[len(group)-1].B
				if pointEqual(remaining[j].A, head) {
					group = append(group, remaining[j])
					consumed[j] = true
					changed = true
				}
			}
		}
		if poly, ok := Arrange(group); ok {
			polys = append(polys, poly)
		}
	}
	return polys
}
