package document

import (
	"fmt"
	"math"

	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/predicates"
	"github.com/havenmesh/triangulate/triangulate"
	"github.com/havenmesh/triangulate/types"
)

const defaultCircleSegments = 100

// circlePolyline discretizes a circle action (center in points[0], radius
// scalars[0], segment count scalars[1] default 100) into a closed regular
// polygon approximation.
func circlePolyline(a Action) (polyline.Polyline, error) {
	if len(a.Points) < 1 {
		return polyline.Polyline{}, fmt.Errorf("document: circle action needs a center point")
	}
	if len(a.Scalars) < 1 {
		return polyline.Polyline{}, fmt.Errorf("document: circle action needs a radius scalar")
	}
	center := a.Points[0].ToTypesPoint()
	radius := a.Scalars[0]

	n := defaultCircleSegments
	if len(a.Scalars) >= 2 {
		n = int(a.Scalars[1])
	}
	if n < 3 {
		return polyline.Polyline{}, fmt.Errorf("document: circle action needs at least 3 segments")
	}

	points := make([]types.Point, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		points[i] = types.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return polyline.NewClosed(points...), nil
}

// actionPolyline resolves an include/remove action's geometry (polyline or
// circle) to a closed polyline.
func actionPolyline(a Action) (polyline.Polyline, error) {
	switch a.Geometry {
	case GeometryPolyline:
		pts := make([]types.Point, len(a.Points))
		for i, p := range a.Points {
			pts[i] = p.ToTypesPoint()
		}
		return polyline.NewClosed(pts...), nil
	case GeometryCircle:
		return circlePolyline(a)
	default:
		return polyline.Polyline{}, fmt.Errorf("%w: %q for intent %q", ErrUnknownGeometry, a.Geometry, a.Intent)
	}
}

// coalesce unions a list of polylines into one, failing if any of them
// does not connect to the growing union.
func coalesce(polys []polyline.Polyline) (polyline.Polyline, error) {
	if len(polys) == 0 {
		return polyline.Polyline{}, ErrEmptyBoundary
	}
	acc := polys[0]
	for _, p := range polys[1:] {
		merged, _, ok := polyline.Union(acc, p)
		if !ok {
			return polyline.Polyline{}, ErrDomainDoesNotCoalesce
		}
		acc = merged
	}
	return acc, nil
}

// mergeOverlappingHoles repeatedly unions any pair of candidate hole loops
// that overlap, leaving disjoint holes untouched, until no further pair
// merges.
func mergeOverlappingHoles(holes []polyline.Polyline) []polyline.Polyline {
	for {
		merged := false
		for i := 0; i < len(holes); i++ {
			for j := i + 1; j < len(holes); j++ {
				u, _, ok := polyline.Union(holes[i], holes[j])
				if !ok {
					continue
				}
				next := make([]polyline.Polyline, 0, len(holes)-1)
				next = append(next, u)
				for k, h := range holes {
					if k != i && k != j {
						next = append(next, h)
					}
				}
				holes = next
				merged = true
				break
			}
			if merged {
				break
			}
		}
		if !merged {
			return holes
		}
	}
}

// Assemble resolves a document's actions into a triangulate.Triangulator:
// every include polyline/circle is unioned into one boundary, every removal
// fully inside the boundary becomes a hole (holes that overlap each other
// are merged pairwise), a removal crossing the boundary is subtracted from
// it (a removal disjoint from the boundary leaves it unchanged; a removal
// that would split it into more than one piece is an error), and
// segment/vertex constraint actions are queued against the result. Any opts
// are passed straight through to triangulate.New. The returned Triangulator
// has not had Triangulate or Refine called yet.
func Assemble(in Input, opts ...triangulate.Option) (*triangulate.Triangulator, error) {
	var includes, removals []polyline.Polyline
	var segmentActions, vertexActions []Action

	for _, a := range in.Actions {
		switch a.Intent {
		case IntentInclude:
			p, err := actionPolyline(a)
			if err != nil {
				return nil, err
			}
			includes = append(includes, p)
		case IntentRemove:
			p, err := actionPolyline(a)
			if err != nil {
				return nil, err
			}
			removals = append(removals, p)
		case IntentConstraint:
			switch a.Geometry {
			case GeometrySegments:
				segmentActions = append(segmentActions, a)
			case GeometryVertices:
				vertexActions = append(vertexActions, a)
			default:
				return nil, fmt.Errorf("%w: %q for constraint intent", ErrUnknownGeometry, a.Geometry)
			}
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownIntent, a.Intent)
		}
	}

	boundary, err := coalesce(includes)
	if err != nil {
		return nil, err
	}

	var holes []polyline.Polyline
	for _, r := range removals {
		c, ok := polyline.Continence(boundary, r)
		if ok && c == predicates.Inside {
			holes = append(holes, r)
			continue
		}

		pieces, _ := polyline.Subtraction(boundary, r)
		if len(pieces) > 1 {
			return nil, ErrRemovalSplitsBoundary
		}
		if len(pieces) == 1 {
			boundary = pieces[0]
		}
	}
	holes = mergeOverlappingHoles(holes)

	tr := triangulate.New(boundary, opts...)
	for _, h := range holes {
		if err := tr.InsertHole(h); err != nil {
			return nil, err
		}
	}

	for _, a := range segmentActions {
		pts := make([]types.Point, len(a.Points))
		for i, p := range a.Points {
			pts[i] = p.ToTypesPoint()
		}

		var pairs [][2]types.Point
		if len(a.Assemble) > 0 {
			for _, idx := range a.Assemble {
				if len(idx) != 2 || idx[0] < 0 || idx[1] < 0 || idx[0] >= len(pts) || idx[1] >= len(pts) {
					return nil, fmt.Errorf("document: segments action has an out-of-range assemble index pair %v", idx)
				}
				pairs = append(pairs, [2]types.Point{pts[idx[0]], pts[idx[1]]})
			}
		} else {
			for i := 0; i+1 < len(pts); i += 2 {
				pairs = append(pairs, [2]types.Point{pts[i], pts[i+1]})
			}
		}

		if err := tr.InsertSegments(pairs...); err != nil {
			return nil, err
		}
	}

	for _, a := range vertexActions {
		pts := make([]types.Point, len(a.Points))
		for i, p := range a.Points {
			pts[i] = p.ToTypesPoint()
		}
		if err := tr.InsertVertices(pts...); err != nil {
			return nil, err
		}
	}

	return tr, nil
}
