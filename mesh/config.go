package mesh

import "github.com/havenmesh/triangulate/types"

type config struct {
	epsilon float64

	mergeVertices bool
	mergeDistance float64

	debugAddVertex   func(types.VertexID, types.Point)
	debugAddTriangle func(types.Triangle)
	debugRemove      func(types.Triangle)
}

// DefaultEpsilon is the default tolerance for geometric operations.
const DefaultEpsilon = types.GhostEpsilon

func newDefaultConfig() config {
	return config{
		epsilon:       DefaultEpsilon,
		mergeVertices: true,
		mergeDistance: 0,
	}
}

func (c *config) effectiveMergeDistance() float64 {
	if c.mergeDistance > 0 {
		return c.mergeDistance
	}
	return c.epsilon
}
