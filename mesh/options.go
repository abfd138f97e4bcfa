package mesh

import "github.com/havenmesh/triangulate/types"

// Option configures a Store during construction.
type Option func(*config)

// WithEpsilon sets the geometric tolerance for the store.
func WithEpsilon(epsilon float64) Option {
	return func(c *config) {
		if epsilon < 0 {
			epsilon = DefaultEpsilon
		}
		c.epsilon = epsilon
	}
}

// WithMergeVertices enables or disables automatic vertex deduplication.
//
// Deduplication is on by default: the Triangulation store's data model
// requires that two non-ghost vertices within epsilon of each other be the
// same VertexID, so insertion procedures never have to special-case
// near-duplicate points.
func WithMergeVertices(enable bool) Option {
	return func(c *config) {
		c.mergeVertices = enable
	}
}

// WithMergeDistance sets the radius used for vertex deduplication.
func WithMergeDistance(distance float64) Option {
	return func(c *config) {
		if distance >= 0 {
			c.mergeDistance = distance
			c.mergeVertices = true
		}
	}
}

// WithDebugAddVertex installs a hook called after vertex insertion.
func WithDebugAddVertex(hook func(types.VertexID, types.Point)) Option {
	return func(c *config) {
		c.debugAddVertex = hook
	}
}

// WithDebugAddTriangle installs a hook called after triangle insertion.
func WithDebugAddTriangle(hook func(types.Triangle)) Option {
	return func(c *config) {
		c.debugAddTriangle = hook
	}
}

// WithDebugRemoveTriangle installs a hook called after triangle removal.
func WithDebugRemoveTriangle(hook func(types.Triangle)) Option {
	return func(c *config) {
		c.debugRemove = hook
	}
}
