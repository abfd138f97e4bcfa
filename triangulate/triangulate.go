// Package triangulate implements the planar constrained Delaunay
// triangulator: Bowyer-Watson vertex insertion, boundary/hole carving,
// constraint segment recovery, and Ruppert-style quality refinement, all
// operating on a mesh.Store.
package triangulate

import (
	"go.uber.org/zap"

	"github.com/havenmesh/triangulate/mesh"
	"github.com/havenmesh/triangulate/polyline"
	"github.com/havenmesh/triangulate/types"
)

// Triangulator is the façade over a growing constrained Delaunay
// triangulation: it owns the mesh store, the established domain (boundary
// plus holes), and the running constraint-segment set, and validates every
// insertion against the domain before it touches the store.
type Triangulator struct {
	store *mesh.Store

	boundary polyline.Polyline
	holes    []polyline.Polyline

	constraints map[types.Edge]bool

	pendingVertices []types.Point
	pendingSegments [][2]types.Point
	pendingHoles    []polyline.Polyline

	boundaryInserted bool

	cfg config
}

type config struct {
	log        *zap.SugaredLogger
	meshOpts   []mesh.Option
	maxRefine  int
}

// Option configures a Triangulator.
type Option func(*config)

// WithLogger attaches a logger used for refinement progress and warnings.
// The default is a no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMeshOptions passes through options to the underlying mesh.Store, e.g.
// mesh.WithEpsilon.
func WithMeshOptions(opts ...mesh.Option) Option {
	return func(c *config) {
		c.meshOpts = append(c.meshOpts, opts...)
	}
}

// WithMaxRefineIterations caps the number of outer refinement iterations
// Refine will run before returning a *RefinementWarning instead of looping
// forever on a borderline input. The default is 10000.
func WithMaxRefineIterations(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxRefine = n
		}
	}
}

func newDefaultConfig() config {
	return config{
		log:       zap.NewNop().Sugar(),
		maxRefine: 10000,
	}
}

// New creates a Triangulator for the given closed boundary polyline. The
// boundary must be simple (non-self-intersecting); New does not verify this
// on its own, since document.Assemble is responsible for producing a
// coalesced, simple boundary before a Triangulator is constructed from it.
func New(boundary polyline.Polyline, opts ...Option) *Triangulator {
	cfg := newDefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Triangulator{
		store:       mesh.NewStore(cfg.meshOpts...),
		boundary:    boundary,
		constraints: make(map[types.Edge]bool),
		cfg:         cfg,
	}
}

// Store returns the underlying triangulation store.
func (tr *Triangulator) Store() *mesh.Store {
	return tr.store
}

// Boundary returns the triangulator's domain boundary.
func (tr *Triangulator) Boundary() polyline.Polyline {
	return tr.boundary
}

// Holes returns the triangulator's established hole loops.
func (tr *Triangulator) Holes() []polyline.Polyline {
	return append([]polyline.Polyline(nil), tr.holes...)
}
