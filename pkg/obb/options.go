package obb

import (
	"log/slog"

	"github.com/pkg/errors"
)

var (
	// ErrInsufficientEdges is returned when a 2D hull has fewer than three edges
	ErrInsufficientEdges = errors.New("hull has too few edges")
	// ErrEmptyHull is returned when a box is requested for a hull without triangles
	ErrEmptyHull = errors.New("hull is empty")
	// ErrUnknownStrategy is returned for strategies outside the Strategy enumeration
	ErrUnknownStrategy = errors.New("unknown strategy")
)

// Tolerances collects the tunable thresholds of the exact solver. They are
// independent of each other on purpose and may be tuned one at a time.
type Tolerances struct {
	// InternalEdge is the slack on the dot product of two face normals for
	// their shared edge to be treated as flat and skipped.
	InternalEdge float64 `yaml:"internal_edge"`
	// Window widens the [0,1] ranges accepted for blend parameters.
	Window float64 `yaml:"window"`
	// Orthogonality bounds |dot| between two axes of a solved frame.
	Orthogonality float64 `yaml:"orthogonality"`
	// Degenerate is the magnitude below which coefficients, pivots and
	// denominators count as zero.
	Degenerate float64 `yaml:"degenerate"`
	// Slope is the slack on edge slopes in the antipodal vertex test.
	Slope float64 `yaml:"slope"`
	// AntipodalInterval is how far the feasible interval of the antipodal
	// test may invert before the vertex is rejected.
	AntipodalInterval float64 `yaml:"antipodal_interval"`
	// FaceSeparation keeps opposing-edge solutions away from the faces
	// incident to either edge.
	FaceSeparation float64 `yaml:"face_separation"`
}

// DefaultTolerances returns the thresholds the solver was tuned with
func DefaultTolerances() Tolerances {
	return Tolerances{
		InternalEdge:      1e-4,
		Window:            1e-4,
		Orthogonality:     1e-3,
		Degenerate:        1e-5,
		Slope:             1e-4,
		AntipodalInterval: 5e-2,
		FaceSeparation:    1e-4,
	}
}

const (
	DefaultDirectionGrid = 128
	DefaultRotationSteps = 32
)

type settings struct {
	logger        *slog.Logger
	tolerances    Tolerances
	directionGrid int
	rotationSteps int
	seed          uint64
}

// Option configures the box and rectangle solvers
type Option func(*settings)

// WithLogger routes diagnostics to the given logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTolerances replaces the exact solver thresholds
func WithTolerances(t Tolerances) Option {
	return func(s *settings) { s.tolerances = t }
}

// WithDirectionGrid sets the grid resolution of BruteDirection
func WithDirectionGrid(n int) Option {
	return func(s *settings) {
		if n >= 2 {
			s.directionGrid = n
		}
	}
}

// WithRotationSteps sets the number of samples per Euler angle of BruteRotation
func WithRotationSteps(n int) Option {
	return func(s *settings) {
		if n >= 1 {
			s.rotationSteps = n
		}
	}
}

// WithSeed seeds the edge walk of the exact solver
func WithSeed(seed uint64) Option {
	return func(s *settings) { s.seed = seed }
}

func newSettings(opts []Option) settings {
	s := settings{
		logger:        slog.New(slog.DiscardHandler),
		tolerances:    DefaultTolerances(),
		directionGrid: DefaultDirectionGrid,
		rotationSteps: DefaultRotationSteps,
		seed:          1,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
