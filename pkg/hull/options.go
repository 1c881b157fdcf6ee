package hull

import (
	"log/slog"

	"github.com/pkg/errors"
)

var (
	// ErrInsufficientPoints is returned when the cloud is too small for the requested hull
	ErrInsufficientPoints = errors.New("not enough points")
	// ErrDegenerate is returned when the cloud has no volume (coincident, colinear or coplanar points)
	ErrDegenerate = errors.New("degenerate point cloud")
)

type settings struct {
	logger *slog.Logger
}

// Option configures hull construction
type Option func(*settings)

// WithLogger routes diagnostics to the given logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
