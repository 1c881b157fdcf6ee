package obb

import (
	"math"

	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

// MinVolumeBox computes an enclosing box of the hull with the chosen
// strategy. The hull is trimmed to its vertices first.
func MinVolumeBox(h *hull.Hull3, strategy Strategy, opts ...Option) (geometry.Box, error) {
	s := newSettings(opts)
	if h == nil || h.Empty() {
		return geometry.Box{}, ErrEmptyHull
	}
	h = hull.Trim3(h)

	var ev *evaluator
	switch strategy {
	case AABB:
		return geometry.BoundingBoxOf(h.VertexPoints()).Box(), nil
	case HullFaces:
		ev = hullFaces(h)
	case BruteDirection:
		ev = bruteDirection(h, s.directionGrid)
	case BruteRotation:
		ev = bruteRotation(h, s.rotationSteps)
	case Optimized:
		var err error
		if ev, err = solveExact(h, s); err != nil {
			return geometry.Box{}, err
		}
	default:
		return geometry.Box{}, errors.Wrapf(ErrUnknownStrategy, "%d", int(strategy))
	}

	s.logger.Debug("box search finished",
		"strategy", strategy.String(),
		"vertices", len(h.Vertices),
		"candidates", ev.tried,
		"volume", ev.volume)

	if !ev.found() {
		return geometry.Box{}, errors.Errorf("%s found no enclosing box", strategy)
	}
	return ev.box, nil
}

// solveExact runs the exact solver and turns an inconsistency in the hull
// data into an error so that one bad hull cannot take down the caller.
func solveExact(h *hull.Hull3, s settings) (ev *evaluator, err error) {
	defer func() {
		if r := recover(); r != nil {
			invariant, ok := r.(*InvariantError)
			if !ok {
				panic(r)
			}
			s.logger.Error("exact box search aborted", "error", invariant)
			ev, err = nil, errors.WithStack(invariant)
		}
	}()
	return newSolver(h, s).run(), nil
}

// hullFaces fits a box flush with every face: the smallest rectangle of
// the vertices projected onto the face plane gives the other two sides. The
// box is measured along the resulting frame in 3D, so points the planar
// hull dropped as near colinear still bound it.
func hullFaces(h *hull.Hull3) *evaluator {
	ev := newEvaluator(h)
	local := make([]geometry.Vector2, len(ev.points))

	for _, face := range h.Faces {
		for i, p := range ev.points {
			local[i] = face.ToLocal(p)
		}

		h2, err := hull.BuildHull2(local)
		if err != nil {
			continue
		}
		rect, err := MinAreaRectangle(h2)
		if err != nil {
			continue
		}

		ev.try(
			face.Direction(rect.Axes[0]).Normalize(),
			face.Direction(rect.Axes[1]).Normalize(),
			face.Normal.Mul(-1),
		)
	}
	return ev
}

// bruteDirection samples the upper unit hemisphere through a grid laid over
// its projection disk and measures along a frame around each direction.
func bruteDirection(h *hull.Hull3, grid int) *evaluator {
	ev := newEvaluator(h)
	step := 2 / float64(grid-1)
	for yi := 0; yi < grid; yi++ {
		fy := float64(yi)*step - 1
		for xi := 0; xi < grid; xi++ {
			fx := float64(xi)*step - 1
			sq := fx*fx + fy*fy
			if sq > 1 {
				continue
			}
			z := geometry.NewVector3(fx, fy, math.Sqrt(1-sq))
			x, y := geometry.PerpendicularBasis(z)
			ev.try(x, y, z)
		}
	}
	return ev
}

// bruteRotation samples steps^3 Euler angle triples over full turns
func bruteRotation(h *hull.Hull3, steps int) *evaluator {
	ev := newEvaluator(h)
	delta := 360 / float64(steps)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			for k := 0; k < steps; k++ {
				x, y, z := geometry.EulerFrame(float64(i)*delta, float64(j)*delta, float64(k)*delta)
				ev.try(x, y, z)
			}
		}
	}
	return ev
}
