package obb

import (
	"math"

	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

// MinAreaRectangle finds the smallest rectangle enclosing the hull by
// rotating calipers: one rectangle side is flush with a hull edge. When
// several edges give the same area, the first one in edge order wins.
func MinAreaRectangle(h *hull.Hull2, opts ...Option) (geometry.Rectangle, error) {
	s := newSettings(opts)
	if len(h.Edges) < 3 {
		s.logger.Warn("cannot fit rectangle", "edges", len(h.Edges))
		return geometry.Rectangle{}, errors.Wrapf(ErrInsufficientEdges, "got %d", len(h.Edges))
	}

	points := h.VertexPoints()
	best := math.MaxFloat64
	var rect geometry.Rectangle

	for _, seg := range h.Segments {
		dir := seg.B.Sub(seg.A)
		angle := math.Atan2(dir.Y, dir.X)

		xs, ys := geometry.NewMinMax(), geometry.NewMinMax()
		for _, p := range points {
			r := geometry.Rotate2D(p, -angle)
			xs.Add(r.X)
			ys.Add(r.Y)
		}

		area := xs.Delta() * ys.Delta()
		if area >= best {
			continue
		}
		best = area
		rect = geometry.Rectangle{
			Corner: geometry.Rotate2D(geometry.NewVector2(xs.Min, ys.Min), angle),
			Axes: [2]geometry.Vector2{
				geometry.Rotate2D(geometry.NewVector2(1, 0), angle),
				geometry.Rotate2D(geometry.NewVector2(0, 1), angle),
			},
			Extents: geometry.NewVector2(xs.Delta(), ys.Delta()),
		}
	}

	return rect, nil
}
