package obb

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

// evaluator keeps the smallest box found so far over the hull vertices
type evaluator struct {
	points   []geometry.Vector3
	centroid geometry.Vector3

	box    geometry.Box
	volume float64
	tried  int
}

func newEvaluator(h *hull.Hull3) *evaluator {
	return &evaluator{
		points:   h.VertexPoints(),
		centroid: h.Centroid,
		volume:   math.MaxFloat64,
	}
}

// try measures the hull along the frame and keeps the box when it is
// strictly smaller than the best so far. Frames with NaN axes never win.
func (e *evaluator) try(x, y, z geometry.Vector3) bool {
	e.tried++
	xs, ys, zs := geometry.NewMinMax(), geometry.NewMinMax(), geometry.NewMinMax()
	for _, p := range e.points {
		d := p.Sub(e.centroid)
		xs.Add(d.Dot(x))
		ys.Add(d.Dot(y))
		zs.Add(d.Dot(z))
	}

	volume := xs.Delta() * ys.Delta() * zs.Delta()
	if !(volume < e.volume) {
		return false
	}

	e.keep(geometry.Box{
		Corner:  e.centroid.Add(x.Mul(xs.Min)).Add(y.Mul(ys.Min)).Add(z.Mul(zs.Min)),
		Axes:    [3]geometry.Vector3{x, y, z},
		Extents: geometry.NewVector3(xs.Delta(), ys.Delta(), zs.Delta()),
	}, volume)
	return true
}

func (e *evaluator) keep(box geometry.Box, volume float64) {
	e.box = box
	e.volume = volume
}

func (e *evaluator) found() bool {
	return e.volume < math.MaxFloat64
}
