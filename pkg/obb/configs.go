package obb

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// isAntipodal reports whether some blend n(t) = fb + t(fa - fb), t in [0,1],
// makes v the lowest vertex along n(t) among its neighbours. Each neighbour
// narrows the feasible interval of t. Edges are taken as unit directions so
// the slope slack is an angle and does not depend on the size of the cloud.
func (s *solver) isAntipodal(v int, fa, fb geometry.Vector3) bool {
	tMin, tMax := 0.0, 1.0
	p := s.h.Cloud[v]
	dir := fa.Sub(fb)

	for _, next := range s.h.Adjacency[v] {
		edge := s.h.Cloud[next].Sub(p).Normalize()
		slope := dir.Dot(edge)
		n := fb.Dot(edge)

		switch {
		case slope > s.tol.Slope:
			tMin = math.Max(tMin, -n/slope)
		case slope < -s.tol.Slope:
			tMax = math.Min(tMax, -n/slope)
		case n < -s.tol.Slope:
			return false
		}

		if tMax-tMin < -s.tol.AntipodalInterval {
			return false
		}
	}
	return true
}

// compatibleSides reports whether a blend of the first edge's normals can be
// perpendicular to a blend of the second edge's normals. The dot product is
// bilinear in the two blend parameters, so it vanishes somewhere on the unit
// square exactly when its corner values bracket zero.
func compatibleSides(f1a, f1b, f2a, f2b geometry.Vector3) bool {
	d1 := f1a.Sub(f1b)
	d2 := f2a.Sub(f2b)

	a := f1b.Dot(f2b)
	b := d1.Dot(f2b)
	c := d2.Dot(f1b)
	d := d1.Dot(d2)

	lo := min(a, a+b, a+c, a+b+c+d)
	hi := max(a, a+b, a+c, a+b+c+d)
	return lo <= 0 && hi >= 0
}

// opposingNormal finds the blend n of the first edge's normals whose
// opposite -n is a blend of the second edge's normals, so that two parallel
// box sides rest on both edges. Solutions touching a face of either edge are
// left to the face search.
func (s *solver) opposingNormal(f1a, f1b, f2a, f2b geometry.Vector3) (geometry.Vector3, bool) {
	x, ok := geometry.SolveLinear3(f2b, f1a.Sub(f1b), f2a.Sub(f2b), f1b.Mul(-1), geometry.Tolerance(s.tol.Degenerate))
	if !ok {
		return geometry.Vector3{}, false
	}

	c, t, cu := x.X, x.Y, x.Z
	if c <= 0 || t < 0 || t > 1 {
		return geometry.Vector3{}, false
	}

	u := cu / c
	sep := s.tol.FaceSeparation
	if t < sep || t > 1-sep || u < sep || u > 1-sep {
		return geometry.Vector3{}, false
	}
	if cu < 0 || cu > c {
		return geometry.Vector3{}, false
	}

	return f1b.Add(f1a.Sub(f1b).Mul(t)), true
}

// blend solves n1 . (fb + v(fa - fb)) = 0 for v within the window around [0,1]
func (s *solver) blend(n1, fa, fb geometry.Vector3) (float64, bool) {
	num := n1.Dot(fb)
	den := n1.Dot(fb.Sub(fa))

	var v float64
	switch {
	case math.Abs(den) >= s.tol.Degenerate:
		v = num / den
	case math.Abs(num) < s.tol.Degenerate:
		v = 0
	default:
		return 0, false
	}

	if v < -s.tol.Window || v > 1+s.tol.Window {
		return 0, false
	}
	return v, true
}

// edgeTripleFrames solves for the orthonormal frames whose axes are blends
// of the normals of three edges. Eliminating two of the blend parameters
// leaves a quadratic in the third, so there are at most two frames.
func (s *solver) edgeTripleFrames(f1a, f1b, f2a, f2b, f3a, f3b geometry.Vector3) [][3]geometry.Vector3 {
	a, b := f1b, f1a.Sub(f1b)
	c, d := f2b, f2a.Sub(f2b)
	e, f := f3b, f3a.Sub(f3b)

	ac, ad, ae, af := a.Dot(c), a.Dot(d), a.Dot(e), a.Dot(f)
	bc, bd, be, bf := b.Dot(c), b.Dot(d), b.Dot(e), b.Dot(f)
	ce, cf, de, df := c.Dot(e), c.Dot(f), d.Dot(e), d.Dot(f)

	g := ac*de - ad*ce
	h := ac*df - ad*cf
	i := bc*de - bd*ce
	j := bc*df - bd*cf

	k := g*be - ae*i
	l := h*be + g*bf - af*i - ae*j
	m := h*bf - af*j

	frame := func(v float64) ([3]geometry.Vector3, bool) {
		t := -(g + h*v) / (i + j*v)
		u := -(ce + cf*v) / (de + df*v)
		if !s.inWindow(v) || !s.inWindow(t) || !s.inWindow(u) {
			return [3]geometry.Vector3{}, false
		}

		n1 := a.Add(b.Mul(t)).Normalize()
		n2 := c.Add(d.Mul(u)).Normalize()
		n3 := e.Add(f.Mul(v)).Normalize()
		if !s.orthogonal(n1, n2) || !s.orthogonal(n1, n3) || !s.orthogonal(n2, n3) {
			return [3]geometry.Vector3{}, false
		}
		return [3]geometry.Vector3{n1, n2, n3}, true
	}

	disc := l*l - 4*m*k
	if math.Abs(m) < s.tol.Degenerate || math.Abs(disc) < s.tol.Degenerate {
		if fr, ok := frame(-k / l); ok {
			return [][3]geometry.Vector3{fr}
		}
		return nil
	}
	if disc < 0 {
		return nil
	}

	sgn := 1.0
	if l < 0 {
		sgn = -1
	}
	v1 := -(l + sgn*math.Sqrt(disc)) / (2 * m)
	v2 := k / (m * v1)

	var frames [][3]geometry.Vector3
	for _, v := range [2]float64{v1, v2} {
		if fr, ok := frame(v); ok {
			frames = append(frames, fr)
		}
	}
	if disc < s.tol.Window && len(frames) == 2 {
		frames = frames[:1]
	}
	return frames
}

// inWindow rejects NaN along with values outside the widened unit interval
func (s *solver) inWindow(x float64) bool {
	return x >= -s.tol.Window && x <= 1+s.tol.Window
}

func (s *solver) orthogonal(a, b geometry.Vector3) bool {
	return math.Abs(a.Dot(b)) < s.tol.Orthogonality
}
