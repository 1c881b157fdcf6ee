package geometry

// Box is an oriented box spanned from Corner along three orthonormal axes
type Box struct {
	Corner  Vector3
	Axes    [3]Vector3
	Extents Vector3
}

// Center returns the middle of the box
func (b Box) Center() Vector3 {
	return b.Corner.
		Add(b.Axes[0].Mul(b.Extents.X / 2)).
		Add(b.Axes[1].Mul(b.Extents.Y / 2)).
		Add(b.Axes[2].Mul(b.Extents.Z / 2))
}

// Volume returns the product of the extents
func (b Box) Volume() float64 {
	return b.Extents.X * b.Extents.Y * b.Extents.Z
}

// Corners returns the eight corners: the face at Corner walked along the
// first then the second axis, followed by the same walk offset by the third.
func (b Box) Corners() [8]Vector3 {
	x := b.Axes[0].Mul(b.Extents.X)
	y := b.Axes[1].Mul(b.Extents.Y)
	z := b.Axes[2].Mul(b.Extents.Z)
	c := b.Corner
	return [8]Vector3{
		c,
		c.Add(x),
		c.Add(x).Add(y),
		c.Add(y),
		c.Add(z),
		c.Add(x).Add(z),
		c.Add(x).Add(y).Add(z),
		c.Add(y).Add(z),
	}
}

// Contains reports whether p lies inside the box within tol
func (b Box) Contains(p Vector3, tol Tolerance) bool {
	d := p.Sub(b.Corner)
	ext := [3]float64{b.Extents.X, b.Extents.Y, b.Extents.Z}
	for i, axis := range b.Axes {
		v := d.Dot(axis)
		if tol.Less(v, 0) || tol.Greater(v, ext[i]) {
			return false
		}
	}
	return true
}

// Rectangle is an oriented rectangle spanned from Corner along two orthonormal axes
type Rectangle struct {
	Corner  Vector2
	Axes    [2]Vector2
	Extents Vector2
}

// Center returns the middle of the rectangle
func (r Rectangle) Center() Vector2 {
	return r.Corner.Add(r.Axes[0].Mul(r.Extents.X / 2)).Add(r.Axes[1].Mul(r.Extents.Y / 2))
}

// Area returns the product of the extents
func (r Rectangle) Area() float64 {
	return r.Extents.X * r.Extents.Y
}

// Corners returns the four corners in counter-clockwise order
func (r Rectangle) Corners() [4]Vector2 {
	x := r.Axes[0].Mul(r.Extents.X)
	y := r.Axes[1].Mul(r.Extents.Y)
	return [4]Vector2{
		r.Corner,
		r.Corner.Add(x),
		r.Corner.Add(x).Add(y),
		r.Corner.Add(y),
	}
}

// Contains reports whether p lies inside the rectangle within tol
func (r Rectangle) Contains(p Vector2, tol Tolerance) bool {
	d := p.Sub(r.Corner)
	u, v := d.Dot(r.Axes[0]), d.Dot(r.Axes[1])
	return !tol.Less(u, 0) && !tol.Greater(u, r.Extents.X) &&
		!tol.Less(v, 0) && !tol.Greater(v, r.Extents.Y)
}
