package geometry

// Triangle is a resolved hull face together with its supporting plane and a
// local 2D frame spanning that plane.
type Triangle struct {
	V1, V2, V3 Vector3

	// Normal is the unit normal following the right-hand rule over V1, V2, V3
	Normal Vector3
	// Offset is the signed distance of the plane from the origin along Normal
	Offset float64

	// X and Y span the plane; their origin is V1
	X, Y Vector3
}

// NewTriangle creates a triangle and derives its plane and local frame
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	n := v2.Sub(v1).Cross(v3.Sub(v2)).Normalize()
	x := v3.Sub(v2).Normalize()
	return Triangle{
		V1:     v1,
		V2:     v2,
		V3:     v3,
		Normal: n,
		Offset: v3.Dot(n),
		X:      x,
		Y:      n.Cross(x).Normalize(),
	}
}

// Reversed flips the winding and therefore the normal
func (t Triangle) Reversed() Triangle {
	return NewTriangle(t.V3, t.V2, t.V1)
}

// Distance returns the signed distance of p from the plane
func (t Triangle) Distance(p Vector3) float64 {
	return p.Dot(t.Normal) - t.Offset
}

// Side returns +1 if p is in front of the plane, -1 if behind and 0 if on it
func (t Triangle) Side(p Vector3) int {
	return DefaultTolerance.Compare(t.Distance(p), 0)
}

// ToLocal projects p into the plane's 2D frame
func (t Triangle) ToLocal(p Vector3) Vector2 {
	d := p.Sub(t.V1)
	return Vector2{X: t.X.Dot(d), Y: t.Y.Dot(d)}
}

// ToWorld lifts a point of the plane's 2D frame back into space
func (t Triangle) ToWorld(p Vector2) Vector3 {
	return t.V1.Add(t.X.Mul(p.X)).Add(t.Y.Mul(p.Y))
}

// Direction maps a 2D direction of the local frame into space
func (t Triangle) Direction(d Vector2) Vector3 {
	return t.X.Mul(d.X).Add(t.Y.Mul(d.Y))
}

// Center returns the centroid of the three vertices
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Area returns the area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Norm() / 2
}
