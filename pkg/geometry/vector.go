package geometry

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Vector3 represents a 3D point or vector
type Vector3 = r3.Vector

// Vector2 represents a 2D point or vector
type Vector2 = r2.Point

var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

// NewVector3 creates a new 3D vector
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// NewVector2 creates a new 2D vector
func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Centroid returns the arithmetic mean of the points, or the origin for an empty slice
func Centroid(points []Vector3) Vector3 {
	var sum Vector3
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Centroid2 returns the arithmetic mean of 2D points
func Centroid2(points []Vector2) Vector2 {
	var sum Vector2
	if len(points) == 0 {
		return sum
	}
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Mul(1 / float64(len(points)))
}

// Rotate2D rotates p counter-clockwise around the origin by angle radians
func Rotate2D(p Vector2, angle float64) Vector2 {
	r := mgl64.Rotate2D(angle).Mul2x1(mgl64.Vec2{p.X, p.Y})
	return Vector2{X: r[0], Y: r[1]}
}

// PerpendicularBasis returns two unit vectors that together with v form an
// orthogonal frame. The helper axis is the coordinate axis v is least aligned with.
func PerpendicularBasis(v Vector3) (Vector3, Vector3) {
	q := UnitZ
	a := v.Abs()
	switch {
	case a.X <= a.Y && a.X <= a.Z:
		q = UnitX
	case a.Y <= a.X && a.Y <= a.Z:
		q = UnitY
	}
	outA := v.Cross(q).Normalize()
	outB := v.Cross(outA).Normalize()
	return outA, outB
}

// Perpendicular returns a unit vector perpendicular to v
func Perpendicular(v Vector3) Vector3 {
	p := v.Cross(UnitY)
	if p.Norm() < 1e-6 {
		return v.Cross(UnitZ).Normalize()
	}
	return p.Normalize()
}

// EulerFrame returns the rotated unit axes of a rotation given as Euler
// angles in degrees, applied around z, then x, then y.
func EulerFrame(x, y, z float64) (Vector3, Vector3, Vector3) {
	q := mgl64.AnglesToQuat(mgl64.DegToRad(y), mgl64.DegToRad(x), mgl64.DegToRad(z), mgl64.YXZ)
	col := func(axis mgl64.Vec3) Vector3 {
		r := q.Rotate(axis)
		return Vector3{X: r[0], Y: r[1], Z: r[2]}
	}
	return col(mgl64.Vec3{1, 0, 0}), col(mgl64.Vec3{0, 1, 0}), col(mgl64.Vec3{0, 0, 1})
}

