package geometry

import (
	"math"
	"testing"
)

func TestCentroid(t *testing.T) {
	points := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(0, 4, 0),
		NewVector3(2, 4, 8),
	}
	result := Centroid(points)

	expected := NewVector3(1, 2, 2)
	if result != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, result)
	}

	if empty := Centroid(nil); empty != (Vector3{}) {
		t.Errorf("Centroid of nothing failed: expected origin, got %v", empty)
	}
}

func TestRotate2D(t *testing.T) {
	p := Rotate2D(NewVector2(1, 0), math.Pi/2)

	if math.Abs(p.X) > 1e-10 || math.Abs(p.Y-1) > 1e-10 {
		t.Errorf("Rotate2D failed: expected (0, 1), got %v", p)
	}
}

func TestPerpendicularBasis(t *testing.T) {
	inputs := []Vector3{
		UnitX,
		UnitY,
		UnitZ,
		NewVector3(1, 2, 3).Normalize(),
		NewVector3(-0.3, 0.01, 0.9).Normalize(),
	}

	for _, v := range inputs {
		a, b := PerpendicularBasis(v)
		if math.Abs(a.Norm()-1) > 1e-10 || math.Abs(b.Norm()-1) > 1e-10 {
			t.Errorf("PerpendicularBasis(%v) failed: axes not unit: %v %v", v, a, b)
		}
		if math.Abs(a.Dot(v)) > 1e-10 || math.Abs(b.Dot(v)) > 1e-10 || math.Abs(a.Dot(b)) > 1e-10 {
			t.Errorf("PerpendicularBasis(%v) failed: axes not orthogonal: %v %v", v, a, b)
		}
	}
}

func TestPerpendicular(t *testing.T) {
	for _, v := range []Vector3{UnitX, UnitY, UnitZ, NewVector3(1, 1, 1)} {
		p := Perpendicular(v)
		if math.Abs(p.Dot(v)) > 1e-10 {
			t.Errorf("Perpendicular(%v) failed: got %v", v, p)
		}
		if math.Abs(p.Norm()-1) > 1e-10 {
			t.Errorf("Perpendicular(%v) failed: not unit length %v", v, p)
		}
	}
}

func TestEulerFrame(t *testing.T) {
	x, y, z := EulerFrame(0, 0, 0)
	if !EqualVectors(x, UnitX) || !EqualVectors(y, UnitY) || !EqualVectors(z, UnitZ) {
		t.Errorf("EulerFrame identity failed: got %v %v %v", x, y, z)
	}

	x, y, z = EulerFrame(33.75, 101.25, 270)
	if math.Abs(x.Dot(y)) > 1e-10 || math.Abs(y.Dot(z)) > 1e-10 || math.Abs(x.Dot(z)) > 1e-10 {
		t.Errorf("EulerFrame failed: axes not orthogonal: %v %v %v", x, y, z)
	}
	if !EqualVectors(x.Cross(y), z) {
		t.Errorf("EulerFrame failed: frame not right-handed: %v %v %v", x, y, z)
	}
}

func TestTolerance(t *testing.T) {
	tol := Tolerance(1e-3)

	if !tol.Equal(1.0, 1.0005) {
		t.Errorf("Equal failed: values within tolerance reported different")
	}
	if !tol.Greater(1.002, 1.0) || tol.Greater(1.0005, 1.0) {
		t.Errorf("Greater failed")
	}
	if !tol.Less(1.0, 1.002) || tol.Less(1.0, 1.0005) {
		t.Errorf("Less failed")
	}
	if tol.Compare(2, 1) != 1 || tol.Compare(1, 2) != -1 || tol.Compare(1, 1.0001) != 0 {
		t.Errorf("Compare failed")
	}
	if !Equal(0.5, 0.500001) || Equal(0.5, 0.51) {
		t.Errorf("default tolerance failed")
	}
	if !tol.EqualVectors2(NewVector2(1, 2), NewVector2(1.0005, 2)) || tol.EqualVectors2(NewVector2(1, 2), NewVector2(1, 2.01)) {
		t.Errorf("EqualVectors2 failed")
	}
}
