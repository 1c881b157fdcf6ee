package geometry

import "math"

// Segment2 is a resolved 2D edge
type Segment2 struct {
	A, B Vector2
}

// SquaredDistance returns the squared distance from p to the line through the segment
func (s Segment2) SquaredDistance(p Vector2) float64 {
	dir := s.A.Sub(s.B).Normalize()
	foot := s.B.Add(dir.Mul(dir.Dot(p.Sub(s.B))))
	d := foot.Sub(p)
	return d.Dot(d)
}

// Side classifies p against the directed line A->B. Points to the right of
// the direction return +1, points to the left -1, points on the line 0.
func (s Segment2) Side(p Vector2) int {
	d := (p.X-s.A.X)*(s.B.Y-s.A.Y) - (p.Y-s.A.Y)*(s.B.X-s.A.X)
	return DefaultTolerance.Compare(d, 0)
}

// Length returns the length of the segment
func (s Segment2) Length() float64 {
	return s.B.Sub(s.A).Norm()
}

// Segment3 is a resolved 3D edge
type Segment3 struct {
	A, B Vector3
}

// SquaredDistance returns the squared distance from p to the line through the segment
func (s Segment3) SquaredDistance(p Vector3) float64 {
	dir := s.A.Sub(s.B).Normalize()
	foot := s.B.Add(dir.Mul(dir.Dot(p.Sub(s.B))))
	return foot.Sub(p).Norm2()
}

// IsColinear reports whether p lies on the line through the segment within tol
func (s Segment3) IsColinear(p Vector3, tol Tolerance) bool {
	return tol.Equal(math.Sqrt(s.SquaredDistance(p)), 0)
}

// Length returns the length of the segment
func (s Segment3) Length() float64 {
	return s.A.Distance(s.B)
}
