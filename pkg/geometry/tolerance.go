package geometry

// Tolerance is the absolute slack used by the comparison helpers
type Tolerance float64

// DefaultTolerance is used by the package-level comparison helpers
const DefaultTolerance Tolerance = 1e-5

// Greater reports whether l exceeds r by more than the tolerance
func (t Tolerance) Greater(l, r float64) bool {
	return l-float64(t) > r
}

// Less reports whether l is below r by more than the tolerance
func (t Tolerance) Less(l, r float64) bool {
	return l < r-float64(t)
}

// Equal reports whether l and r are within the tolerance of each other
func (t Tolerance) Equal(l, r float64) bool {
	return !t.Greater(l, r) && !t.Less(l, r)
}

// Compare returns +1, 0 or -1 depending on how l relates to r
func (t Tolerance) Compare(l, r float64) int {
	switch {
	case t.Greater(l, r):
		return 1
	case t.Less(l, r):
		return -1
	default:
		return 0
	}
}

// EqualVectors compares two vectors component-wise
func (t Tolerance) EqualVectors(a, b Vector3) bool {
	return t.Equal(a.X, b.X) && t.Equal(a.Y, b.Y) && t.Equal(a.Z, b.Z)
}

// EqualVectors2 compares two planar points component-wise
func (t Tolerance) EqualVectors2(a, b Vector2) bool {
	return t.Equal(a.X, b.X) && t.Equal(a.Y, b.Y)
}

// Greater compares with the default tolerance
func Greater(l, r float64) bool { return DefaultTolerance.Greater(l, r) }

// Less compares with the default tolerance
func Less(l, r float64) bool { return DefaultTolerance.Less(l, r) }

// Equal compares with the default tolerance
func Equal(l, r float64) bool { return DefaultTolerance.Equal(l, r) }

// EqualVectors compares two vectors with the default tolerance
func EqualVectors(a, b Vector3) bool { return DefaultTolerance.EqualVectors(a, b) }
