package geometry

import "math"

// SolveLinear3 solves A*x = b where A is given by its columns. It uses
// Gaussian elimination with partial pivoting and reports false when a pivot
// is within tol of zero.
func SolveLinear3(c0, c1, c2, b Vector3, tol Tolerance) (Vector3, bool) {
	m := [3][4]float64{
		{c0.X, c1.X, c2.X, b.X},
		{c0.Y, c1.Y, c2.Y, b.Y},
		{c0.Z, c1.Z, c2.Z, b.Z},
	}

	for col := 0; col < 3; col++ {
		pivot := col
		for row := col + 1; row < 3; row++ {
			if math.Abs(m[row][col]) > math.Abs(m[pivot][col]) {
				pivot = row
			}
		}
		if tol.Equal(math.Abs(m[pivot][col]), 0) {
			return Vector3{}, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv := 1 / m[col][col]
		for k := col; k < 4; k++ {
			m[col][k] *= inv
		}
		for row := 0; row < 3; row++ {
			if row == col {
				continue
			}
			f := m[row][col]
			for k := col; k < 4; k++ {
				m[row][k] -= f * m[col][k]
			}
		}
	}

	return Vector3{X: m[0][3], Y: m[1][3], Z: m[2][3]}, true
}
