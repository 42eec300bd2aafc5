package painter

import "math"

// Matrix3 is a 3x3 row-major matrix. Engine coordinates are row vectors,
// so a point is projected as coord * matrix.
type Matrix3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// TranslateMatrix returns a translation matrix.
func TranslateMatrix(x, y float64) Matrix3 {
	return Matrix3{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

// ScaleMatrix returns a scaling matrix.
func ScaleMatrix(x, y float64) Matrix3 {
	return Matrix3{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, 1},
	}
}

// RotationMatrix returns a rotation matrix for an angle in radians.
func RotationMatrix(angle float64) Matrix3 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Mul multiplies two matrices (m * other).
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return out
}

// Transposed returns the transposed matrix.
func (m Matrix3) Transposed() Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// TransformPoint applies the matrix to a row-vector point (x, y, 1).
func (m Matrix3) TransformPoint(x, y float64) (float64, float64) {
	tx := x*m[0][0] + y*m[1][0] + m[2][0]
	ty := x*m[0][1] + y*m[1][1] + m[2][1]
	return tx, ty
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix3) IsIdentity() bool {
	return m == Identity()
}
