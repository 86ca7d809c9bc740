package math

import "math"

// DegToRad scales degrees to radians.
const DegToRad = math.Pi / 180

// Mat3 is a 3x3 matrix in row-major order, indexed as m[row][col].
type Mat3 [3][3]float64

// Identity3 returns the identity matrix.
func Identity3() Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationXYZ returns the rotation matrix Rx·Ry·Rz for angles given in
// degrees. Applied to row vectors (v·M) it rotates in the object's local
// frame about X first, then Y, then Z.
func RotationXYZ(angles Vec3) Mat3 {
	sx, cx := math.Sincos(angles.X * DegToRad)
	sy, cy := math.Sincos(angles.Y * DegToRad)
	sz, cz := math.Sincos(angles.Z * DegToRad)

	return Mat3{
		{cy * cz, -cy * sz, sy},
		{cx*sz + cz*sx*sy, cx*cz - sx*sy*sz, -cy * sx},
		{sx*sz - cx*cz*sy, cz*sx + cx*sy*sz, cx * cy},
	}
}

// Mul returns m * other.
func (m Mat3) Mul(other Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[r][0]*other[0][c] + m[r][1]*other[1][c] + m[r][2]*other[2][c]
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Affine is a 4x3 matrix: three rotation rows stacked over a translation row.
// A homogeneous row vector multiplied by it is rotated and translated in one
// product.
type Affine [4][3]float64

// NewAffine stacks rotation over translation.
func NewAffine(rotation Mat3, translation Vec3) Affine {
	return Affine{
		rotation[0],
		rotation[1],
		rotation[2],
		{translation.X, translation.Y, translation.Z},
	}
}

// Apply returns v · a.
func (a Affine) Apply(v Vec4) Vec3 {
	return Vec3{
		X: v.X*a[0][0] + v.Y*a[1][0] + v.Z*a[2][0] + v.W*a[3][0],
		Y: v.X*a[0][1] + v.Y*a[1][1] + v.Z*a[2][1] + v.W*a[3][1],
		Z: v.X*a[0][2] + v.Y*a[1][2] + v.Z*a[2][2] + v.W*a[3][2],
	}
}

// ApplyAll multiplies every row of vs by a and returns a new slice.
func (a Affine) ApplyAll(vs []Vec4) []Vec3 {
	out := make([]Vec3, len(vs))
	for i, v := range vs {
		out[i] = a.Apply(v)
	}
	return out
}
