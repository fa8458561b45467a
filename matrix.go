package sketch

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Mat3 is a 3x3 matrix in row-major order:
//
//	| m[0] m[1] m[2] |
//	| m[3] m[4] m[5] |
//	| m[6] m[7] m[8] |
type Mat3 f64.Mat3

// Identity3 returns the 3x3 identity matrix.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// RotateX returns the passive rotation about the x axis by angle radians.
func RotateX(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	return Mat3{
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
	}
}

// RotateY returns the passive rotation about the y axis by angle radians.
func RotateY(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	return Mat3{
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
	}
}

// RotateZ returns the passive rotation about the z axis by angle radians.
func RotateZ(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	return Mat3{
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
	}
}

// Multiply returns the product m·n. Applied to a vector, n acts first.
func (m Mat3) Multiply(n Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[3*i+j] = m[3*i]*n[j] + m[3*i+1]*n[3+j] + m[3*i+2]*n[6+j]
		}
	}
	return r
}

// Apply returns m·v.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		Z: m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// IsIdentity reports whether m is the identity matrix.
func (m Mat3) IsIdentity() bool {
	return m == Identity3()
}
