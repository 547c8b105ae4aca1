// Package math3d provides the small vector toolkit used by the cube pipeline.
package math3d

import "math"

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// XY drops the Z component.
func (a Vec3) XY() Vec2 {
	return Vec2{a.X, a.Y}
}

// RotateX rotates the vector around the X axis.
// Positive angles tip +Z toward +Y: y' = sin*z + cos*y, z' = cos*z - sin*y.
func (a Vec3) RotateX(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: a.X,
		Y: sin*a.Z + cos*a.Y,
		Z: cos*a.Z - sin*a.Y,
	}
}

// RotateY rotates the vector around the Y axis.
// Positive angles tip +Z toward +X: x' = sin*z + cos*x, z' = cos*z - sin*x.
func (a Vec3) RotateY(angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	return Vec3{
		X: sin*a.Z + cos*a.X,
		Y: a.Y,
		Z: cos*a.Z - sin*a.X,
	}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (a Vec3) IsFinite() bool {
	for _, v := range [...]float64{a.X, a.Y, a.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
