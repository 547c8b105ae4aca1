package cube

import "github.com/taigrr/wirecube/pkg/math3d"

const (
	// CameraDistance is added to depth before the perspective divide.
	CameraDistance = 10
	// FocalScale sizes the cube so it fills a viewport of ViewportScale pixels.
	FocalScale = 3
)

// ViewportScale is the projection scale for a surface: its shorter side.
func ViewportScale(width, height int) int {
	return min(width, height)
}

// Rotate applies the X rotation and then the Y rotation to p.
func Rotate(p math3d.Vec3, xRot, yRot float64) math3d.Vec3 {
	return p.RotateX(xRot).RotateY(yRot)
}

// ProjectPoint rotates p and projects it onto the screen plane centered at
// the origin. The returned Z is the rotated depth, kept for callers that
// want it; X and Y are screen coordinates.
func ProjectPoint(p math3d.Vec3, xRot, yRot float64, scale int) math3d.Vec3 {
	r := Rotate(p, xRot, yRot)
	k := FocalScale * float64(scale) / (CameraDistance + r.Z)
	return math3d.Vec3{X: k * r.X, Y: k * r.Y, Z: r.Z}
}

// Project recomputes the projected position of every vertex for the current
// rotation.
func (c *Cube) Project(scale int) {
	for i := range c.vertices {
		c.vertices[i].Projected = ProjectPoint(c.vertices[i].Object, c.xRotation, c.yRotation, scale)
	}
}

// Rotated returns vertex i in object space after rotation, before projection.
func (c *Cube) Rotated(i int) math3d.Vec3 {
	return Rotate(c.vertices[i].Object, c.xRotation, c.yRotation)
}
