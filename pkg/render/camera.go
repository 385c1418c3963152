package render

import (
	"github.com/taigrr/trophy/pkg/math3d"
)

// Camera represents a 3D camera with a position and a unit-quaternion
// orientation. The view matrix is the rigid-transform inverse of the
// camera's own model matrix.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Quaternion

	FOV         float64 // Horizontal field of view, in degrees
	AspectRatio float64 // Width / Height
	Near        float64
	Far         float64
}

// NewCamera creates a camera at the origin with no rotation.
func NewCamera() *Camera {
	return &Camera{
		Rotation:    math3d.IdentityQuat(),
		FOV:         70,
		AspectRatio: 4.0 / 3.0,
		Near:        0.1,
		Far:         100,
	}
}

// Forward returns the camera's world-space forward direction.
func (c *Camera) Forward() math3d.Vec3 { return c.Rotation.Forward() }

// Right returns the camera's world-space right direction.
func (c *Camera) Right() math3d.Vec3 { return c.Rotation.Right() }

// Up returns the camera's world-space up direction.
func (c *Camera) Up() math3d.Vec3 { return c.Rotation.Up() }

// ModelMatrix returns the camera's own world transform: translate then
// rotate, matching how any other object's model matrix is built.
func (c *Camera) ModelMatrix() math3d.Mat4 {
	return math3d.Translate(c.Position).Mul(math3d.RotateQuat(c.Rotation))
}

// ViewMatrix returns the rigid-transform inverse of the camera's model
// matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return math3d.QuickInverse(c.ModelMatrix())
}

// ProjectionMatrix returns the horizontal-FOV symmetric perspective
// projection matrix for this camera.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	return math3d.PerspectiveHFov(c.FOV, c.AspectRatio, c.Near, c.Far)
}

// ViewProjectionMatrix returns ProjectionMatrix() * ViewMatrix().
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	return c.ProjectionMatrix().Mul(c.ViewMatrix())
}
