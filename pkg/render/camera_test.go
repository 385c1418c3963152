package render

import (
	"math"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()
	if c.Rotation != math3d.IdentityQuat() {
		t.Errorf("Rotation = %v, want identity", c.Rotation)
	}
	if c.FOV != 70 || c.Near != 0.1 || c.Far != 100 {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestCameraViewMatrixInvertsModelMatrix(t *testing.T) {
	c := NewCamera()
	c.Position = math3d.V3(1, 2, 3)
	c.Rotation = math3d.QuatFromAxisAngle(math3d.V3(0, 1, 0), 0.4)

	roundTrip := c.ViewMatrix().Mul(c.ModelMatrix())
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			if math.Abs(roundTrip.Get(row, col)-want) > 1e-6 {
				t.Errorf("view*model[%d][%d] = %v, want %v", row, col, roundTrip.Get(row, col), want)
			}
		}
	}
}

func TestCameraForwardMatchesRotation(t *testing.T) {
	c := NewCamera()
	if c.Forward() != c.Rotation.Forward() {
		t.Errorf("Forward() = %v, want %v", c.Forward(), c.Rotation.Forward())
	}
}
