package math3d

import (
	"math"
	"testing"
)

func TestViewportMapsNDCCorners(t *testing.T) {
	vp := Viewport(800, 600)

	center := vp.MulVec4(V4(0, 0, 0, 1))
	if !almostEqual(center.X, 400, 1e-9) || !almostEqual(center.Y, 300, 1e-9) {
		t.Errorf("center = (%v,%v), want (400,300)", center.X, center.Y)
	}

	topLeft := vp.MulVec4(V4(-1, 1, 0, 1))
	if !almostEqual(topLeft.X, 0, 1e-9) || !almostEqual(topLeft.Y, 0, 1e-9) {
		t.Errorf("top-left NDC (-1,1) = (%v,%v), want (0,0)", topLeft.X, topLeft.Y)
	}

	bottomRight := vp.MulVec4(V4(1, -1, 0, 1))
	if !almostEqual(bottomRight.X, 800, 1e-9) || !almostEqual(bottomRight.Y, 600, 1e-9) {
		t.Errorf("bottom-right NDC (1,-1) = (%v,%v), want (800,600)", bottomRight.X, bottomRight.Y)
	}
}

func TestPerspectiveHFovClipConvention(t *testing.T) {
	proj := PerspectiveHFov(90, 1, 1, 100)

	// A point on the near plane, dead ahead, should land at clip w = -z = near.
	p := proj.MulVec4(V4(0, 0, -1, 1))
	if !almostEqual(p.W, 1, 1e-9) {
		t.Errorf("near-plane clip.W = %v, want 1", p.W)
	}
}

func TestQuickInverseUndoesRigidTransform(t *testing.T) {
	m := Translate(V3(3, -2, 5)).Mul(RotateQuat(QuatFromAxisAngle(V3(0, 1, 0), 0.8)))
	inv := QuickInverse(m)

	roundTrip := m.Mul(inv)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			want := 0.0
			if row == col {
				want = 1
			}
			if !almostEqual(roundTrip.Get(row, col), want, 1e-6) {
				t.Errorf("m*inv[%d][%d] = %v, want %v", row, col, roundTrip.Get(row, col), want)
			}
		}
	}
}

func TestRotateQuatMatchesRotateY(t *testing.T) {
	angle := math.Pi / 3
	fromQuat := RotateQuat(QuatFromAxisAngle(V3(0, 1, 0), angle))
	fromEuler := RotateY(angle)

	v := V3(1, 2, 3)
	a := fromQuat.MulVec3(v)
	b := fromEuler.MulVec3(v)
	if !almostEqual(a.X, b.X, 1e-6) || !almostEqual(a.Y, b.Y, 1e-6) || !almostEqual(a.Z, b.Z, 1e-6) {
		t.Errorf("RotateQuat(axis-angle) = %v, want %v", a, b)
	}
}
