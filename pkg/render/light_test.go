package render

import (
	"math"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestDirectionalLightDirectionIsConstant(t *testing.T) {
	l := NewDirectionalLight(Color{1, 1, 1}, math3d.V3(0, -1, 0))
	d := l.DirectionAt(math3d.V3(100, 5, -50))
	if d.Y < 0 {
		t.Errorf("DirectionAt = %v, want it pointing back up toward the light", d)
	}
	if l.AttenuationAt(math3d.V3(0, 0, 0)) != 1 {
		t.Errorf("directional attenuation = %v, want 1", l.AttenuationAt(math3d.V3(0, 0, 0)))
	}
}

func TestPointLightAttenuationFallsOffWithDistanceSquared(t *testing.T) {
	l := NewPointLight(Color{1, 1, 1}, 100, math3d.V3(0, 0, 0))

	near := l.AttenuationAt(math3d.V3(1, 0, 0))
	far := l.AttenuationAt(math3d.V3(2, 0, 0))

	if !almostEqualRender(near, 100, 1e-9) {
		t.Errorf("attenuation at d=1 = %v, want 100", near)
	}
	if !almostEqualRender(far, 25, 1e-9) {
		t.Errorf("attenuation at d=2 = %v, want 25", far)
	}
}

func TestSpotLightAttenuationZeroOutsideCone(t *testing.T) {
	l := NewSpotLight(Color{1, 1, 1}, 0.3, 2, math3d.V3(0, 0, -1), math3d.V3(0, 0, 0))

	onAxis := l.AttenuationAt(math3d.V3(0, 0, -5))
	if onAxis <= 0 {
		t.Errorf("on-axis attenuation = %v, want > 0", onAxis)
	}

	offAxis := l.AttenuationAt(math3d.V3(5, 0, -5))
	if offAxis != 0 {
		t.Errorf("off-axis attenuation = %v, want 0", offAxis)
	}
}

func almostEqualRender(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
