package render

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestShadeBlinnPhongUnlitIsAmbientOnly(t *testing.T) {
	mat := DefaultMaterial()
	lights := LightCollection{Ambient: Color{0.2, 0.2, 0.2}}

	c := shadeBlinnPhong(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 0, 0), mat, lights, math3d.V3(0, 0, 5))
	want := mat.Ambient.Mul(lights.Ambient)
	if c != want {
		t.Errorf("shadeBlinnPhong with no lights = %v, want %v", c, want)
	}
}

func TestShadeBlinnPhongFacingLightIsBrighterThanGrazing(t *testing.T) {
	mat := DefaultMaterial()
	lights := LightCollection{Lights: []Light{NewDirectionalLight(Color{1, 1, 1}, math3d.V3(0, 0, -1))}}

	facing := shadeBlinnPhong(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 0, 0), mat, lights, math3d.V3(0, 0, 5))
	grazing := shadeBlinnPhong(math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 0), mat, lights, math3d.V3(0, 0, 5))

	if facing.Luminance() <= grazing.Luminance() {
		t.Errorf("facing luminance %v should exceed grazing luminance %v", facing.Luminance(), grazing.Luminance())
	}
}

func TestShadeBlinnPhongSamplesTextureWhenPresent(t *testing.T) {
	mat := DefaultMaterial()
	tex := NewImage(1, 1)
	tex.Set(0, 0, Color{0, 0, 0})
	mat.TextureMap = tex

	lights := LightCollection{Ambient: Color{1, 1, 1}}
	c := shadeBlinnPhong(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0.5, 0.5, 0), mat, lights, math3d.V3(0, 0, 5))
	if c != (Color{}) {
		t.Errorf("black texture should zero out the shaded color, got %v", c)
	}
}
