package render

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestDrawObjectPaintsAFacingTriangle(t *testing.T) {
	img := NewImage(20, 20)
	depth := NewDepthBuffer(20, 20)

	mesh := MeshData{
		Positions: []math3d.Vec4{
			math3d.V4(-0.5, -0.5, -2, 1),
			math3d.V4(0.5, -0.5, -2, 1),
			math3d.V4(0, 0.5, -2, 1),
		},
		Normals: []math3d.Vec4{
			math3d.V4(0, 0, 1, 0),
			math3d.V4(0, 0, 1, 0),
			math3d.V4(0, 0, 1, 0),
		},
		Texcoords: []math3d.Vec3{{}, {}, {}},
		Elements:  []uint32{0, 1, 2},
	}

	proj := math3d.PerspectiveHFov(90, 1, 0.1, 100)
	viewport := math3d.Viewport(20, 20)
	mat := DefaultMaterial()
	lights := LightCollection{Ambient: Color{1, 1, 1}}

	DrawObject(img, depth, mesh, math3d.Identity(), proj, viewport, mat, lights, math3d.V3(0, 0, 0))

	painted := false
	for _, c := range img.Pixels {
		if c != (Color{}) {
			painted = true
			break
		}
	}
	if !painted {
		t.Errorf("expected DrawObject to paint at least one pixel")
	}
}

func TestDrawObjectCullsBackfacingTriangle(t *testing.T) {
	img := NewImage(20, 20)
	depth := NewDepthBuffer(20, 20)

	// Same triangle as above but with winding reversed -- faces away from
	// the camera and should be culled entirely.
	mesh := MeshData{
		Positions: []math3d.Vec4{
			math3d.V4(-0.5, -0.5, -2, 1),
			math3d.V4(0, 0.5, -2, 1),
			math3d.V4(0.5, -0.5, -2, 1),
		},
		Normals: []math3d.Vec4{
			math3d.V4(0, 0, 1, 0),
			math3d.V4(0, 0, 1, 0),
			math3d.V4(0, 0, 1, 0),
		},
		Texcoords: []math3d.Vec3{{}, {}, {}},
		Elements:  []uint32{0, 1, 2},
	}

	proj := math3d.PerspectiveHFov(90, 1, 0.1, 100)
	viewport := math3d.Viewport(20, 20)
	mat := DefaultMaterial()
	lights := LightCollection{Ambient: Color{1, 1, 1}}

	DrawObject(img, depth, mesh, math3d.Identity(), proj, viewport, mat, lights, math3d.V3(0, 0, 0))

	for _, c := range img.Pixels {
		if c != (Color{}) {
			t.Fatalf("backfacing triangle should be culled, but a pixel was painted: %v", c)
		}
	}
}
