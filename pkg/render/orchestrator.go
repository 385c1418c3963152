package render

import "github.com/taigrr/trophy/pkg/math3d"

// MeshData is the minimal per-triangle geometry the orchestrator needs:
// three parallel attribute arrays sharing one index space, and a
// triangle index list that is a multiple of three in length.
type MeshData struct {
	Positions []math3d.Vec4
	Normals   []math3d.Vec4
	Texcoords []math3d.Vec3
	Elements  []uint32
}

// DrawObject transforms, clips, and rasterizes every triangle of mesh
// under modelMatrix, shading with mat and lights as seen from cameraPos.
// viewProj is the camera's combined view-projection matrix and viewport
// is the NDC-to-pixel matrix; both are shared across every object in a
// frame.
func DrawObject(img *Image, depth *DepthBuffer, mesh MeshData, modelMatrix, viewProj, viewport math3d.Mat4, mat *Material, lights LightCollection, cameraPos math3d.Vec3) {
	vb := NewVertexBuffer(len(mesh.Positions))
	for i := range mesh.Positions {
		world := modelMatrix.MulVec4(mesh.Positions[i])
		worldNormal := modelMatrix.MulVec4(math3d.Vec4{X: mesh.Normals[i].X, Y: mesh.Normals[i].Y, Z: mesh.Normals[i].Z, W: 0})
		vb.Set(i, Vertex{
			WorldPosition: world,
			WorldNormal:   worldNormal,
			ClipPosition:  viewProj.MulVec4(world),
			Texcoord:      mesh.Texcoords[i],
		})
	}

	for i := 0; i+2 < len(mesh.Elements); i += 3 {
		indices := []int{int(mesh.Elements[i]), int(mesh.Elements[i+1]), int(mesh.Elements[i+2])}

		clipped := ClipPolygon(vb, indices)
		if len(clipped) < 3 {
			continue
		}

		for j := 1; j < len(clipped)-1; j++ {
			tri := [3]int{clipped[0], clipped[j], clipped[j+1]}
			drawClippedTriangle(img, depth, vb, tri, viewport, mat, lights, cameraPos)
		}
	}
}

// drawClippedTriangle performs the perspective divide and viewport
// transform for one post-clip triangle, backface-culls it, and
// rasterizes it with a Blinn-Phong shader.
func drawClippedTriangle(img *Image, depth *DepthBuffer, vb *VertexBuffer, tri [3]int, viewport math3d.Mat4, mat *Material, lights LightCollection, cameraPos math3d.Vec3) {
	var verts [3]Vertex
	for k, idx := range tri {
		v := vb.At(idx)
		clip := v.ClipPosition

		invW := 0.0
		if clip.W != 0 {
			invW = 1.0 / clip.W
		}
		ndc := math3d.Vec4{X: clip.X * invW, Y: clip.Y * invW, Z: clip.Z * invW, W: invW}

		screen := viewport.MulVec4(math3d.Vec4{X: ndc.X, Y: ndc.Y, Z: ndc.Z, W: 1})
		v.Screen = math3d.Vec3{X: screen.X, Y: screen.Y, Z: ndc.Z}
		v.ClipPosition.W = invW // stash 1/w for perspective-correct interpolation
		verts[k] = v
	}

	ab := verts[1].ClipPosition.Sub(verts[0].ClipPosition)
	ac := verts[2].ClipPosition.Sub(verts[0].ClipPosition)
	orientation := ab.X*ac.Y - ac.X*ab.Y
	if orientation < 0 {
		return
	}

	shader := BlinnPhongShader(verts[0], verts[1], verts[2], mat, lights, cameraPos)
	DrawTriangle(img, depth, verts[0], verts[1], verts[2], shader)
}
