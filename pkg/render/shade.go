package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// BlinnPhongShader builds a Shader closure over one triangle's three
// vertices, the object's material, the scene's lights, and the camera's
// world position. It performs perspective-correct interpolation of world
// position, normal, and texcoord using the reciprocal-w side channel
// left in each vertex's ClipPosition.W by the orchestrator's perspective
// divide.
func BlinnPhongShader(v0, v1, v2 Vertex, mat *Material, lights LightCollection, cameraPos math3d.Vec3) Shader {
	w0, w1, w2 := v0.ClipPosition.W, v1.ClipPosition.W, v2.ClipPosition.W

	return func(a, b, c float64) Color {
		aw, bw, cw := a*w0, b*w1, c*w2
		invSum := 1.0 / (aw + bw + cw)

		worldPos := interpolateVec4(v0.WorldPosition, v1.WorldPosition, v2.WorldPosition, aw, bw, cw, invSum).Vec3()
		normal := interpolateVec4(v0.WorldNormal, v1.WorldNormal, v2.WorldNormal, aw, bw, cw, invSum).Vec3().Normalize()
		tex := interpolateVec3(v0.Texcoord, v1.Texcoord, v2.Texcoord, aw, bw, cw, invSum)

		return shadeBlinnPhong(worldPos, normal, tex, mat, lights, cameraPos)
	}
}

func interpolateVec4(x0, x1, x2 math3d.Vec4, aw, bw, cw, invSum float64) math3d.Vec4 {
	return x0.Scale(aw).Add(x1.Scale(bw)).Add(x2.Scale(cw)).Scale(invSum)
}

func interpolateVec3(x0, x1, x2 math3d.Vec3, aw, bw, cw, invSum float64) math3d.Vec3 {
	return x0.Scale(aw).Add(x1.Scale(bw)).Add(x2.Scale(cw)).Scale(invSum)
}

// shadeBlinnPhong evaluates the Blinn-Phong lighting model at a single
// world-space point.
func shadeBlinnPhong(p, n, tex math3d.Vec3, mat *Material, lights LightCollection, cameraPos math3d.Vec3) Color {
	v := cameraPos.Sub(p).Normalize()

	var diffuseSum, specularSum Color
	for _, light := range lights.Lights {
		l := light.DirectionAt(p)
		atten := light.AttenuationAt(p)
		if atten <= 0 {
			continue
		}

		diffuseIntensity := saturateScalar(n.Dot(l))
		h := l.Add(v).Normalize()
		specularIntensity := math.Pow(saturateScalar(n.Dot(h)), mat.Shininess)

		diffuseSum = diffuseSum.Add(light.Color.Scale(atten * diffuseIntensity))
		specularSum = specularSum.Add(light.Color.Scale(atten * specularIntensity))
	}

	color := mat.Ambient.Mul(lights.Ambient).
		Add(mat.Diffuse.Mul(diffuseSum)).
		Add(mat.Specular.Mul(specularSum))

	if mat.TextureMap != nil {
		color = color.Mul(mat.TextureMap.Sample(tex.X, tex.Y))
	}

	return color.Saturate()
}

func saturateScalar(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
