package render

import (
	"math"

	"github.com/taigrr/trophy/pkg/worker"
)

// coverageEpsilon absorbs floating-point error at triangle edges; a
// barycentric weight is considered covered down to this small negative
// value, making the shared edge between two triangles inclusive on both
// sides (ties are then broken by the depth test).
const coverageEpsilon = -1e-5

// Shader computes the color of a covered pixel from its barycentric
// weights against the triangle's three vertices.
type Shader func(a, b, c float64) Color

// DrawTriangle fills every pixel whose center lies inside the triangle
// (v0, v1, v2) -- already in viewport/screen space -- and whose depth
// passes the test, writing into img and depth. Vertices are expected in
// screen space with Z holding post-viewport depth. Pixels within the
// triangle's bounding box are visited through worker.ParallelFor; each
// pixel is touched by exactly one worker, so no locking is needed.
func DrawTriangle(img *Image, depth *DepthBuffer, v0, v1, v2 Vertex, shade Shader) {
	s0, s1, s2 := v0.Screen, v1.Screen, v2.Screen

	minX := int(math.Round(math.Min(s0.X, math.Min(s1.X, s2.X))))
	maxX := int(math.Round(math.Max(s0.X, math.Max(s1.X, s2.X))))
	minY := int(math.Round(math.Min(s0.Y, math.Min(s1.Y, s2.Y))))
	maxY := int(math.Round(math.Max(s0.Y, math.Max(s1.Y, s2.Y))))

	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > img.Width {
		maxX = img.Width
	}
	if maxY > img.Height {
		maxY = img.Height
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	area := (s1.X-s0.X)*(s2.Y-s0.Y) - (s2.X-s0.X)*(s1.Y-s0.Y)
	if math.Abs(area) < 1e-9 {
		return
	}

	w := maxX - minX
	h := maxY - minY

	worker.ParallelFor(0, w*h, func(i int, _ *worker.State) {
		x := minX + i%w
		y := minY + i/w

		px := float64(x) + 0.5
		py := float64(y) + 0.5

		b := ((s0.X-s2.X)*(py-s2.Y) - (px-s2.X)*(s0.Y-s2.Y)) / area
		c := ((s1.X-s0.X)*(py-s0.Y) - (px-s0.X)*(s1.Y-s0.Y)) / area
		a := 1 - b - c

		if a < coverageEpsilon || b < coverageEpsilon || c < coverageEpsilon {
			return
		}

		z := a*s0.Z + b*s1.Z + c*s2.Z
		if z > depth.At(x, y) {
			return
		}
		depth.Set(x, y, z)
		img.Set(x, y, shade(a, b, c))
	})
}
