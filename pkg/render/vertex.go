package render

import "github.com/taigrr/trophy/pkg/math3d"

// Vertex is a per-vertex record carried through the transform, clip, and
// rasterize stages of one object's draw.
type Vertex struct {
	WorldPosition math3d.Vec4
	WorldNormal   math3d.Vec4
	ClipPosition  math3d.Vec4
	Texcoord      math3d.Vec3
	Screen        math3d.Vec3
}

// lerpVertex linearly interpolates a vertex between a and b at parameter t.
func lerpVertex(a, b Vertex, t float64) Vertex {
	return Vertex{
		WorldPosition: a.WorldPosition.Lerp(b.WorldPosition, t),
		WorldNormal:   a.WorldNormal.Lerp(b.WorldNormal, t),
		ClipPosition:  a.ClipPosition.Lerp(b.ClipPosition, t),
		Texcoord:      a.Texcoord.Lerp(b.Texcoord, t),
	}
}

// VertexBuffer holds the per-vertex working set for one object's draw.
// Vertices are referenced by index; the clipper grows the buffer by
// appending interpolated vertices, so existing indices remain valid
// across an append.
type VertexBuffer struct {
	Vertices []Vertex
}

// NewVertexBuffer allocates a buffer with n zero vertices.
func NewVertexBuffer(n int) *VertexBuffer {
	return &VertexBuffer{Vertices: make([]Vertex, n)}
}

// Len returns the number of vertices currently in the buffer.
func (vb *VertexBuffer) Len() int { return len(vb.Vertices) }

// At returns the vertex at index i.
func (vb *VertexBuffer) At(i int) Vertex { return vb.Vertices[i] }

// Set overwrites the vertex at index i.
func (vb *VertexBuffer) Set(i int, v Vertex) { vb.Vertices[i] = v }

// AppendInterpolated appends a new vertex linearly interpolated between
// the vertices at indices a and b at parameter t, and returns its index.
func (vb *VertexBuffer) AppendInterpolated(a, b int, t float64) int {
	v := lerpVertex(vb.Vertices[a], vb.Vertices[b], t)
	vb.Vertices = append(vb.Vertices, v)
	return len(vb.Vertices) - 1
}
