// Package models provides mesh loading: a Wavefront OBJ/MTL parser and a
// binary glTF loader, both producing the same de-duplicated, shared-index
// Mesh representation consumed by the rasterizer.
package models

import "github.com/taigrr/trophy/pkg/math3d"

// Mesh holds three parallel per-vertex attribute arrays sharing one
// index space, plus a triangle index list. Every element triple selects
// one position, one texcoord, and one normal -- the same convention a
// parsed OBJ file uses once its v/vt/vn triples are remapped to a shared
// index.
type Mesh struct {
	Name      string
	Positions []math3d.Vec4
	Texcoords []math3d.Vec3
	Normals   []math3d.Vec4
	Elements  []uint32
}

// NewMesh creates an empty, named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.Elements) / 3
}

// VertexCount returns the number of shared-index vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// CalculateSmoothNormals synthesizes per-vertex normals by accumulating
// each adjacent face's (unnormalized, area-weighted) normal and
// normalizing the sum. It overwrites any existing normals.
func (m *Mesh) CalculateSmoothNormals() {
	accum := make([]math3d.Vec3, len(m.Positions))

	for i := 0; i+2 < len(m.Elements); i += 3 {
		ia, ib, ic := m.Elements[i], m.Elements[i+1], m.Elements[i+2]
		pa := m.Positions[ia].Vec3()
		pb := m.Positions[ib].Vec3()
		pc := m.Positions[ic].Vec3()

		faceNormal := pb.Sub(pa).Cross(pc.Sub(pa))
		accum[ia] = accum[ia].Add(faceNormal)
		accum[ib] = accum[ib].Add(faceNormal)
		accum[ic] = accum[ic].Add(faceNormal)
	}

	m.Normals = make([]math3d.Vec4, len(m.Positions))
	for i, n := range accum {
		u := n.Normalize()
		m.Normals[i] = math3d.Vec4{X: u.X, Y: u.Y, Z: u.Z, W: 0}
	}
}

// HasNormals reports whether the mesh already carries at least one
// non-zero normal, i.e. whether smooth-normal synthesis can be skipped.
func (m *Mesh) HasNormals() bool {
	if len(m.Normals) != len(m.Positions) {
		return false
	}
	for _, n := range m.Normals {
		if n.X != 0 || n.Y != 0 || n.Z != 0 {
			return true
		}
	}
	return false
}

// Bounds returns the axis-aligned bounding box of the mesh's positions.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if len(m.Positions) == 0 {
		return
	}
	min = m.Positions[0].Vec3()
	max = min
	for _, p := range m.Positions[1:] {
		v := p.Vec3()
		min = min.Min(v)
		max = max.Max(v)
	}
	return
}
