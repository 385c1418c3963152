package models

import (
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	m.Positions = []math3d.Vec4{
		math3d.V4FromV3(math3d.V3(0, 0, 0), 1),
		math3d.V4FromV3(math3d.V3(1, 0, 0), 1),
		math3d.V4FromV3(math3d.V3(0, 1, 0), 1),
	}
	m.Texcoords = make([]math3d.Vec3, 3)
	m.Elements = []uint32{0, 1, 2}
	return m
}

func TestMeshTriangleAndVertexCount(t *testing.T) {
	m := triangleMesh()
	if m.VertexCount() != 3 {
		t.Errorf("VertexCount = %d, want 3", m.VertexCount())
	}
	if m.TriangleCount() != 1 {
		t.Errorf("TriangleCount = %d, want 1", m.TriangleCount())
	}
}

func TestMeshHasNormalsFalseBeforeSynthesis(t *testing.T) {
	m := triangleMesh()
	m.Normals = make([]math3d.Vec4, 3)
	if m.HasNormals() {
		t.Errorf("all-zero normals should report HasNormals() == false")
	}
}

func TestMeshCalculateSmoothNormalsProducesUnitNormals(t *testing.T) {
	m := triangleMesh()
	m.CalculateSmoothNormals()

	if !m.HasNormals() {
		t.Fatalf("expected HasNormals() after synthesis")
	}
	for i, n := range m.Normals {
		v := n.Vec3()
		if l := v.Len(); l < 0.999 || l > 1.001 {
			t.Errorf("normal %d has length %v, want ~1", i, l)
		}
	}
	if m.Normals[0].Z <= 0 {
		t.Errorf("triangle in the XY plane should produce a +Z normal, got %v", m.Normals[0])
	}
}

func TestMeshBoundsOfEmptyMeshIsZero(t *testing.T) {
	m := NewMesh("empty")
	min, max := m.Bounds()
	if min != (math3d.Vec3{}) || max != (math3d.Vec3{}) {
		t.Errorf("Bounds() of empty mesh = (%v,%v), want zero", min, max)
	}
}

func TestMeshBoundsOfTriangle(t *testing.T) {
	m := triangleMesh()
	min, max := m.Bounds()
	if min != (math3d.Vec3{}) {
		t.Errorf("min = %v, want (0,0,0)", min)
	}
	if max != math3d.V3(1, 1, 0) {
		t.Errorf("max = %v, want (1,1,0)", max)
	}
}
