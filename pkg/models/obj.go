package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/trophy/pkg/math3d"
)

// faceCorner is one v/vt/vn token of an OBJ face line, with 0-based
// indices. An index of -1 means the attribute was absent from the token.
type faceCorner struct {
	position, texcoord, normal int
}

// LoadOBJ parses a Wavefront OBJ file into a Mesh with one shared index
// per distinct (position, texcoord, normal) triple. Polygons with more
// than three corners are fan-triangulated. If no face corner references a
// non-zero vertex normal, per-vertex normals are synthesized by
// area-weighted smoothing.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []math3d.Vec3
	var texcoords []math3d.Vec2
	var normals []math3d.Vec3

	mesh := NewMesh(filepath.Base(path))
	shared := make(map[faceCorner]uint32)

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad vertex: %w", path, lineNo, err)
			}
			positions = append(positions, v)
		case "vt":
			v, err := parseFloats2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad texcoord: %w", path, lineNo, err)
			}
			texcoords = append(texcoords, v)
		case "vn":
			v, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad normal: %w", path, lineNo, err)
			}
			normals = append(normals, v)
		case "f":
			corners, err := parseFace(fields[1:], len(positions), len(texcoords), len(normals))
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad face: %w", path, lineNo, err)
			}
			if len(corners) < 3 {
				return nil, fmt.Errorf("%s:%d: face has fewer than three vertices", path, lineNo)
			}
			for _, idx := range fanTriangulate(corners) {
				mesh.Elements = append(mesh.Elements, resolveCorner(mesh, shared, idx, positions, texcoords, normals))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj %q: %w", path, err)
	}

	if !mesh.HasNormals() {
		mesh.CalculateSmoothNormals()
	}

	return mesh, nil
}

// resolveCorner returns the shared index for a face corner, allocating a
// new shared vertex the first time a given (position, texcoord, normal)
// triple is seen.
func resolveCorner(mesh *Mesh, shared map[faceCorner]uint32, fc faceCorner, positions []math3d.Vec3, texcoords []math3d.Vec2, normals []math3d.Vec3) uint32 {
	if idx, ok := shared[fc]; ok {
		return idx
	}

	idx := uint32(len(mesh.Positions))
	mesh.Positions = append(mesh.Positions, math3d.V4FromV3(positions[fc.position], 1))

	if fc.texcoord >= 0 {
		uv := texcoords[fc.texcoord]
		mesh.Texcoords = append(mesh.Texcoords, math3d.Vec3{X: uv.X, Y: uv.Y})
	} else {
		mesh.Texcoords = append(mesh.Texcoords, math3d.Vec3{})
	}

	if fc.normal >= 0 {
		n := normals[fc.normal]
		mesh.Normals = append(mesh.Normals, math3d.Vec4{X: n.X, Y: n.Y, Z: n.Z, W: 0})
	} else {
		mesh.Normals = append(mesh.Normals, math3d.Vec4{})
	}

	shared[fc] = idx
	return idx
}

// fanTriangulate converts an N-sided polygon into N-2 triangles sharing
// corner 0.
func fanTriangulate(corners []faceCorner) []faceCorner {
	out := make([]faceCorner, 0, (len(corners)-2)*3)
	for i := 1; i < len(corners)-1; i++ {
		out = append(out, corners[0], corners[i], corners[i+1])
	}
	return out
}

// parseFace parses the tokens of an OBJ "f" line, each of the form
// v, v/vt, v//vn, or v/vt/vn, with 1-based (optionally negative,
// relative-to-end) indices.
func parseFace(tokens []string, nv, nvt, nvn int) ([]faceCorner, error) {
	corners := make([]faceCorner, 0, len(tokens))
	for _, tok := range tokens {
		parts := strings.Split(tok, "/")
		fc := faceCorner{texcoord: -1, normal: -1}

		v, err := parseOBJIndex(parts[0], nv)
		if err != nil {
			return nil, err
		}
		fc.position = v

		if len(parts) >= 2 && parts[1] != "" {
			vt, err := parseOBJIndex(parts[1], nvt)
			if err != nil {
				return nil, err
			}
			fc.texcoord = vt
		}
		if len(parts) >= 3 && parts[2] != "" {
			vn, err := parseOBJIndex(parts[2], nvn)
			if err != nil {
				return nil, err
			}
			fc.normal = vn
		}
		corners = append(corners, fc)
	}
	return corners, nil
}

// parseOBJIndex converts a 1-based OBJ index (negative means relative to
// the end of the array seen so far) into a 0-based index.
func parseOBJIndex(s string, count int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return count + n, nil
	}
	return n - 1, nil
}

func parseFloats3(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(x, y, z), nil
}

func parseFloats2(fields []string) (math3d.Vec2, error) {
	if len(fields) < 2 {
		return math3d.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return math3d.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return math3d.Vec2{}, err
	}
	return math3d.V2(x, y), nil
}
