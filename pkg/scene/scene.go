// Package scene loads a YAML scene description -- camera, lights, and a
// list of mesh+material objects -- into the types the renderer consumes,
// pooling meshes and materials behind their file path so a repeated
// reference loads its file only once.
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/models"
	"github.com/taigrr/trophy/pkg/render"
)

// Object is one mesh+material instance placed in world space.
type Object struct {
	Position math3d.Vec3
	Rotation math3d.Quaternion
	Scale    math3d.Vec3
	Mesh     *models.Mesh
	Material *render.Material
}

// ModelMatrix returns the object's scale/rotate/translate transform:
// translate(position) * rotate(rotation) * scale(scale), applied to a
// mesh vertex right to left.
func (o Object) ModelMatrix() math3d.Mat4 {
	return math3d.Translate(o.Position).Mul(math3d.RotateQuat(o.Rotation)).Mul(math3d.Scale(o.Scale))
}

// Scene is a fully loaded, render-ready scene: resolution, a camera, a
// light collection, and the list of objects to draw.
type Scene struct {
	Width, Height int
	Camera        render.Camera
	Lights        render.LightCollection
	Objects       []Object
}

// Manager pools loaded meshes and materials by their source file path,
// so that two objects referencing the same mesh or material file share
// one in-memory instance.
type Manager struct {
	meshes    map[string]*models.Mesh
	materials map[string]*render.Material
}

// NewManager creates an empty, ready-to-use resource pool.
func NewManager() *Manager {
	return &Manager{
		meshes:    make(map[string]*models.Mesh),
		materials: make(map[string]*render.Material),
	}
}

// GetMesh loads path the first time it is requested and returns the
// pooled instance on every later call with the same path. The file
// extension selects the loader: ".glb"/".gltf" use the binary/JSON glTF
// loader, anything else is parsed as Wavefront OBJ.
func (m *Manager) GetMesh(path string) (*models.Mesh, error) {
	if mesh, ok := m.meshes[path]; ok {
		return mesh, nil
	}

	var mesh *models.Mesh
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		mesh, err = models.LoadGLB(path)
	default:
		mesh, err = models.LoadOBJ(path)
	}
	if err != nil {
		return nil, err
	}
	m.meshes[path] = mesh
	return mesh, nil
}

// GetMaterial loads path the first time it is requested and returns the
// pooled instance on every later call with the same path.
func (m *Manager) GetMaterial(path string) (*render.Material, error) {
	if mat, ok := m.materials[path]; ok {
		return mat, nil
	}
	mat, err := models.LoadMaterial(path)
	if err != nil {
		return nil, err
	}
	m.materials[path] = mat
	return mat, nil
}

type yamlVec3 [3]float64

func (v yamlVec3) vec3() math3d.Vec3 { return math3d.V3(v[0], v[1], v[2]) }

type yamlQuat [4]float64

func (q yamlQuat) quat() math3d.Quaternion {
	axis := math3d.V3(q[0], q[1], q[2])
	return math3d.QuatFromAxisAngle(axis, q[3])
}

type yamlScene struct {
	Resolution struct {
		Width, Height int
	} `yaml:"resolution"`
	FOV    float64 `yaml:"fov"`
	Camera struct {
		Position yamlVec3 `yaml:"position"`
		Rotation yamlQuat `yaml:"rotation"`
	} `yaml:"camera"`
	Lights  []yamlLight  `yaml:"lights"`
	Objects []yamlObject `yaml:"objects"`
}

type yamlLight struct {
	Type      string   `yaml:"type"`
	Color     yamlVec3 `yaml:"color"`
	Direction yamlVec3 `yaml:"direction"`
	Position  yamlVec3 `yaml:"position"`
	Intensity float64  `yaml:"intensity"`
	Angle     float64  `yaml:"angle"`
	Taper     float64  `yaml:"taper"`
}

type yamlObject struct {
	Mesh     string   `yaml:"mesh"`
	Material string   `yaml:"material"`
	Position yamlVec3 `yaml:"position"`
	Rotation yamlQuat `yaml:"rotation"`
	Scale    yamlVec3 `yaml:"scale"`
}

// Load parses the scene file at path, resolving every "mesh" and
// "material" reference through manager, and builds a ready-to-render
// Scene. A missing or malformed scene file, an unresolvable mesh or
// material, or an unknown light type are all fatal load errors; an
// omitted resolution or fov is not and falls back to a default instead.
func Load(path string, manager *Manager) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scene %q: %w", path, err)
	}

	var doc yamlScene
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scene %q: %w", path, err)
	}
	baseDir := filepath.Dir(path)

	// A scene document that omits resolution/fov gets the same defaults
	// as an empty document: 400x300 at a 70-degree horizontal FOV.
	width, height, fov := 400, 300, 70.0
	if doc.Resolution.Width > 0 {
		width = doc.Resolution.Width
	}
	if doc.Resolution.Height > 0 {
		height = doc.Resolution.Height
	}
	if doc.FOV > 0 {
		fov = doc.FOV
	}

	sc := &Scene{
		Width:  width,
		Height: height,
		Camera: render.Camera{
			Position:    doc.Camera.Position.vec3(),
			Rotation:    doc.Camera.Rotation.quat(),
			FOV:         fov,
			AspectRatio: float64(width) / float64(height),
			Near:        0.1,
			Far:         1000,
		},
	}

	for _, l := range doc.Lights {
		color := render.Color{R: l.Color[0], G: l.Color[1], B: l.Color[2]}
		switch l.Type {
		case "directional":
			sc.Lights.Lights = append(sc.Lights.Lights, render.NewDirectionalLight(color, l.Direction.vec3()))
		case "point":
			sc.Lights.Lights = append(sc.Lights.Lights, render.NewPointLight(color, l.Intensity, l.Position.vec3()))
		case "spot":
			sc.Lights.Lights = append(sc.Lights.Lights, render.NewSpotLight(color, l.Angle, l.Taper, l.Direction.vec3(), l.Position.vec3()))
		default:
			return nil, fmt.Errorf("parse scene %q: unknown light type %q", path, l.Type)
		}
	}

	for _, o := range doc.Objects {
		mesh, err := manager.GetMesh(filepath.Join(baseDir, o.Mesh))
		if err != nil {
			return nil, fmt.Errorf("load scene %q: %w", path, err)
		}
		mat, err := manager.GetMaterial(filepath.Join(baseDir, o.Material))
		if err != nil {
			return nil, fmt.Errorf("load scene %q: %w", path, err)
		}
		scale := o.Scale.vec3()
		if scale == (math3d.Vec3{}) {
			scale = math3d.V3(1, 1, 1)
		}
		sc.Objects = append(sc.Objects, Object{
			Position: o.Position.vec3(),
			Rotation: o.Rotation.quat(),
			Scale:    scale,
			Mesh:     mesh,
			Material: mat,
		})
	}

	return sc, nil
}
