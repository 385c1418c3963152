package render

// Material describes a Blinn-Phong surface: ambient/diffuse/specular
// colors, a shininess exponent, and an optional texture map that
// modulates the final shaded color.
type Material struct {
	Name       string
	Shininess  float64
	Ambient    Color
	Diffuse    Color
	Specular   Color
	TextureMap *Image
}

// DefaultMaterial returns a neutral gray Blinn-Phong material, used when
// an object references no material file.
func DefaultMaterial() *Material {
	return &Material{
		Shininess: 32,
		Ambient:   Color{0.1, 0.1, 0.1},
		Diffuse:   Color{0.8, 0.8, 0.8},
		Specular:  Color{0.5, 0.5, 0.5},
	}
}
