package render

// LoadTexture loads a texture map from an image file (PNG or JPEG),
// decoding and linearizing it the same way any other Image is loaded.
func LoadTexture(path string) (*Image, error) {
	return LoadImage(path)
}

// NewCheckerTexture builds a procedural checkerboard texture in linear
// color, useful for scenes that reference a material with no map_Kd.
func NewCheckerTexture(width, height, checkSize int, c1, c2 Color) *Image {
	tex := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cx := x / checkSize
			cy := y / checkSize
			if (cx+cy)%2 == 0 {
				tex.Set(x, y, c1)
			} else {
				tex.Set(x, y, c2)
			}
		}
	}
	return tex
}

// NewGradientTexture builds a horizontal linear-color gradient texture.
func NewGradientTexture(width, height int, left, right Color) *Image {
	tex := NewImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := 0.0
			if width > 1 {
				t = float64(x) / float64(width-1)
			}
			tex.Set(x, y, Color{
				R: left.R + (right.R-left.R)*t,
				G: left.G + (right.G-left.G)*t,
				B: left.B + (right.B-left.B)*t,
			})
		}
	}
	return tex
}
