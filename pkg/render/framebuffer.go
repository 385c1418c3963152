// Package render implements the CPU rasterization pipeline: clipping,
// barycentric rasterization, perspective-correct interpolation, and
// Blinn-Phong shading.
package render

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"

	_ "image/jpeg" // register JPEG decoding for texture loading
)

// Color is a linear-light RGB triple. Unlike 8-bit display colors, values
// are not gamma-encoded and may momentarily exceed [0,1] before Saturate
// is applied.
type Color struct {
	R, G, B float64
}

// Add returns the component-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Mul returns the component-wise product.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Scale returns c scaled by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Saturate clamps each channel to [0, 1].
func (c Color) Saturate() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Luminance returns the perceptual brightness of the color.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// AlmostBlack reports whether the color's luminance is negligible.
func (c Color) AlmostBlack() bool {
	return c.Luminance() < 8e-7
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Image is a row-major grid of linear-light pixels, with (0,0) at the
// top-left corner.
type Image struct {
	Width, Height int
	Pixels        []Color
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Clear fills the image with a solid color.
func (img *Image) Clear(c Color) {
	for i := range img.Pixels {
		img.Pixels[i] = c
	}
}

// At returns the pixel at integer coordinates (x, y). Out-of-bounds
// coordinates return black.
func (img *Image) At(x, y int) Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return Color{}
	}
	return img.Pixels[y*img.Width+x]
}

// Set writes the pixel at integer coordinates (x, y). Out-of-bounds
// writes are silently discarded.
func (img *Image) Set(x, y int, c Color) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// Sample performs nearest-neighbor lookup at normalized texture
// coordinates (u, v), wrapping both axes to [0,1).
func (img *Image) Sample(u, v float64) Color {
	u -= math.Floor(u)
	v -= math.Floor(v)
	x := int(u * float64(img.Width))
	y := int(v * float64(img.Height))
	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	return img.At(x, y)
}

// WritePNG gamma-encodes and writes the image to path as an 8-bit PNG:
// each channel is clamped to [0,1] and gamma-encoded by a square root
// before being scaled to the 0-255 range.
func (img *Image) WritePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write png %q: %w", path, err)
	}
	defer f.Close()

	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(f, img.eightBit()); err != nil {
		return fmt.Errorf("encode png %q: %w", path, err)
	}
	return nil
}

func (img *Image) eightBit() image.Image {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y).Saturate()
			r := uint8(math.Sqrt(c.R)*255 + 0.5)
			g := uint8(math.Sqrt(c.G)*255 + 0.5)
			b := uint8(math.Sqrt(c.B)*255 + 0.5)
			i := out.PixOffset(x, y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = r, g, b, 255
		}
	}
	return out
}

// LoadImage decodes an 8-bit PNG/JPEG file at path into a linear-light
// Image, inverting the gamma encoding by squaring the normalized channel
// value.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	return LinearizeImage(src), nil
}

// LinearizeImage converts a decoded stdlib image into a linear-light
// Image, e.g. for a texture embedded in a binary glTF buffer rather than
// read from its own file.
func LinearizeImage(src image.Image) *Image {
	bounds := src.Bounds()
	out := NewImage(bounds.Dx(), bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			out.Set(x-bounds.Min.X, y-bounds.Min.Y, Color{
				R: linearize(r),
				G: linearize(g),
				B: linearize(b),
			})
		}
	}
	return out
}

// linearize converts a 16-bit-scaled color channel (as returned by
// color.Color.RGBA) into a linear-light float by normalizing to [0,1]
// and squaring.
func linearize(channel uint32) float64 {
	n := float64(channel) / 0xffff
	return n * n
}

// DepthBuffer is a width x height grid of post-viewport depth values.
// Smaller values are nearer the camera; it is initialized to +Inf.
type DepthBuffer struct {
	Width, Height int
	Values        []float64
}

// NewDepthBuffer allocates a depth buffer cleared to +Inf.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every entry to +Inf.
func (d *DepthBuffer) Clear() {
	for i := range d.Values {
		d.Values[i] = math.Inf(1)
	}
}

// At returns the depth at (x, y). Out-of-bounds coordinates return +Inf.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return math.Inf(1)
	}
	return d.Values[y*d.Width+x]
}

// Set writes the depth at (x, y).
func (d *DepthBuffer) Set(x, y int, z float64) {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return
	}
	d.Values[y*d.Width+x] = z
}

// ToImage visualizes the depth buffer as a grayscale linear image,
// remapping finite depths to [0,1] by the buffer's own min/max and
// leaving untouched (+Inf) pixels black.
func (d *DepthBuffer) ToImage() *Image {
	min, max := math.Inf(1), math.Inf(-1)
	for _, z := range d.Values {
		if math.IsInf(z, 0) {
			continue
		}
		if z < min {
			min = z
		}
		if z > max {
			max = z
		}
	}
	img := NewImage(d.Width, d.Height)
	span := max - min
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			z := d.At(x, y)
			if math.IsInf(z, 0) {
				continue
			}
			t := 1.0
			if span > 0 {
				t = 1 - (z-min)/span
			}
			img.Set(x, y, Color{t, t, t})
		}
	}
	return img
}
