package render

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestImageSetAtRoundTrips(t *testing.T) {
	img := NewImage(4, 4)
	img.Set(1, 2, Color{0.25, 0.5, 0.75})
	if got := img.At(1, 2); got != (Color{0.25, 0.5, 0.75}) {
		t.Errorf("At(1,2) = %v, want (0.25,0.5,0.75)", got)
	}
}

func TestImageOutOfBoundsIsBlackAndDiscarded(t *testing.T) {
	img := NewImage(2, 2)
	if got := img.At(-1, 0); got != (Color{}) {
		t.Errorf("out-of-bounds At = %v, want zero", got)
	}
	img.Set(99, 99, Color{1, 1, 1})
	for _, c := range img.Pixels {
		if c != (Color{}) {
			t.Fatalf("out-of-bounds Set mutated the image: %v", c)
		}
	}
}

func TestImageSampleWrapsCoordinates(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, Color{1, 0, 0})
	img.Set(1, 0, Color{0, 1, 0})

	direct := img.Sample(0.25, 0.25)
	wrapped := img.Sample(1.25, 0.25)
	if direct != wrapped {
		t.Errorf("Sample(1.25,...) = %v, want same as Sample(0.25,...) = %v", wrapped, direct)
	}
}

func TestColorSaturateClamps(t *testing.T) {
	c := Color{R: 1.5, G: -0.2, B: 0.5}.Saturate()
	if c.R != 1 || c.G != 0 || c.B != 0.5 {
		t.Errorf("Saturate() = %v, want (1,0,0.5)", c)
	}
}

func TestDepthBufferClearedToInf(t *testing.T) {
	d := NewDepthBuffer(3, 3)
	if !math.IsInf(d.At(0, 0), 1) {
		t.Errorf("fresh depth buffer = %v, want +Inf", d.At(0, 0))
	}
	d.Set(1, 1, 5)
	if d.At(1, 1) != 5 {
		t.Errorf("At(1,1) = %v, want 5", d.At(1, 1))
	}
}

func TestDepthBufferToImageLeavesUntouchedPixelsBlack(t *testing.T) {
	d := NewDepthBuffer(2, 2)
	d.Set(0, 0, 1)
	d.Set(1, 1, 3)
	img := d.ToImage()
	if img.At(0, 1) != (Color{}) {
		t.Errorf("untouched pixel = %v, want black", img.At(0, 1))
	}
	if img.At(0, 0) == (Color{}) {
		t.Errorf("nearest depth pixel should be brighter than black")
	}
}

func TestWritePNGAndLoadImageRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	img := NewImage(2, 2)
	img.Set(0, 0, Color{1, 1, 1})
	if err := img.WritePNG(path); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %q: %v", path, err)
	}

	loaded, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if loaded.Width != 2 || loaded.Height != 2 {
		t.Errorf("loaded dims = (%d,%d), want (2,2)", loaded.Width, loaded.Height)
	}
	if c := loaded.At(0, 0); c.R < 0.9 {
		t.Errorf("round-tripped white pixel = %v, want near white", c)
	}
}
