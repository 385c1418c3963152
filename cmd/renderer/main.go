// renderer renders a YAML scene description to a pair of PNG images: a
// shaded color image and a grayscale depth visualization.
//
// Usage:
//
//	renderer <scene.yaml>
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/taigrr/trophy/pkg/render"
	"github.com/taigrr/trophy/pkg/scene"
)

var (
	outputPath = flag.String("o", "output.png", "Path to write the rendered color image")
	depthPath  = flag.String("depth", "depth.png", "Path to write the grayscale depth visualization")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "renderer - CPU software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: renderer [options] <scene.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(scenePath string) error {
	manager := scene.NewManager()
	sc, err := scene.Load(scenePath, manager)
	if err != nil {
		return err
	}

	img := render.NewImage(sc.Width, sc.Height)
	depth := render.NewDepthBuffer(sc.Width, sc.Height)

	viewProj := sc.Camera.ViewProjectionMatrix()
	viewport := math3d.Viewport(float64(sc.Width), float64(sc.Height))

	start := time.Now()
	for _, obj := range sc.Objects {
		mesh := render.MeshData{
			Positions: obj.Mesh.Positions,
			Normals:   obj.Mesh.Normals,
			Texcoords: obj.Mesh.Texcoords,
			Elements:  obj.Mesh.Elements,
		}
		render.DrawObject(img, depth, mesh, obj.ModelMatrix(), viewProj, viewport, obj.Material, sc.Lights, sc.Camera.Position)
	}
	fmt.Printf("rendered in %s\n", time.Since(start))

	if err := img.WritePNG(*outputPath); err != nil {
		return err
	}
	return depth.ToImage().WritePNG(*depthPath)
}
