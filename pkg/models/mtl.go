package models

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/trophy/pkg/render"
)

// LoadMTL parses a Wavefront MTL file into a set of materials keyed by
// their "newmtl" name. Texture paths given by map_Kd are resolved
// relative to the MTL file's own directory.
func LoadMTL(path string) (map[string]*render.Material, error) {
	order, err := parseMTL(path)
	if err != nil {
		return nil, err
	}
	materials := make(map[string]*render.Material, len(order))
	for _, m := range order {
		materials[m.Name] = m
	}
	return materials, nil
}

// LoadMaterial loads path as a single material: the scene file's
// "material:" key names exactly one MTL file per object, so this returns
// the last-defined material in that file (or the anonymous one, if the
// file never declares a "newmtl").
func LoadMaterial(path string) (*render.Material, error) {
	order, err := parseMTL(path)
	if err != nil {
		return nil, err
	}
	if len(order) == 0 {
		return render.DefaultMaterial(), nil
	}
	return order[len(order)-1], nil
}

// parseMTL parses a Wavefront MTL file into materials in declaration
// order, starting with an anonymous material that collects any
// attribute lines preceding the first "newmtl".
func parseMTL(path string) ([]*render.Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load mtl %q: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	var order []*render.Material
	var current *render.Material

	lineNo := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		key := fields[0]
		args := fields[1:]

		if key == "newmtl" {
			if len(args) < 1 {
				return nil, fmt.Errorf("%s:%d: newmtl missing a name", path, lineNo)
			}
			mat := render.DefaultMaterial()
			mat.Name = args[0]
			order = append(order, mat)
			current = mat
			continue
		}

		// An attribute line before any "newmtl" describes an anonymous
		// material -- the common case for this parser's MTL subset,
		// where a scene object names exactly one MTL file.
		if current == nil {
			current = render.DefaultMaterial()
			order = append(order, current)
		}

		switch key {
		case "Ns":
			v, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad Ns: %w", path, lineNo, err)
			}
			current.Shininess = v
		case "Ka":
			c, err := parseMTLColor(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad Ka: %w", path, lineNo, err)
			}
			current.Ambient = c
		case "Kd":
			c, err := parseMTLColor(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad Kd: %w", path, lineNo, err)
			}
			current.Diffuse = c
		case "Ks":
			c, err := parseMTLColor(args)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad Ks: %w", path, lineNo, err)
			}
			current.Specular = c
		case "map_Kd":
			if len(args) < 1 {
				return nil, fmt.Errorf("%s:%d: map_Kd missing a path", path, lineNo)
			}
			texPath := filepath.Join(dir, args[len(args)-1])
			tex, err := render.LoadTexture(texPath)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
			current.TextureMap = tex
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mtl %q: %w", path, err)
	}

	return order, nil
}

func parseMTLColor(args []string) (render.Color, error) {
	if len(args) < 3 {
		return render.Color{}, fmt.Errorf("expected 3 components, got %d", len(args))
	}
	r, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return render.Color{}, err
	}
	g, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return render.Color{}, err
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return render.Color{}, err
	}
	return render.Color{R: r, G: g, B: b}, nil
}
