package pointcloud

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/openscad"
	"github.com/philipparndt/gobox/pkg/stl"
)

// DefaultMinDistance is the reduction radius used when none is given
const DefaultMinDistance = 0.1

// ErrUnsupportedFormat is returned for file extensions without a reader
var ErrUnsupportedFormat = errors.New("unsupported point cloud format")

// Cloud is a loaded point set. Planar clouds come from 2D sources and
// have Z = 0 for every point.
type Cloud struct {
	Name   string
	Points []geometry.Vector3
	Planar bool
	// Mesh is the triangle model the points were taken from, nil for plain point lists
	Mesh *stl.Model
}

// Points2 drops the Z coordinate
func (c *Cloud) Points2() []geometry.Vector2 {
	out := make([]geometry.Vector2, len(c.Points))
	for i, p := range c.Points {
		out[i] = geometry.NewVector2(p.X, p.Y)
	}
	return out
}

// Extensions lists the file extensions Load understands
func Extensions() []string {
	return []string{".xyz", ".txt", ".csv", ".stl", ".scad", ".svg"}
}

// Load reads a cloud, choosing the reader by file extension. OpenSCAD
// sources are rendered first and need the openscad binary.
func Load(ctx context.Context, path string) (*Cloud, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := filepath.Base(path)

	switch ext {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", name)
		}
		return &Cloud{Name: name, Points: model.Vertices(), Mesh: model}, nil

	case ".scad":
		model, err := openscad.NewRenderer(filepath.Dir(path)).Render(ctx, path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", name)
		}
		return &Cloud{Name: name, Points: model.Vertices(), Mesh: model}, nil

	case ".svg", ".xyz", ".txt", ".csv":
		file, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open file")
		}
		defer file.Close()

		var cloud *Cloud
		if ext == ".svg" {
			cloud, err = ReadSVG(file)
		} else {
			cloud, err = ReadText(file)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", name)
		}
		cloud.Name = name
		return cloud, nil
	}

	return nil, errors.Wrapf(ErrUnsupportedFormat, "%q (supported: %s)", ext, strings.Join(Extensions(), ", "))
}

// Sources returns the files a cloud was built from, for change watching
func Sources(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".scad") {
		return openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve path %s", path)
	}
	return []string{abs}, nil
}
