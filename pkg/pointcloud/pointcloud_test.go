package pointcloud

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobox/pkg/geometry"
)

const hexagonSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <polygon points="50,0 93,25 93,75 50,100 7,75 7,25"/>
  <polyline points="40 40, 60 40"/>
  <rect x="45" y="45" width="10" height="5"/>
</svg>`

func TestReadText(t *testing.T) {
	input := "# x y z\n0 0 0\n1,2,3\n\n4;5;6\n"
	cloud, err := ReadText(strings.NewReader(input))
	require.NoError(t, err)

	assert.False(t, cloud.Planar)
	assert.Equal(t, []geometry.Vector3{{}, {X: 1, Y: 2, Z: 3}, {X: 4, Y: 5, Z: 6}}, cloud.Points)
}

func TestReadTextPlanar(t *testing.T) {
	cloud, err := ReadText(strings.NewReader("0 0\n1 0\n0 1\n"))
	require.NoError(t, err)

	assert.True(t, cloud.Planar)
	assert.Equal(t, geometry.NewVector2(1, 0), cloud.Points2()[1])
}

func TestReadTextErrors(t *testing.T) {
	_, err := ReadText(strings.NewReader("0 0 0\n1 2 3 4\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadText(strings.NewReader("0 x 0\n"))
	assert.Error(t, err)
}

func TestReadSVG(t *testing.T) {
	cloud, err := ReadSVG(strings.NewReader(hexagonSVG))
	require.NoError(t, err)

	assert.True(t, cloud.Planar)
	assert.Len(t, cloud.Points, 6+2+4)
	assert.Equal(t, geometry.NewVector3(50, 0, 0), cloud.Points[0])
	assert.Equal(t, geometry.NewVector3(55, 50, 0), cloud.Points[10])
}

func TestReduce(t *testing.T) {
	points := []geometry.Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 0.05, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0.09, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}

	reduced := Reduce(points, DefaultMinDistance)
	assert.Equal(t, []geometry.Vector3{{X: 1, Y: 1, Z: 1}, {X: 0.09}, {X: 2}}, reduced)

	assert.Equal(t, points, Reduce(points, 0))
	assert.Empty(t, Reduce(nil, 1))
}

func TestReduceMatchesPairwise(t *testing.T) {
	var points []geometry.Vector3
	for i := 0; i < 300; i++ {
		f := float64(i)
		points = append(points, geometry.NewVector3(float64(i%7)*0.06, float64(i%11)*0.07, f*0.001))
	}

	d := 0.1
	var want []geometry.Vector3
	for i, p := range points {
		far := true
		for _, q := range points[i+1:] {
			if p.Sub(q).Norm2() <= d*d {
				far = false
				break
			}
		}
		if far {
			want = append(want, p)
		}
	}

	assert.Equal(t, want, Reduce(points, d))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("xyz", func(t *testing.T) {
		cloud, err := Load(context.Background(), write("a.xyz", "0 0 0\n1 1 1\n"))
		require.NoError(t, err)
		assert.Equal(t, "a.xyz", cloud.Name)
		assert.Len(t, cloud.Points, 2)
		assert.Nil(t, cloud.Mesh)
	})

	t.Run("svg", func(t *testing.T) {
		cloud, err := Load(context.Background(), write("b.svg", hexagonSVG))
		require.NoError(t, err)
		assert.True(t, cloud.Planar)
	})

	t.Run("stl", func(t *testing.T) {
		stl := "solid t\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nvertex 0 1 0\nendloop\nendfacet\nendsolid t\n"
		cloud, err := Load(context.Background(), write("c.STL", stl))
		require.NoError(t, err)
		assert.Len(t, cloud.Points, 3)
		assert.False(t, cloud.Planar)
		require.NotNil(t, cloud.Mesh)
		assert.Equal(t, 1, cloud.Mesh.FacetCount())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Load(context.Background(), write("d.obj", ""))
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
		assert.Contains(t, err.Error(), ".stl")
	})

	t.Run("missing", func(t *testing.T) {
		_, err := Load(context.Background(), filepath.Join(dir, "missing.xyz"))
		assert.Error(t, err)
	})
}

func TestSources(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.scad")
	require.NoError(t, os.WriteFile(main, []byte("include <part.scad>\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "part.scad"), []byte("cube(1);\n"), 0o644))

	files, err := Sources(main)
	require.NoError(t, err)
	assert.Equal(t, []string{main, filepath.Join(dir, "part.scad")}, files)

	files, err = Sources(filepath.Join(dir, "cloud.xyz"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}
