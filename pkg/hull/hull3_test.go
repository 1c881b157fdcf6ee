package hull

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobox/pkg/geometry"
)

var tetrahedron = []geometry.Vector3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: -1},
}

func randomCloud(seed uint64, n int) []geometry.Vector3 {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]geometry.Vector3, n)
	for i := range points {
		points[i] = geometry.NewVector3(rng.Float64()*4-2, rng.Float64()*2-1, rng.Float64()*6-3)
	}
	return points
}

func cubeCorners() []geometry.Vector3 {
	var points []geometry.Vector3
	for _, x := range []float64{0, 1} {
		for _, y := range []float64{0, 1} {
			for _, z := range []float64{0, 1} {
				points = append(points, geometry.NewVector3(x, y, z))
			}
		}
	}
	return points
}

func assertEnclosed(t *testing.T, h *Hull3, cloud []geometry.Vector3) {
	t.Helper()
	for i, f := range h.Faces {
		assert.Equal(t, -1, f.Side(h.Centroid), "centroid in front of face %d", i)
		for _, p := range cloud {
			assert.NotEqual(t, 1, f.Side(p), "point %v in front of face %d", p, i)
		}
	}
}

func TestBuildHull3Tetrahedron(t *testing.T) {
	h, err := BuildHull3(tetrahedron)
	require.NoError(t, err)

	assert.Len(t, h.Triangles, 4)
	assert.Len(t, h.Edges, 6)
	assert.Len(t, h.Vertices, 4)
	assert.Equal(t, 2, h.Euler())
	assertEnclosed(t, h, tetrahedron)

	for v := range tetrahedron {
		assert.Len(t, h.Adjacency[v], 3)
	}
}

func TestBuildHull3Cube(t *testing.T) {
	cloud := cubeCorners()
	h, err := BuildHull3(cloud)
	require.NoError(t, err)

	assert.Len(t, h.Triangles, 12)
	assert.Len(t, h.Edges, 18)
	assert.Len(t, h.Vertices, 8)
	assertEnclosed(t, h, cloud)
}

func TestBuildHull3RandomCloud(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 4} {
		cloud := randomCloud(seed, 400)

		h, err := BuildHull3(cloud)
		require.NoError(t, err)

		assert.Equal(t, 2, h.Euler(), "seed %d", seed)
		assert.Less(t, len(h.Vertices), len(cloud))
		assertEnclosed(t, h, cloud)
	}
}

func TestBuildHull3Topology(t *testing.T) {
	h, err := BuildHull3(randomCloud(5, 150))
	require.NoError(t, err)

	require.Len(t, h.EdgeFaces, len(h.Edges))
	for i, e := range h.Edges {
		pair := h.EdgeFaces[i]
		require.GreaterOrEqual(t, pair.Second, 0, "edge %v must have two faces", e)
		assert.NotEqual(t, pair.First, pair.Second)

		for _, f := range []int{pair.First, pair.Second} {
			tri := h.Triangles[f]
			assert.Contains(t, tri[:], e.From)
			assert.Contains(t, tri[:], e.To)
		}

		assert.Contains(t, h.Adjacency[e.From], e.To)
		assert.Contains(t, h.Adjacency[e.To], e.From)
	}
}

func TestBuildHull3Failures(t *testing.T) {
	tests := []struct {
		name   string
		points []geometry.Vector3
		err    error
	}{
		{"too few", tetrahedron[:3], ErrInsufficientPoints},
		{"coincident", []geometry.Vector3{{X: 1}, {X: 1}, {X: 1}, {X: 1}, {X: 1}}, ErrDegenerate},
		{"colinear", []geometry.Vector3{{X: 0}, {X: 1}, {X: 2}, {X: 3}, {X: -4}}, ErrDegenerate},
		{"coplanar", []geometry.Vector3{{X: 0}, {X: 1}, {Y: 1}, {X: 1, Y: 1}, {X: 5, Y: -2}}, ErrDegenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := BuildHull3(tt.points)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, h.Empty())
		})
	}
}

func TestTrim3(t *testing.T) {
	cloud := randomCloud(9, 200)
	h, err := BuildHull3(cloud)
	require.NoError(t, err)

	trimmed := Trim3(h)
	assert.Len(t, trimmed.Cloud, len(h.Vertices))
	assert.Len(t, trimmed.Triangles, len(h.Triangles))
	assert.Len(t, trimmed.Edges, len(h.Edges))
	assert.Equal(t, 2, trimmed.Euler())
	assert.True(t, geometry.EqualVectors(h.Centroid, trimmed.Centroid))

	for i := range h.Faces {
		assert.True(t, geometry.EqualVectors(h.Faces[i].Normal, trimmed.Faces[i].Normal))
	}

	// Trimming an already trimmed hull is a no-op
	assert.Same(t, trimmed, Trim3(trimmed))
}

func TestBuildHull3Idempotent(t *testing.T) {
	h, err := BuildHull3(randomCloud(13, 250))
	require.NoError(t, err)

	again, err := BuildHull3(Trim3(h).Cloud)
	require.NoError(t, err)

	assert.Len(t, again.Vertices, len(h.Vertices))
	assert.Len(t, again.Edges, len(h.Edges))
	assert.Len(t, again.Triangles, len(h.Triangles))
}

func TestAlongAxis(t *testing.T) {
	h, err := BuildHull3(tetrahedron)
	require.NoError(t, err)

	lowest, extent := h.AlongAxis(geometry.UnitX)
	assert.Equal(t, 0, lowest)
	assert.InDelta(t, -1, extent.Min, 1e-12)
	assert.InDelta(t, 1, extent.Max, 1e-12)
}

func TestEdgeTable(t *testing.T) {
	h, err := BuildHull3(tetrahedron)
	require.NoError(t, err)

	table := h.EdgeTable()
	for i, e := range h.Edges {
		assert.Equal(t, i, table.Lookup(e.From, e.To))
		assert.Equal(t, i, table.Lookup(e.To, e.From))
	}
	assert.Equal(t, -1, table.Lookup(1, 1))
}
