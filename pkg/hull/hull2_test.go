package hull

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobox/pkg/geometry"
)

func randomPlanarCloud(seed uint64, n int) []geometry.Vector2 {
	rng := rand.New(rand.NewPCG(seed, seed))
	points := make([]geometry.Vector2, n)
	for i := range points {
		points[i] = geometry.NewVector2(rng.Float64()*10-5, rng.Float64()*4-2)
	}
	return points
}

func TestBuildHull2Square(t *testing.T) {
	square := []geometry.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	h, err := BuildHull2(square)
	require.NoError(t, err)

	assert.Len(t, h.Edges, 4)
	assert.Len(t, h.Vertices, 4)
	assert.Len(t, h.Segments, 4)
	assert.InDelta(t, 0.5, h.Centroid.X, 1e-12)
	assert.InDelta(t, 0.5, h.Centroid.Y, 1e-12)
}

func TestBuildHull2ContainsCloud(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3} {
		cloud := randomPlanarCloud(seed, 300)

		h, err := BuildHull2(cloud)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(h.Edges), 3)

		for _, p := range cloud {
			for _, s := range h.Segments {
				assert.NotEqual(t, -1, s.Side(p), "point %v outside edge %v", p, s)
			}
		}
	}
}

func TestBuildHull2ClosedLoop(t *testing.T) {
	h, err := BuildHull2(randomPlanarCloud(7, 100))
	require.NoError(t, err)

	outgoing := make(map[int]int)
	for _, e := range h.Edges {
		outgoing[e.From]++
	}
	for _, e := range h.Edges {
		assert.Equal(t, 1, outgoing[e.To], "vertex %d must start exactly one edge", e.To)
	}
}

func TestBuildHull2Degenerate(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		h, err := BuildHull2(nil)
		assert.ErrorIs(t, err, ErrInsufficientPoints)
		assert.Empty(t, h.Edges)
	})

	t.Run("two points", func(t *testing.T) {
		h, err := BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 3, Y: 1}})
		require.NoError(t, err)
		assert.Len(t, h.Edges, 2)
		assert.Len(t, h.Vertices, 2)
	})

	t.Run("identical points", func(t *testing.T) {
		p := geometry.NewVector2(2, 2)
		h, err := BuildHull2([]geometry.Vector2{p, p, p, p})
		require.NoError(t, err)
		assert.NotEmpty(t, h.Edges)
	})

	t.Run("duplicated end point", func(t *testing.T) {
		h, err := BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: -3}})
		require.NoError(t, err)
		assert.Len(t, h.Edges, 3)
		assert.Len(t, h.Vertices, 3)
		for _, s := range h.Segments {
			assert.Greater(t, s.Length(), 0.0)
		}
	})

	t.Run("colinear points", func(t *testing.T) {
		h, err := BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 1, Y: 1}, {X: 3, Y: 3}})
		require.NoError(t, err)
		for _, s := range h.Segments {
			assert.Equal(t, 0, s.Side(geometry.NewVector2(4, 4)))
		}
	})
}

func TestTrim2(t *testing.T) {
	cloud := append(randomPlanarCloud(11, 50), geometry.NewVector2(0, 0))
	h, err := BuildHull2(cloud)
	require.NoError(t, err)

	trimmed := Trim2(h)
	assert.Len(t, trimmed.Cloud, len(h.Vertices))
	assert.Len(t, trimmed.Edges, len(h.Edges))
	for i, e := range trimmed.Edges {
		assert.Equal(t, h.Segments[i], trimmed.Segments[i])
		assert.Less(t, e.From, len(trimmed.Cloud))
	}
}
