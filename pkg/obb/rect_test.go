package obb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

func TestMinAreaRectangleSquare(t *testing.T) {
	h, err := hull.BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0.5, Y: 0.5}})
	require.NoError(t, err)

	rect, err := MinAreaRectangle(h)
	require.NoError(t, err)
	assert.InDelta(t, 1, rect.Area(), 1e-9)
	assert.InDelta(t, 1, rect.Extents.X, 1e-9)
	assert.InDelta(t, 1, rect.Extents.Y, 1e-9)
}

func TestMinAreaRectangleFirstEdgeWins(t *testing.T) {
	h, err := hull.BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	require.Len(t, h.Segments, 4)

	rect, err := MinAreaRectangle(h)
	require.NoError(t, err)

	// all four edges tie on area, the first one sets the axes
	first := h.Segments[0]
	dir := first.B.Sub(first.A).Normalize()
	assert.InDelta(t, dir.X, rect.Axes[0].X, 1e-12)
	assert.InDelta(t, dir.Y, rect.Axes[0].Y, 1e-12)
	assert.InDelta(t, -dir.Y, rect.Axes[1].X, 1e-12)
	assert.InDelta(t, dir.X, rect.Axes[1].Y, 1e-12)
}

func TestMinAreaRectangleRotated(t *testing.T) {
	angle := math.Pi / 6
	var points []geometry.Vector2
	for _, p := range []geometry.Vector2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 0, Y: 1}, {X: 2, Y: 0.5}} {
		points = append(points, geometry.Rotate2D(p, angle))
	}
	h, err := hull.BuildHull2(points)
	require.NoError(t, err)

	rect, err := MinAreaRectangle(h)
	require.NoError(t, err)
	assert.InDelta(t, 4, rect.Area(), 1e-9)
	for _, p := range points {
		assert.True(t, rect.Contains(p, 1e-9), "point %v outside %+v", p, rect)
	}
}

func TestMinAreaRectangleTriangle(t *testing.T) {
	points := []geometry.Vector2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 3}}
	h, err := hull.BuildHull2(points)
	require.NoError(t, err)

	rect, err := MinAreaRectangle(h)
	require.NoError(t, err)
	assert.InDelta(t, 6, rect.Area(), 1e-9)
	for _, p := range points {
		assert.True(t, rect.Contains(p, 1e-9))
	}
}

func TestMinAreaRectangleInsufficientEdges(t *testing.T) {
	h, err := hull.BuildHull2([]geometry.Vector2{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	rect, err := MinAreaRectangle(h)
	assert.ErrorIs(t, err, ErrInsufficientEdges)
	assert.Equal(t, geometry.Rectangle{}, rect)
}
