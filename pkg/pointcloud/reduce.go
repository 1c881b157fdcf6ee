package pointcloud

import (
	"math"

	"github.com/philipparndt/gobox/pkg/geometry"
)

type cell [3]int64

func cellOf(p geometry.Vector3, size float64) cell {
	return cell{
		int64(math.Floor(p.X / size)),
		int64(math.Floor(p.Y / size)),
		int64(math.Floor(p.Z / size)),
	}
}

// Reduce thins a cloud by dropping every point that has a later point
// within minDistance. Of each cluster the last point survives. The order
// of the kept points is preserved.
func Reduce(points []geometry.Vector3, minDistance float64) []geometry.Vector3 {
	if minDistance <= 0 || len(points) < 2 {
		out := make([]geometry.Vector3, len(points))
		copy(out, points)
		return out
	}

	limit := minDistance * minDistance
	grid := make(map[cell][]geometry.Vector3)
	keep := make([]bool, len(points))

	for i := len(points) - 1; i >= 0; i-- {
		p := points[i]
		c := cellOf(p, minDistance)
		keep[i] = !hasNeighbour(grid, c, p, limit)
		grid[c] = append(grid[c], p)
	}

	out := make([]geometry.Vector3, 0, len(points))
	for i, p := range points {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

func hasNeighbour(grid map[cell][]geometry.Vector3, c cell, p geometry.Vector3, limit float64) bool {
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for dz := int64(-1); dz <= 1; dz++ {
				for _, q := range grid[cell{c[0] + dx, c[1] + dy, c[2] + dz}] {
					if p.Sub(q).Norm2() <= limit {
						return true
					}
				}
			}
		}
	}
	return false
}
