package hull

import (
	"math"
	"sort"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// Hull2 is the convex hull of a planar point cloud. Edge indices refer to
// Cloud, which is the input sorted by x.
type Hull2 struct {
	Cloud    []geometry.Vector2
	Edges    []geometry.OrderedEdge
	Vertices []int
	Segments []geometry.Segment2
	Centroid geometry.Vector2
}

// BuildHull2 computes the convex hull of the points with quickhull.
// Colinear or coincident input yields a degenerate hull without error.
func BuildHull2(points []geometry.Vector2, opts ...Option) (*Hull2, error) {
	s := newSettings(opts)

	cloud := make([]geometry.Vector2, len(points))
	copy(cloud, points)
	if len(cloud) == 0 {
		s.logger.Warn("cannot build 2D hull", "points", 0)
		return &Hull2{}, ErrInsufficientPoints
	}
	sort.SliceStable(cloud, func(i, j int) bool { return cloud[i].X < cloud[j].X })

	first, last := 0, len(cloud)-1
	baseline := geometry.Segment2{A: cloud[first], B: cloud[last]}

	// copies of the baseline ends would become zero-length edges
	var above, below []int
	for i := first + 1; i < last; i++ {
		if geometry.DefaultTolerance.EqualVectors2(cloud[i], cloud[first]) ||
			geometry.DefaultTolerance.EqualVectors2(cloud[i], cloud[last]) {
			continue
		}
		if baseline.Side(cloud[i]) == 1 {
			below = append(below, i)
		} else {
			above = append(above, i)
		}
	}

	edges := seekEdges(cloud, first, last, above)
	edges = append(edges, seekEdges(cloud, last, first, below)...)

	return newHull2(cloud, edges), nil
}

// seekEdges returns the hull edges between left and right, given the
// candidates lying outside the directed edge left->right.
func seekEdges(cloud []geometry.Vector2, left, right int, candidates []int) []geometry.OrderedEdge {
	switch len(candidates) {
	case 0:
		return []geometry.OrderedEdge{{From: left, To: right}}
	case 1:
		p := candidates[0]
		return []geometry.OrderedEdge{{From: left, To: p}, {From: p, To: right}}
	}

	edge := geometry.Segment2{A: cloud[left], B: cloud[right]}
	far, best := -1, -math.MaxFloat64
	for _, c := range candidates {
		if d := edge.SquaredDistance(cloud[c]); d > best {
			far, best = c, d
		}
	}

	toLeft := geometry.Segment2{A: cloud[left], B: cloud[far]}
	toRight := geometry.Segment2{A: cloud[far], B: cloud[right]}

	var onLeft, onRight []int
	for _, c := range candidates {
		if c == far {
			continue
		}
		if toLeft.Side(cloud[c]) == -1 {
			onLeft = append(onLeft, c)
		} else if toRight.Side(cloud[c]) == -1 {
			onRight = append(onRight, c)
		}
	}

	edges := seekEdges(cloud, left, far, onLeft)
	return append(edges, seekEdges(cloud, far, right, onRight)...)
}

func newHull2(cloud []geometry.Vector2, edges []geometry.OrderedEdge) *Hull2 {
	h := &Hull2{
		Cloud:    cloud,
		Edges:    edges,
		Segments: make([]geometry.Segment2, len(edges)),
		Centroid: geometry.Centroid2(cloud),
	}

	seen := make(map[int]bool, len(edges))
	for i, e := range edges {
		h.Segments[i] = geometry.Segment2{A: cloud[e.From], B: cloud[e.To]}
		for _, v := range [2]int{e.From, e.To} {
			if !seen[v] {
				seen[v] = true
				h.Vertices = append(h.Vertices, v)
			}
		}
	}
	return h
}

// VertexPoints returns the coordinates of the hull vertices
func (h *Hull2) VertexPoints() []geometry.Vector2 {
	points := make([]geometry.Vector2, len(h.Vertices))
	for i, v := range h.Vertices {
		points[i] = h.Cloud[v]
	}
	return points
}
