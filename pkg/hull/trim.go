package hull

import (
	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// Trim3 returns a hull over a compacted cloud holding only the hull vertices,
// in first-seen order. The input hull is not modified; it is returned as is
// when every cloud point is already a vertex.
func Trim3(h *Hull3) *Hull3 {
	if len(h.Vertices) == len(h.Cloud) || h.Empty() {
		return h
	}

	remap := make(map[int]int, len(h.Vertices))
	cloud := make([]geometry.Vector3, len(h.Vertices))
	for i, v := range h.Vertices {
		remap[v] = i
		cloud[i] = h.Cloud[v]
	}

	triangles := make([]geometry.IndexTriangle, len(h.Triangles))
	for i, t := range h.Triangles {
		for j, v := range t {
			triangles[i][j] = lookup(remap, v)
		}
	}
	return newHull3(cloud, triangles)
}

// Trim2 is the planar counterpart of Trim3
func Trim2(h *Hull2) *Hull2 {
	if len(h.Vertices) == len(h.Cloud) || len(h.Edges) == 0 {
		return h
	}

	remap := make(map[int]int, len(h.Vertices))
	cloud := make([]geometry.Vector2, len(h.Vertices))
	for i, v := range h.Vertices {
		remap[v] = i
		cloud[i] = h.Cloud[v]
	}

	edges := make([]geometry.OrderedEdge, len(h.Edges))
	for i, e := range h.Edges {
		edges[i] = geometry.OrderedEdge{From: lookup(remap, e.From), To: lookup(remap, e.To)}
	}
	return newHull2(cloud, edges)
}

func lookup(remap map[int]int, v int) int {
	idx, ok := remap[v]
	if !ok {
		panic(errors.Errorf("hull: vertex %d referenced by topology but missing from the vertex set", v))
	}
	return idx
}
