package hull

import (
	"math"
	"sort"

	"github.com/philipparndt/gobox/pkg/geometry"
)

func newHull3(cloud []geometry.Vector3, triangles []geometry.IndexTriangle) *Hull3 {
	h := &Hull3{
		Cloud:     cloud,
		Triangles: triangles,
		Faces:     make([]geometry.Triangle, len(triangles)),
		Adjacency: make([][]int, len(cloud)),
		edgeIndex: make(map[geometry.UnorderedEdge]int),
	}

	seen := make(map[int]bool)
	for i, t := range triangles {
		h.Faces[i] = t.Resolve(cloud)

		for _, v := range t {
			if !seen[v] {
				seen[v] = true
				h.Vertices = append(h.Vertices, v)
			}
		}

		for _, e := range t.Edges() {
			h.Adjacency[e.From] = appendUnique(h.Adjacency[e.From], e.To)

			key := e.Unordered()
			idx, ok := h.edgeIndex[key]
			if !ok {
				idx = len(h.Edges)
				h.edgeIndex[key] = idx
				h.Edges = append(h.Edges, e)
				h.EdgeFaces = append(h.EdgeFaces, FacePair{First: i, Second: -1})
				continue
			}
			if h.EdgeFaces[idx].Second < 0 {
				h.EdgeFaces[idx].Second = i
			}
		}
	}

	points := make([]geometry.Vector3, len(h.Vertices))
	for i, v := range h.Vertices {
		points[i] = cloud[v]
	}
	h.Centroid = geometry.Centroid(points)
	if len(points) == 0 {
		h.Centroid = geometry.Centroid(cloud)
	}

	return h
}

// EdgeTable is a dense (vertex, vertex) -> edge index lookup
type EdgeTable struct {
	n     int
	index []int32
}

// EdgeTable builds the dense lookup. It allocates len(Cloud)^2 entries and
// is meant for trimmed hulls.
func (h *Hull3) EdgeTable() EdgeTable {
	n := len(h.Cloud)
	t := EdgeTable{n: n, index: make([]int32, n*n)}
	for i := range t.index {
		t.index[i] = -1
	}
	for i, e := range h.Edges {
		t.index[e.From*n+e.To] = int32(i)
		t.index[e.To*n+e.From] = int32(i)
	}
	return t
}

// Lookup returns the edge joining u and v, or -1
func (t EdgeTable) Lookup(u, v int) int {
	return int(t.index[u*t.n+v])
}

// Euler returns V - E + F, which is 2 for a closed hull
func (h *Hull3) Euler() int {
	return len(h.Vertices) - len(h.Edges) + len(h.Triangles)
}

// AlongAxis projects every hull vertex onto axis relative to the centroid.
// It returns the vertex with the smallest projection (the first one found
// among near ties) and the projection interval.
func (h *Hull3) AlongAxis(axis geometry.Vector3) (int, geometry.MinMax) {
	extent := geometry.NewMinMax()
	lowest, low := -1, math.MaxFloat64
	for _, v := range h.Vertices {
		d := h.Cloud[v].Sub(h.Centroid).Dot(axis)
		extent.Add(d)
		if geometry.Less(d, low) {
			lowest, low = v, d
		}
	}
	return lowest, extent
}

// VertexPoints returns the coordinates of the hull vertices
func (h *Hull3) VertexPoints() []geometry.Vector3 {
	points := make([]geometry.Vector3, len(h.Vertices))
	for i, v := range h.Vertices {
		points[i] = h.Cloud[v]
	}
	return points
}

func appendUnique(list []int, v int) []int {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}

func seq(from, to int) []int {
	out := make([]int, 0, max(to-from, 0))
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
