package obb

import (
	"log/slog"
	"math/rand/v2"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

// solver searches the three configurations a minimal box can take against
// a convex polyhedron: flush with a face, flush with two opposing edges and
// a sidepodal third, or flush with three mutually sidepodal edges.
type solver struct {
	h      *hull.Hull3
	tol    Tolerances
	logger *slog.Logger
	rng    *rand.Rand
	ev     *evaluator

	n        int
	normals  []geometry.Vector3
	internal []bool
	table    hull.EdgeTable

	// visited holds the color of the search that last reached each vertex.
	// Bumping color clears every mark in O(1).
	visited []int
	color   int

	edgeOrder []int
	faceOrder []int

	antipodal  [][]int
	compatible []edgeSet
	// sidepodal[e*n+v] is set when v is an endpoint of an edge sidepodal to e
	sidepodal []bool
}

func newSolver(h *hull.Hull3, s settings) *solver {
	return &solver{
		h:      h,
		tol:    s.tolerances,
		logger: s.logger,
		rng:    rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15)),
		ev:     newEvaluator(h),
	}
}

func (s *solver) run() *evaluator {
	if len(s.h.Vertices) < 4 {
		return s.ev
	}

	s.prepare()
	s.walk()
	s.findAntipodal()
	s.findSidepodal()

	s.searchEdgeTriples()
	s.searchOpposingEdges()
	s.searchFaces()

	return s.ev
}

func (s *solver) prepare() {
	h := s.h
	s.n = len(h.Cloud)
	s.table = h.EdgeTable()
	s.visited = make([]int, s.n)

	s.normals = make([]geometry.Vector3, len(h.Faces))
	for i, f := range h.Faces {
		s.normals[i] = f.Normal
	}

	flat := geometry.Tolerance(s.tol.InternalEdge)
	s.internal = make([]bool, len(h.Edges))
	for i, pair := range h.EdgeFaces {
		if pair.Second < 0 {
			fatalf("edge %v has a single incident face", h.Edges[i])
		}
		s.internal[i] = flat.Equal(s.normals[pair.First].Dot(s.normals[pair.Second]), 1)
	}

	s.antipodal = make([][]int, len(h.Edges))
	s.compatible = make([]edgeSet, len(h.Edges))
	s.sidepodal = make([]bool, len(h.Edges)*s.n)
}

func (s *solver) clearSearch()      { s.color++ }
func (s *solver) mark(v int)        { s.visited[v] = s.color }
func (s *solver) seen(v int) bool   { return s.visited[v] == s.color }
func (s *solver) edge(u, v int) int { return s.table.Lookup(u, v) }

func (s *solver) faceNormals(edge int) (geometry.Vector3, geometry.Vector3) {
	pair := s.h.EdgeFaces[edge]
	return s.normals[pair.First], s.normals[pair.Second]
}

func (s *solver) isSidepodal(edge, v int) bool {
	return s.sidepodal[edge*s.n+v]
}

func (s *solver) markSidepodal(edge int, of geometry.OrderedEdge) {
	s.sidepodal[edge*s.n+of.From] = true
	s.sidepodal[edge*s.n+of.To] = true
}

// walk orders faces and edges by a randomized depth-first walk over the
// edge graph so that consecutive searches start close to each other.
func (s *solver) walk() {
	h := s.h
	visitedEdges := make([]bool, len(h.Edges))
	visitedFaces := make([]bool, len(h.Faces))

	start := h.Vertices[0]
	stack := []geometry.OrderedEdge{{From: start, To: h.Adjacency[start][0]}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := s.edge(e.From, e.To)
		if visitedEdges[idx] {
			continue
		}
		visitedEdges[idx] = true

		pair := h.EdgeFaces[idx]
		for _, f := range [2]int{pair.First, pair.Second} {
			if !visitedFaces[f] {
				visitedFaces[f] = true
				s.faceOrder = append(s.faceOrder, f)
			}
		}
		if !s.internal[idx] {
			s.edgeOrder = append(s.edgeOrder, idx)
		}

		before := len(stack)
		for _, next := range h.Adjacency[e.To] {
			if !visitedEdges[s.edge(e.To, next)] {
				stack = append(stack, geometry.OrderedEdge{From: e.To, To: next})
			}
		}
		if added := len(stack) - before; added > 0 {
			r := before + s.rng.IntN(added)
			stack[len(stack)-1], stack[r] = stack[r], stack[len(stack)-1]
		}
	}

	s.logger.Debug("edge walk", "edges", len(s.edgeOrder), "internal", len(h.Edges)-len(s.edgeOrder), "faces", len(s.faceOrder))
}

// findAntipodal collects, for every edge, the vertices where a plane
// parallel to some blend of the edge's two faces touches the hull on the
// opposite side. The antipodal set is connected, so a flood fill from the
// extreme vertex finds it.
func (s *solver) findAntipodal() {
	total := 0
	for _, i := range s.edgeOrder {
		f1a, f1b := s.faceNormals(i)

		start, _ := s.h.AlongAxis(f1a)
		s.clearSearch()
		stack := []int{start}
		s.mark(start)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !s.isAntipodal(v, f1a, f1b) {
				continue
			}
			if s.h.Edges[i].Contains(v) {
				s.logger.Warn("edge is antipodal to its own vertex, skipping", "edge", s.h.Edges[i], "vertex", v)
				continue
			}

			s.antipodal[i] = append(s.antipodal[i], v)
			for _, next := range s.h.Adjacency[v] {
				if !s.seen(next) {
					s.mark(next)
					stack = append(stack, next)
				}
			}
		}

		if len(s.antipodal[i]) == 0 {
			s.logger.Debug("antipodal flood fill found nothing, scanning all vertices", "edge", i)
			for _, v := range s.h.Vertices {
				if s.isAntipodal(v, f1a, f1b) {
					s.antipodal[i] = append(s.antipodal[i], v)
				}
			}
		}
		total += len(s.antipodal[i])
	}
	s.logger.Debug("antipodal vertices", "total", total)
}

// findSidepodal collects, for every edge, the edges whose faces can be
// perpendicular sides of the same box. The sidepodal edges form a connected
// region, which a search seeded perpendicular to the first face covers.
func (s *solver) findSidepodal() {
	total := 0
	for _, i := range s.edgeOrder {
		f1a, f1b := s.faceNormals(i)

		start, _ := s.h.AlongAxis(geometry.Perpendicular(f1a).Mul(-1))
		s.clearSearch()
		stack := []int{start}

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if s.seen(v) {
				continue
			}
			s.mark(v)

			for _, next := range s.h.Adjacency[v] {
				if s.seen(next) {
					continue
				}
				edge := s.edge(v, next)
				f2a, f2b := s.faceNormals(edge)
				if !compatibleSides(f1a, f1b, f2a, f2b) {
					continue
				}

				if i <= edge {
					if !s.internal[edge] {
						s.compatible[i].add(edge)
					}
					s.markSidepodal(i, s.h.Edges[edge])
					if i != edge {
						if !s.internal[edge] {
							s.compatible[edge].add(i)
						}
						s.markSidepodal(edge, s.h.Edges[i])
					}
				}
				stack = append(stack, next)
			}
		}
		total += s.compatible[i].len()
	}
	s.logger.Debug("sidepodal edges", "total", total)
}

// searchEdgeTriples tries every box flush with three mutually sidepodal edges
func (s *solver) searchEdgeTriples() {
	for _, i := range s.edgeOrder {
		f1a, f1b := s.faceNormals(i)
		dead1 := f1a.Add(f1b).Mul(0.5)

		for _, j := range s.compatible[i].items {
			if j <= i {
				continue
			}
			f2a, f2b := s.faceNormals(j)
			dead2 := f2a.Add(f2b).Mul(0.5)

			dir := dead1.Cross(dead2).Normalize()
			if geometry.Equal(dir.Norm(), 0) {
				dir = f1a.Cross(f2a).Normalize()
				if geometry.Equal(dir.Norm(), 0) {
					dir = geometry.Perpendicular(f1a)
				}
			}

			hint1, _ := s.h.AlongAxis(dir.Mul(-1))
			hint2, _ := s.h.AlongAxis(dir)
			for _, v := range s.commonSidepodals(i, j, hint1, hint2) {
				s.tryThirdEdges(i, j, v)
			}
		}
	}
}

// commonSidepodals walks from the two extreme hints through vertices
// sidepodal to i until it reaches vertices sidepodal to both i and j, then
// expands over that common region.
func (s *solver) commonSidepodals(i, j, hint1, hint2 int) []int {
	var queue, common []int
	second := -1

	if s.isSidepodal(j, hint1) {
		common = append(common, hint1)
	} else {
		queue = append(queue, hint1)
	}
	if s.isSidepodal(j, hint2) {
		common = append(common, hint2)
	} else {
		second = hint2
	}

	s.clearSearch()
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		if s.seen(v) {
			continue
		}
		s.mark(v)

		for _, next := range s.h.Adjacency[v] {
			if s.seen(next) || !s.isSidepodal(i, next) {
				continue
			}
			if !s.isSidepodal(j, next) {
				queue = append(queue, next)
				continue
			}

			queue = nil
			if second != -1 {
				queue = append(queue, second)
				second = -1
				s.mark(next)
			}
			common = append(common, next)
			break
		}
	}

	s.clearSearch()
	var region []int
	for len(common) > 0 {
		v := common[len(common)-1]
		common = common[:len(common)-1]

		if s.seen(v) {
			continue
		}
		s.mark(v)
		region = append(region, v)

		for _, next := range s.h.Adjacency[v] {
			if s.internal[s.edge(v, next)] {
				continue
			}
			if s.isSidepodal(i, next) && s.isSidepodal(j, next) && !s.seen(next) {
				common = append(common, next)
			}
		}
	}
	return region
}

// tryThirdEdges evaluates the frames flush with edges i, j and every
// non-flat edge leaving v into the common sidepodal region.
func (s *solver) tryThirdEdges(i, j, v int) {
	f1a, f1b := s.faceNormals(i)
	f2a, f2b := s.faceNormals(j)

	for _, next := range s.h.Adjacency[v] {
		k := s.edge(v, next)
		if s.internal[k] || k <= j {
			continue
		}
		if !s.isSidepodal(i, next) || !s.isSidepodal(j, next) {
			continue
		}
		f3a, f3b := s.faceNormals(k)
		for _, frame := range s.edgeTripleFrames(f1a, f1b, f2a, f2b, f3a, f3b) {
			s.ev.try(frame[0], frame[1], frame[2])
		}
	}
}

// searchOpposingEdges tries every box with two opposite sides flush with
// an edge and one of its antipodal edges, and a third side flush with an
// edge sidepodal to the first.
func (s *solver) searchOpposingEdges() {
	var normals []geometry.Vector3
	for _, i := range s.edgeOrder {
		f1a, f1b := s.faceNormals(i)

		normals = normals[:0]
		for _, av := range s.antipodal[i] {
			for _, next := range s.h.Adjacency[av] {
				if next < av {
					continue
				}
				edge := s.edge(av, next)
				if edge < i || s.internal[edge] {
					continue
				}
				f2a, f2b := s.faceNormals(edge)
				if n, ok := s.opposingNormal(f1a, f1b, f2a, f2b); ok {
					normals = append(normals, n.Normalize())
				}
			}
		}

		for _, j := range s.compatible[i].items {
			f3a, f3b := s.faceNormals(j)
			for _, n1 := range normals {
				s.trySidepodalBlend(n1, f3a, f3b)
			}
		}
	}
}

// searchFaces tries every box flush with a face. The second side rests on
// an edge sidepodal to the face, one whose normal blend can be perpendicular
// to the face normal. Those edges form the silhouette of the hull seen along
// the normal, so internal edges take part here as well.
func (s *solver) searchFaces() {
	for _, f := range s.faceOrder {
		n1 := s.normals[f]
		for j := range s.h.Edges {
			f3a, f3b := s.faceNormals(j)
			s.trySidepodalBlend(n1, f3a, f3b)
		}
	}
}

// trySidepodalBlend completes the frame whose first axis is n1 with the
// blend of the two face normals of a sidepodal edge that is perpendicular to n1.
func (s *solver) trySidepodalBlend(n1, f3a, f3b geometry.Vector3) {
	v, ok := s.blend(n1, f3a, f3b)
	if !ok {
		return
	}
	n3 := f3b.Add(f3a.Sub(f3b).Mul(v)).Normalize()
	n2 := n3.Cross(n1).Normalize()
	s.ev.try(n1, n2, n3)
}

// edgeSet is an insertion-ordered set of edge indices
type edgeSet struct {
	items []int
	has   map[int]struct{}
}

func (e *edgeSet) add(edge int) {
	if e.has == nil {
		e.has = make(map[int]struct{})
	}
	if _, ok := e.has[edge]; ok {
		return
	}
	e.has[edge] = struct{}{}
	e.items = append(e.items, edge)
}

func (e *edgeSet) len() int {
	return len(e.items)
}
