package hull

import (
	"github.com/pkg/errors"

	"github.com/philipparndt/gobox/pkg/geometry"
)

// Hull3 is the triangulated convex hull of a spatial point cloud. All
// derived topology is computed once when the hull is built and never
// changes afterwards, so a hull can be shared between goroutines.
type Hull3 struct {
	Cloud     []geometry.Vector3
	Triangles []geometry.IndexTriangle

	// Faces holds the resolved triangle of each entry of Triangles
	Faces []geometry.Triangle
	// Vertices lists the cloud indices referenced by Triangles in first-seen order
	Vertices []int
	// Edges lists every undirected hull edge once, in the direction it was first met
	Edges []geometry.OrderedEdge
	// Adjacency holds the neighbours of every cloud index (empty for interior points)
	Adjacency [][]int
	// EdgeFaces holds the two triangles sharing each entry of Edges
	EdgeFaces []FacePair
	Centroid  geometry.Vector3

	edgeIndex map[geometry.UnorderedEdge]int
}

// FacePair names the two triangles incident to an edge. Second is -1 when
// the surface is open along the edge.
type FacePair struct {
	First, Second int
}

// Empty reports whether the hull has no triangles
func (h *Hull3) Empty() bool {
	return len(h.Triangles) == 0
}

// BuildHull3 computes the convex hull of the points by randomized
// incremental construction. Points are inserted in index order.
func BuildHull3(points []geometry.Vector3, opts ...Option) (*Hull3, error) {
	s := newSettings(opts)

	cloud := make([]geometry.Vector3, len(points))
	copy(cloud, points)

	b := &builder3{cloud: cloud}
	if err := b.bootstrap(); err != nil {
		s.logger.Warn("cannot build 3D hull", "points", len(cloud), "error", err)
		return &Hull3{Cloud: cloud}, err
	}
	b.run()

	return newHull3(cloud, b.triangles()), nil
}

type facet struct {
	tri   geometry.IndexTriangle
	plane geometry.Triangle
	alive bool
	// conflicts lists the points in front of the facet
	conflicts []int
}

type builder3 struct {
	cloud  []geometry.Vector3
	facets []facet

	// visible maps a pending point to the ids of the facets it sees
	visible map[int]map[int]struct{}
	// order lists pending points by ascending index
	order []int
}

func (b *builder3) bootstrap() error {
	n := len(b.cloud)
	if n < 4 {
		return errors.Wrapf(ErrInsufficientPoints, "need 4 points, got %d", n)
	}

	p1 := 0
	p2 := -1
	for i := p1 + 1; i < n; i++ {
		if !geometry.EqualVectors(b.cloud[i], b.cloud[p1]) {
			p2 = i
			break
		}
	}
	if p2 < 0 {
		return errors.Wrap(ErrDegenerate, "all points coincide")
	}

	var skipped []int
	line := geometry.Segment3{A: b.cloud[p1], B: b.cloud[p2]}
	p3 := -1
	for i := p2 + 1; i < n; i++ {
		if line.IsColinear(b.cloud[i], geometry.DefaultTolerance) {
			skipped = append(skipped, i)
			continue
		}
		p3 = i
		break
	}
	if p3 < 0 {
		return errors.Wrap(ErrDegenerate, "all points are colinear")
	}

	plane := geometry.NewTriangle(b.cloud[p1], b.cloud[p2], b.cloud[p3])
	p4 := -1
	for i := p3 + 1; i < n; i++ {
		if plane.Side(b.cloud[i]) == 0 {
			skipped = append(skipped, i)
			continue
		}
		p4 = i
		break
	}
	if p4 < 0 {
		return errors.Wrap(ErrDegenerate, "all points are coplanar")
	}

	center := geometry.Centroid([]geometry.Vector3{b.cloud[p1], b.cloud[p2], b.cloud[p3], b.cloud[p4]})
	tetra := [4]geometry.IndexTriangle{
		{p3, p2, p1},
		{p1, p2, p4},
		{p2, p3, p4},
		{p3, p1, p4},
	}

	b.visible = make(map[int]map[int]struct{})
	var ids []int
	for _, t := range tetra {
		if t.Resolve(b.cloud).Side(center) != -1 {
			t = t.Reversed()
		}
		ids = append(ids, b.addFacet(t))
	}

	candidates := append(skipped, seq(p4+1, n)...)
	for _, id := range ids {
		b.assign(id, candidates)
	}

	for i := 0; i < n; i++ {
		if _, ok := b.visible[i]; ok {
			b.order = append(b.order, i)
		}
	}
	return nil
}

func (b *builder3) run() {
	for _, p := range b.order {
		seen, ok := b.visible[p]
		if !ok {
			continue
		}
		delete(b.visible, p)
		if len(seen) == 0 {
			continue
		}

		ids := sortedKeys(seen)
		horizon := b.horizon(ids)

		for _, id := range ids {
			f := &b.facets[id]
			f.alive = false
			for _, q := range f.conflicts {
				if set, ok := b.visible[q]; ok {
					delete(set, id)
				}
			}
			f.conflicts = nil
		}

		pending := b.pending(p)
		for _, e := range horizon {
			id := b.addFacet(geometry.IndexTriangle{e.From, e.To, p})
			b.assign(id, pending)
		}
	}
}

// horizon returns the boundary of the region formed by the given facets,
// keeping the direction each edge has in its facet.
func (b *builder3) horizon(ids []int) []geometry.OrderedEdge {
	directed := make(map[geometry.UnorderedEdge]geometry.OrderedEdge)
	var order []geometry.UnorderedEdge

	for _, id := range ids {
		for _, e := range b.facets[id].tri.Edges() {
			key := e.Unordered()
			if _, ok := directed[key]; ok {
				delete(directed, key)
				continue
			}
			directed[key] = e
			order = append(order, key)
		}
	}

	var edges []geometry.OrderedEdge
	for _, key := range order {
		if e, ok := directed[key]; ok {
			edges = append(edges, e)
			delete(directed, key)
		}
	}
	return edges
}

// pending lists the points still waiting to be inserted, after p
func (b *builder3) pending(p int) []int {
	var out []int
	for _, q := range b.order {
		if q <= p {
			continue
		}
		if _, ok := b.visible[q]; ok {
			out = append(out, q)
		}
	}
	return out
}

func (b *builder3) addFacet(tri geometry.IndexTriangle) int {
	b.facets = append(b.facets, facet{
		tri:   tri,
		plane: tri.Resolve(b.cloud),
		alive: true,
	})
	return len(b.facets) - 1
}

// assign records a conflict for every candidate strictly in front of the facet
func (b *builder3) assign(id int, candidates []int) {
	f := &b.facets[id]
	for _, q := range candidates {
		if f.plane.Side(b.cloud[q]) != 1 {
			continue
		}
		f.conflicts = append(f.conflicts, q)
		set, ok := b.visible[q]
		if !ok {
			set = make(map[int]struct{})
			b.visible[q] = set
		}
		set[id] = struct{}{}
	}
}

func (b *builder3) triangles() []geometry.IndexTriangle {
	var out []geometry.IndexTriangle
	for _, f := range b.facets {
		if f.alive {
			out = append(out, f.tri)
		}
	}
	return out
}
