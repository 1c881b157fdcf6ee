package stl

import (
	"github.com/philipparndt/gobox/pkg/geometry"
)

// Facet is one triangle of an STL file with the normal stored alongside it
type Facet struct {
	Normal     geometry.Vector3
	V1, V2, V3 geometry.Vector3
}

// Model is the facet list of an STL file
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

func (m *Model) AddFacet(f Facet) {
	m.Facets = append(m.Facets, f)
}

func (m *Model) FacetCount() int {
	return len(m.Facets)
}

// Vertices returns the distinct facet corners in file order
func (m *Model) Vertices() []geometry.Vector3 {
	seen := make(map[geometry.Vector3]struct{}, len(m.Facets))
	points := make([]geometry.Vector3, 0, len(m.Facets))
	for _, f := range m.Facets {
		for _, v := range [3]geometry.Vector3{f.V1, f.V2, f.V3} {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			points = append(points, v)
		}
	}
	return points
}

// SurfaceArea sums the facet areas
func (m *Model) SurfaceArea() float64 {
	total := 0.0
	for _, f := range m.Facets {
		total += f.V2.Sub(f.V1).Cross(f.V3.Sub(f.V1)).Norm() / 2
	}
	return total
}
