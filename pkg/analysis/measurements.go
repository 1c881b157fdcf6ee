package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
)

// EdgeInfo describes one hull edge
type EdgeInfo struct {
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Index  int
}

// HullStats summarizes a point cloud and its convex hull
type HullStats struct {
	Points        int
	Vertices      int
	Edges         int
	Faces         int
	Euler         int
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeHull measures the hull of a cloud
func AnalyzeHull(h *hull.Hull3) *HullStats {
	result := &HullStats{
		Points:      len(h.Cloud),
		Vertices:    len(h.Vertices),
		Edges:       len(h.Edges),
		Faces:       len(h.Triangles),
		Euler:       h.Euler(),
		BoundingBox: geometry.BoundingBoxOf(h.VertexPoints()),
		AllEdges:    make([]EdgeInfo, 0, len(h.Edges)),
	}
	result.Dimensions = result.BoundingBox.Size()

	for _, f := range h.Faces {
		result.SurfaceArea += f.Area()
	}

	minLength := math.MaxFloat64
	maxLength, total := 0.0, 0.0
	for i, e := range h.Edges {
		seg := geometry.Segment3{A: h.Cloud[e.From], B: h.Cloud[e.To]}
		length := seg.Length()
		result.AllEdges = append(result.AllEdges, EdgeInfo{Start: seg.A, End: seg.B, Length: length, Index: i})

		total += length
		minLength = math.Min(minLength, length)
		maxLength = math.Max(maxLength, length)
	}

	if len(result.AllEdges) > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = total / float64(len(result.AllEdges))
	}
	return result
}

// FindLongestEdges returns the N longest hull edges
func FindLongestEdges(result *HullStats, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	return edges[:min(count, len(edges))]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatVector2 formats a 2D vector
func FormatVector2(v geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", v.X, v.Y)
}
