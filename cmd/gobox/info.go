package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/pkg/analysis"
)

var infoEdges int

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display point cloud and convex hull statistics",
	Long:  "Show the cloud size, the hull's vertex, edge and face counts, its bounds, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().IntVarP(&infoEdges, "edges", "n", 0, "Also list the N longest hull edges")
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	cloud := loadCloud(filename)
	h := buildHull3(cloud.Points)
	result := analysis.AnalyzeHull(h)

	heading("Point Cloud Information")
	fmt.Printf("File: %s\n", filename)
	if cloud.Planar {
		fmt.Println("Source is planar; use 'gobox hull --2d' or 'gobox rect'.")
	}
	if cloud.Mesh != nil {
		fmt.Printf("Mesh Facets: %d\n", cloud.Mesh.FacetCount())
		fmt.Printf("Mesh Surface Area: %.6f square units\n", cloud.Mesh.SurfaceArea())
	}
	fmt.Println()

	fmt.Println(au.Bold("Hull Statistics:"))
	fmt.Printf("  Points: %d\n", result.Points)
	fmt.Printf("  Vertices: %d\n", result.Vertices)
	fmt.Printf("  Edges: %d\n", result.Edges)
	fmt.Printf("  Faces: %d\n", result.Faces)
	fmt.Printf("  Euler characteristic: %d\n", result.Euler)
	fmt.Printf("  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Println(au.Bold("Bounding Box:"))
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n", analysis.FormatVector(result.BoundingBox.Center()))
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n\n", result.BoundingBox.Volume())

	fmt.Println(au.Bold("Edge Lengths:"))
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)

	if infoEdges <= 0 {
		return
	}
	fmt.Println()
	fmt.Printf("%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Println("-----------------------------------------------------------------------------------------------------------")
	for i, edge := range analysis.FindLongestEdges(result, infoEdges) {
		fmt.Printf("%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
