package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/hull"
)

var (
	hullPlanar bool
	hullJSON   bool
)

var hullCmd = &cobra.Command{
	Use:   "hull [file]",
	Short: "Compute the convex hull of a point cloud",
	Long:  "List the hull vertices and its triangles, or its edge loop with --2d.",
	Args:  cobra.ExactArgs(1),
	Run:   runHull,
}

func init() {
	rootCmd.AddCommand(hullCmd)

	hullCmd.Flags().BoolVar(&hullPlanar, "2d", false, "Hull the XY projection with quickhull")
	hullCmd.Flags().BoolVar(&hullJSON, "json", false, "Print JSON")
}

type hull2JSON struct {
	Vertices [][2]float64 `json:"vertices"`
	Edges    [][2]int     `json:"edges"`
}

type hull3JSON struct {
	Vertices  []vectorJSON `json:"vertices"`
	Triangles [][3]int     `json:"triangles"`
	Euler     int          `json:"euler"`
}

func runHull(cmd *cobra.Command, args []string) {
	cloud := loadCloud(args[0])
	if hullPlanar || cloud.Planar {
		printHull2(hull.Trim2(buildHull2(cloud.Points2())))
		return
	}
	printHull3(hull.Trim3(buildHull3(cloud.Points)))
}

func printHull2(h *hull.Hull2) {
	if hullJSON {
		out := hull2JSON{}
		for _, p := range h.Cloud {
			out.Vertices = append(out.Vertices, toJSON2(p))
		}
		for _, e := range h.Edges {
			out.Edges = append(out.Edges, [2]int{e.From, e.To})
		}
		printJSON(out)
		return
	}

	heading("Convex Hull (2D)")
	fmt.Printf("Vertices: %d\n", len(h.Vertices))
	fmt.Printf("Centroid: %s\n\n", analysis.FormatVector2(h.Centroid))
	for i, s := range h.Segments {
		fmt.Printf("%-6d %-25s -> %-25s %.6f\n", i+1, analysis.FormatVector2(s.A), analysis.FormatVector2(s.B), s.Length())
	}
}

func printHull3(h *hull.Hull3) {
	if hullJSON {
		out := hull3JSON{Euler: h.Euler()}
		for _, p := range h.Cloud {
			out.Vertices = append(out.Vertices, toJSON3(p))
		}
		for _, t := range h.Triangles {
			out.Triangles = append(out.Triangles, [3]int(t))
		}
		printJSON(out)
		return
	}

	heading("Convex Hull (3D)")
	fmt.Printf("Vertices: %d, Edges: %d, Faces: %d\n", len(h.Vertices), len(h.Edges), len(h.Triangles))
	fmt.Printf("Centroid: %s\n\n", analysis.FormatVector(h.Centroid))

	fmt.Println(au.Bold("Vertices:"))
	for i, p := range h.Cloud {
		fmt.Printf("  %-6d %s\n", i, analysis.FormatVector(p))
	}
	fmt.Println(au.Bold("Triangles:"))
	for i, t := range h.Triangles {
		fmt.Printf("  %-6d %d %d %d\n", i, t[0], t[1], t[2])
	}
}
