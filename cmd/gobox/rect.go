package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/obb"
)

var rectJSONOutput bool

var rectCmd = &cobra.Command{
	Use:   "rect [file]",
	Short: "Fit the minimum-area rectangle to the XY projection of a cloud",
	Args:  cobra.ExactArgs(1),
	Run:   runRect,
}

func init() {
	rootCmd.AddCommand(rectCmd)

	rectCmd.Flags().BoolVar(&rectJSONOutput, "json", false, "Print JSON")
}

func runRect(cmd *cobra.Command, args []string) {
	cloud := loadCloud(args[0])
	h := buildHull2(cloud.Points2())

	rect, err := obb.MinAreaRectangle(h, obb.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	if rectJSONOutput {
		printJSON(newRectJSON(rect))
		return
	}

	heading("Minimum Area Rectangle")
	fmt.Printf("Area: %.6f square units\n", rect.Area())
	fmt.Printf("Center: %s\n", analysis.FormatVector2(rect.Center()))
	fmt.Printf("Extents: %s\n", analysis.FormatVector2(rect.Extents))
	fmt.Println(au.Bold("Corners:"))
	for _, c := range rect.Corners() {
		fmt.Printf("  %s\n", analysis.FormatVector2(c))
	}
}
