package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/pkg/analysis"
	"github.com/philipparndt/gobox/pkg/obb"
)

var compareJSONOutput bool

var compareCmd = &cobra.Command{
	Use:   "compare [file]",
	Short: "Run every box strategy and compare volumes and timings",
	Args:  cobra.ExactArgs(1),
	Run:   runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&compareJSONOutput, "json", false, "Print JSON")
}

func runCompare(cmd *cobra.Command, args []string) {
	cloud := loadCloud(args[0])
	h := buildHull3(cloud.Points)

	results := analysis.Compare(h, nil, append(cfg.Options(), obb.WithLogger(logger))...)
	if compareJSONOutput {
		printJSON(newCompareJSON(results))
		return
	}

	heading("Strategy Comparison")
	fmt.Printf("%-18s %-18s %-10s %-12s\n", "Strategy", "Volume", "Ratio", "Time")
	fmt.Println("------------------------------------------------------------")
	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("%-18s %s\n", r.Strategy, au.Red(r.Err.Error()))
			continue
		}
		fmt.Printf("%-18s %-18.6f %-10.4f %-12s\n", r.Strategy, r.Volume, r.Ratio, r.Elapsed.Round(time.Microsecond))
	}

	if best, ok := analysis.Best(results); ok {
		fmt.Println()
		fmt.Printf("Smallest: %s\n", au.Green(best.Strategy.String()))
	}
}
