package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/internal/config"
	"github.com/philipparndt/gobox/pkg/geometry"
	"github.com/philipparndt/gobox/pkg/hull"
	"github.com/philipparndt/gobox/pkg/pointcloud"
	"github.com/philipparndt/gobox/version"
)

var (
	configFile string
	logLevel   string
	noColor    bool
	reduceFlag float64

	cfg    = config.Default()
	logger = slog.New(slog.DiscardHandler)
	au     = aurora.NewAurora(true)
)

var rootCmd = &cobra.Command{
	Use:   "gobox",
	Short: "Convex hulls and minimal bounding boxes of point clouds",
	Long: `gobox computes convex hulls of 2D and 3D point clouds and fits minimal
enclosing rectangles and oriented boxes to them. It reads plain coordinate
lists, STL meshes, OpenSCAD sources and SVG polygons.`,
	Version:          version.GetFullVersion(),
	PersistentPreRun: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Float64Var(&reduceFlag, "reduce", 0, "Drop points closer than this to a later point before hulling (0 disables)")
}

func setup(cmd *cobra.Command, args []string) {
	au = aurora.NewAurora(!noColor)

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fail("invalid log level %q", logLevel)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	loaded, err := config.Load(configFile)
	if err != nil {
		fail("%v", err)
	}
	cfg = loaded
	if cmd.Flags().Changed("reduce") {
		cfg.Reduce = reduceFlag
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func heading(title string) {
	fmt.Println(au.Bold(au.Cyan(title)))
	fmt.Println("====================")
}

// readCloud reads the file and applies the configured reduction
func readCloud(path string) (*pointcloud.Cloud, error) {
	cloud, err := pointcloud.Load(context.Background(), path)
	if err != nil {
		return nil, err
	}
	if cfg.Reduce > 0 {
		before := len(cloud.Points)
		cloud.Points = pointcloud.Reduce(cloud.Points, cfg.Reduce)
		logger.Info("reduced cloud", "before", before, "after", len(cloud.Points), "distance", cfg.Reduce)
	}
	return cloud, nil
}

func loadCloud(path string) *pointcloud.Cloud {
	cloud, err := readCloud(path)
	if err != nil {
		fail("%v", err)
	}
	return cloud
}

func buildHull3(points []geometry.Vector3) *hull.Hull3 {
	h, err := hull.BuildHull3(points, hull.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}
	return h
}

func buildHull2(points []geometry.Vector2) *hull.Hull2 {
	h, err := hull.BuildHull2(points, hull.WithLogger(logger))
	if err != nil {
		fail("%v", err)
	}
	return h
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
