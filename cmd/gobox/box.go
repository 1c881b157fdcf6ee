package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/pkg/hull"
	"github.com/philipparndt/gobox/pkg/obb"
	"github.com/philipparndt/gobox/pkg/pointcloud"
	"github.com/philipparndt/gobox/pkg/watcher"
)

var (
	boxStrategy string
	boxWatch    bool
	boxJSON     bool
)

var boxCmd = &cobra.Command{
	Use:   "box [file]",
	Short: "Fit a minimal oriented bounding box to a point cloud",
	Long: `Fit an enclosing box with one of the strategies: aabb, hull-faces,
brute-direction, brute-rotation or optimized (the exact search).
With --watch the box is recomputed whenever the file or, for OpenSCAD
sources, one of its dependencies changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runBox,
}

func init() {
	rootCmd.AddCommand(boxCmd)

	boxCmd.Flags().StringVarP(&boxStrategy, "strategy", "s", "", "Box strategy (default from config: optimized)")
	boxCmd.Flags().BoolVarP(&boxWatch, "watch", "w", false, "Recompute when the input changes")
	boxCmd.Flags().BoolVar(&boxJSON, "json", false, "Print JSON")
}

func runBox(cmd *cobra.Command, args []string) {
	filename := args[0]

	strategy := cfg.BoxStrategy()
	if boxStrategy != "" {
		s, err := obb.ParseStrategy(boxStrategy)
		if err != nil {
			fail("%v", err)
		}
		strategy = s
	}

	if !boxWatch {
		if err := computeBox(filename, strategy); err != nil {
			fail("%v", err)
		}
		return
	}

	if err := watchBox(filename, strategy); err != nil {
		fail("%v", err)
	}
}

func computeBox(filename string, strategy obb.Strategy) error {
	cloud, err := readCloud(filename)
	if err != nil {
		return err
	}
	h, err := hull.BuildHull3(cloud.Points, hull.WithLogger(logger))
	if err != nil {
		return err
	}

	box, err := obb.MinVolumeBox(h, strategy, append(cfg.Options(), obb.WithLogger(logger))...)
	if err != nil {
		return err
	}

	if boxJSON {
		printJSON(newBoxJSON(strategy.String(), box))
		return nil
	}
	printBox(fmt.Sprintf("Bounding Box (%s)", strategy), box)
	return nil
}

func watchBox(filename string, strategy obb.Strategy) error {
	if err := computeBox(filename, strategy); err != nil {
		logger.Error("box computation failed", "error", err)
	}

	fw, err := watcher.NewFileWatcher(cfg.Debounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	sources, err := pointcloud.Sources(filename)
	if err != nil {
		return err
	}

	var onChange func(string)
	onChange = func(changed string) {
		logger.Info("input changed", "file", changed)
		if updated, err := pointcloud.Sources(filename); err == nil {
			if err := fw.Replace(updated, onChange); err != nil {
				logger.Warn("failed to update watched files", "error", err)
			}
		}
		if err := computeBox(filename, strategy); err != nil {
			logger.Error("box computation failed", "error", err)
		}
	}

	if err := fw.Watch(sources, onChange); err != nil {
		return err
	}
	fw.Start()
	fmt.Fprintf(os.Stderr, "Watching %d file(s), press Ctrl+C to stop\n", len(sources))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}
