package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gobox/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print an example configuration file with the default values",
	Long:  "Print a commented YAML configuration. Save it and pass it with --config to tune the solvers.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.Example())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
