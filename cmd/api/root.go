package main

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

var configPath string

// rootCmd serves the API when called without a subcommand
var rootCmd = &cobra.Command{
	Use:           "ucsbapi",
	Short:         "REST API for UCSB dining commons menu items, organizations and articles",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", filepath.Join("configs", "config.yaml"), "Path to the YAML config file")
}
