package main

import (
	"github.com/spf13/cobra"
	"github.com/yigit/ucsbapi/internal/pkg/logger"
	"github.com/yigit/ucsbapi/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	srv, err := server.NewServer(cmd.Context(), configPath)
	if err != nil {
		return err
	}

	// blocks until SIGINT/SIGTERM
	if err := srv.Run(); err != nil {
		return err
	}

	logger.Info().Msg("Application finished gracefully.")
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
