package main

import (
	"os"

	"github.com/yigit/ucsbapi/internal/pkg/logger"
)

func main() {
	if err := Execute(); err != nil {
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
