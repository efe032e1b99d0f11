package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/ucsbapi/internal/bootstrap"
	"github.com/yigit/ucsbapi/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}
		if cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("migrate requires the %q driver, configured driver is %q", config.DriverPostgres, cfg.Database.Driver)
		}

		database, err := bootstrap.ConnectDatabase(cmd.Context(), cfg, lgr)
		if err != nil {
			return err
		}
		defer database.Close()

		return bootstrap.RunMigrations(cmd.Context(), database, lgr)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
