// cmd_migrate.go
package main

import (
	"errors"

	"github.com/ViniZap4/groupboard/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the Postgres schema for the group table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DatabaseURL == "" {
			return errors.New("GROUPBOARD_DATABASE_URL is not set")
		}

		version, err := database.Migrate(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		logger.Info().Uint("version", version).Msg("Database schema up to date")
		return nil
	},
}
