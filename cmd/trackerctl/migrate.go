package main

import (
	"fmt"

	"github.com/SscSPs/money_tracker/internal/platform/config"
	"github.com/SscSPs/money_tracker/internal/platform/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down>",
		Short:     "Apply or roll back database migrations",
		Long:      `Runs every pending migration (up) or rolls all of them back (down) against PGSQL_URL.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.Up), string(database.Down)},
		RunE: func(_ *cobra.Command, args []string) error {
			if cfg.StorageDriver != config.StoragePostgres {
				return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", config.StoragePostgres, cfg.StorageDriver)
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("PGSQL_URL is not set")
			}
			return database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath, database.Direction(args[0]))
		},
	}
}
