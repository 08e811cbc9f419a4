package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "workbase.com/workbase/internal/configs"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadEnv()

		cfg := config.Load()
		config.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

		db, err := config.OpenDatabase(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if err := config.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}

		log.Info().Str("driver", cfg.DatabaseDriver).Msg("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
