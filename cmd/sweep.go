package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	config "workbase.com/workbase/internal/configs"
	repository "workbase.com/workbase/internal/repositories"
	"workbase.com/workbase/internal/services"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Delete expired sticky notes once and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadEnv()

		cfg := config.Load()
		config.SetupLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)

		database := config.NewDatabaseClient(cfg.DatabaseDriver, cfg.DatabaseDSN)
		stickies := services.NewStickyNoteService(repository.NewStickyNoteRepository(database))

		removed := services.NewStickySweeper(stickies, 0).SweepOnce(cmd.Context())
		log.Info().Int64("removed", removed).Msg("sweep finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
