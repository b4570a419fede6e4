// Package app implements the feedbackhub commands.
package app

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/feedback-hub/internal/config"
	"github.com/BruksfildServices01/feedback-hub/internal/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger

	rootCmd = &cobra.Command{
		Use:   "feedbackhub",
		Short: "FeedbackHub collects anonymous store reviews",
		Long: `FeedbackHub is a JSON API that collects anonymous customer reviews
for a catalog of stores, with an admin surface for moderation and settings.`,
		Args:          cobra.OnlyValidArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg = config.Load()
			if err := cfg.Validate(); err != nil {
				return err
			}
			log = logger.New(cfg.AppEnv, cfg.LogLevel)
			return nil
		},
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
