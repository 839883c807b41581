// Package cmd implements the news-collector CLI.
package cmd

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"news-collector/config"
	"news-collector/logger"
)

var (
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "news-collector",
	Short: "Collect and normalize News First articles",
	Long: `news-collector queries the News First category pagination API,
strips HTML from article bodies, normalizes timestamps, and writes the
results as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real environments set variables directly.
		_ = godotenv.Load()

		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		log = logger.Init()

		return nil
	},
}

// SetVersion sets the CLI version displayed by --version.
func SetVersion(version string) {
	rootCmd.Version = version
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
