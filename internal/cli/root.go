// Package cli implements the walletive command line: the interactive onboarding
// survey, read-only reports and the API server.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/walletive/backend/config"
)

// NewRootCommand builds the walletive command tree.
func NewRootCommand() *cobra.Command {
	var (
		configPath string
		dbPath     string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:   "walletive",
		Short: "Personal finance onboarding and dashboard",
		Long: `Walletive asks a short onboarding survey, stores the answers as income,
expense and savings goal rows, and reports a financial summary.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides DATABASE_PATH)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	load := func() (*config.Config, error) {
		if configPath != "" {
			if err := os.Setenv("WALLETIVE_CONFIG", configPath); err != nil {
				return nil, err
			}
		}
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		if dbPath != "" {
			cfg.Database.Driver = config.DriverSQLite
			cfg.Database.Path = dbPath
		}
		return cfg, nil
	}

	rootCmd.AddCommand(
		newServeCommand(load),
		newSurveyCommand(load),
		newSummaryCommand(load),
		newStatusCommand(load),
	)

	return rootCmd
}

// configLoader resolves configuration after flags are parsed.
type configLoader func() (*config.Config, error)
