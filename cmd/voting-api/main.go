package main

import (
	"fmt"
	"os"

	"github.com/krakosik/voting-api/internal/dto"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = "dev"
	Commit  = "unknown"
)

var cfg dto.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voting-api",
	Short: "Voting API - named counters grouped by event",
	Long: `voting-api serves a small JSON API to create events, add named votes
to them and increment, decrement, reset or delete those votes.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyFlags(cmd); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		return cfg.ConfigureLogger()
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("voting-api version %s\nCommit: %s\n", Version, Commit))

	rootCmd.PersistentFlags().Int("port", 0, "HTTP port (env PORT)")
	rootCmd.PersistentFlags().String("driver", "", "Database driver, sqlite or postgres (env DATABASE_DRIVER)")
	rootCmd.PersistentFlags().String("database", "", "Database file or DSN (env DATABASE_URL)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (env LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// applyFlags loads the environment and lets explicitly set flags override it.
func applyFlags(cmd *cobra.Command) error {
	var err error
	cfg, err = dto.LoadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("driver") {
		cfg.DatabaseDriver, _ = flags.GetString("driver")
	}
	if flags.Changed("database") {
		cfg.DatabaseURL, _ = flags.GetString("database")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("events") {
		cfg.SeedEvents, _ = flags.GetInt("events")
	}

	logrus.Debugf("Using %s database %s", cfg.DatabaseDriver, cfg.DatabaseURL)
	return nil
}
