// Package main is the entry point for the Wayfarer API server and its
// maintenance commands. Its sole responsibility is wiring dependencies
// together. No business logic belongs here.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkordes/wayfarer/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. Running the binary with no subcommand
// starts the server.
func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "wayfarer",
		Short: "Wayfarer travel journal API",
		Long: `wayfarer serves the travel journal API: trips, journal entries,
gear, the pre-trip checklist, vehicle, assets, gallery and profile.
Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to read before the environment")

	loadConfig := func() (config.Config, *slog.Logger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return config.Config{}, nil, err
		}
		logger := newLogger(cfg.LogLevel)
		slog.SetDefault(logger)
		return cfg, logger, nil
	}

	serve := newServeCmd(loadConfig)
	root.RunE = serve.RunE
	root.AddCommand(
		serve,
		newMigrateCmd(loadConfig),
		newChecklistCmd(loadConfig),
		newDistanceCmd(),
	)
	return root
}

// newLogger returns the JSON slog logger at the given level.
// log/slog is the stdlib structured logger introduced in Go 1.21.
// JSON handler writes machine-readable output suitable for log aggregators.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

type configLoader func() (config.Config, *slog.Logger, error)
