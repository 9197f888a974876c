package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"WahalaIndex/internal/app"
	"WahalaIndex/internal/config"
	"WahalaIndex/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "wahala",
		Short: "Measure how chaotic the Nigerian news cycle feels today",
		Long: `Wahala Index scrapes headlines from Nigerian outlets, asks a model for a
1–5 severity score, and summarizes the day by category heat and topics.

Examples:
  # Today's reading in the default tone
  wahala analyze

  # Pidgin tone, no meme, and post the result to Telegram
  wahala analyze --tone Pidgin --no-meme --publish

  # Last 14 stored scores
  wahala history --days 14`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file (default $WAHALA_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(newAnalyzeCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))

	return rootCmd
}

// build loads configuration and wires the application for one command.
func (o *rootOptions) build(ctx context.Context) (*app.Application, *slog.Logger, error) {
	var cfg config.Config
	if o.configPath != "" {
		cfg = config.LoadFrom(o.configPath)
	} else {
		cfg = config.Load()
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	logger := logging.New(cfg.Logging.Level)
	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return application, logger, nil
}
