package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"WahalaIndex/internal/domain"
	"WahalaIndex/internal/render"
	"WahalaIndex/internal/usecase"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var (
		tone    string
		noMeme  bool
		publish bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch today's headlines and compute the Wahala Index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			application, logger, err := root.build(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			opts := usecase.AnalyzeOptions{WithMeme: !noMeme}
			if tone != "" {
				opts.Tone = domain.ParseTone(tone)
			}

			reading, err := application.Analyze(ctx, opts)
			if err != nil {
				return fmt.Errorf("analyze: %w", err)
			}
			logger.Debug("reading ready", "run_id", reading.RunID, "status", reading.Status)

			if err := render.Reading(cmd.OutOrStdout(), reading); err != nil {
				return err
			}

			if publish {
				application.Publish(ctx, reading)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tone, "tone", "t", "", "caption tone: Classic, Gen-Z or Pidgin (default from config)")
	cmd.Flags().BoolVar(&noMeme, "no-meme", false, "skip the meme of the day")
	cmd.Flags().BoolVar(&publish, "publish", false, "post a scored reading to Telegram")

	return cmd
}
