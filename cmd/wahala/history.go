package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"WahalaIndex/internal/render"
)

func newHistoryCmd(root *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show stored daily scores and the latest change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			application, _, err := root.build(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			rows, delta, err := application.History(ctx, days)
			if err != nil {
				return fmt.Errorf("history: %w", err)
			}
			return render.History(cmd.OutOrStdout(), rows, delta)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "number of most recent days to show")

	return cmd
}
