package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Ask the server to refresh its resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			channel, err := app.dial(ctx, func([]byte) {})
			if err != nil {
				return fmt.Errorf("connect side channel: %w", err)
			}

			app.notifier.Attach(channel)
			app.controller.RequestRefresh(ctx)

			if detached := app.notifier.Detach(); detached != nil {
				if err := detached.Close(); err != nil {
					return fmt.Errorf("close side channel: %w", err)
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "refresh requested")
			return err
		},
	}
}
