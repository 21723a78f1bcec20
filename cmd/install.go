package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/spf13/cobra"
)

func newInstallCmd(app *app) *cobra.Command {
	var notify bool

	cmd := &cobra.Command{
		Use:   "install <packid> <url>",
		Short: "Download and activate one server pack",
		Long:  "install runs the same path as a sync announcement for a single pack: a pack already in the packs directory is activated, a missing one is downloaded first. The command waits for the download to finish.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.PackID(args[0])
			if err := id.Validate(); err != nil {
				return err
			}

			return runInstall(cmd, app, id, args[1], notify)
		},
	}

	cmd.Flags().BoolVar(&notify, "notify", false, "Connect to the side channel and send the refresh to the server")

	return cmd
}

func runInstall(cmd *cobra.Command, app *app, id domain.PackID, url string, notify bool) error {
	ctx := cmd.Context()

	if notify {
		channel, err := app.dial(ctx, func([]byte) {})
		if err != nil {
			return fmt.Errorf("connect side channel: %w", err)
		}
		app.notifier.Attach(channel)
		defer func() {
			if detached := app.notifier.Detach(); detached != nil {
				_ = detached.Close()
			}
		}()
	}

	if app.store.Exists(id) {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "activating %s (%s)\n", id, domain.PackStatePresent)
	} else {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "downloading %s\n", id)
	}

	started := app.now()
	app.installer.Install(ctx, id, url)
	app.notifier.Refresh(ctx)

	outcome, err := runInstallProgress(ctx, cmd.ErrOrStderr(), id, started, settleInstall(app, id, started))
	if err != nil {
		return fmt.Errorf("wait for download: %w", err)
	}
	if outcome.err != nil {
		return fmt.Errorf("wait for download: %w", outcome.err)
	}
	if outcome.state == domain.PackStateFailed {
		return fmt.Errorf("%w: pack %s from %s", domain.ErrDownloadFailed, id, url)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "installed %s at %s (%s)\n", id, app.store.LocationOf(id), outcome)
	return err
}

// settleInstall waits for the downloader and reports the state id ended in.
func settleInstall(app *app, id domain.PackID, started time.Time) func(context.Context) installOutcome {
	return func(ctx context.Context) installOutcome {
		outcome := installOutcome{state: domain.PackStateFailed}

		err := app.downloader.Wait(ctx)
		outcome.elapsed = app.now().Sub(started)
		if err != nil {
			outcome.err = err
			return outcome
		}
		if !app.store.Exists(id) {
			return outcome
		}

		outcome.state = domain.PackStatePresent
		if info, err := os.Stat(app.store.LocationOf(id)); err == nil {
			outcome.size = info.Size()
		}

		records, err := app.registry.Active(ctx)
		if err != nil {
			outcome.err = fmt.Errorf("read registry records: %w", err)
			return outcome
		}
		for _, record := range records {
			if record.ID == id {
				outcome.state = domain.PackStateRegistered
				break
			}
		}

		return outcome
	}
}
