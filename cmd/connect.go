package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bnema/serverpacks/internal/adapters/metrics/prom"
	"github.com/bnema/serverpacks/internal/application"
	"github.com/spf13/cobra"
)

const (
	shutdownTimeout   = 30 * time.Second
	metricsReadHeader = 5 * time.Second
)

func newConnectCmd(app *app) *cobra.Command {
	var withConsole bool

	cmd := &cobra.Command{
		Use:   "connect",
		Short: "Connect to the server side channel and sync announced packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runConnect(ctx, cmd, app, withConsole)
		},
	}

	cmd.Flags().BoolVar(&withConsole, "console", false, "Read operator commands from stdin")

	return cmd
}

func runConnect(ctx context.Context, cmd *cobra.Command, app *app, withConsole bool) error {
	stopMetrics, err := serveMetrics(app)
	if err != nil {
		return err
	}
	defer stopMetrics()

	// Inbound messages are held until the channel is attached.
	attached := make(chan struct{})
	handle := app.controller.Handler(ctx)
	channel, err := app.dial(ctx, func(data []byte) {
		<-attached
		handle(data)
	})
	if err != nil {
		return fmt.Errorf("connect side channel: %w", err)
	}

	app.notifier.Attach(channel)
	close(attached)
	app.logger.Info("side channel connected", "kind", app.cfg.Channel.Kind, "url", app.cfg.Channel.URL)

	if withConsole {
		console := application.NewConsole(app.installer, app.notifier, cmd.OutOrStdout())
		go readConsole(ctx, cmd.InOrStdin(), console)
	}

	select {
	case <-ctx.Done():
		app.logger.Info("shutting down")
	case <-channel.Done():
		app.logger.Info("side channel closed")
	}

	if detached := app.notifier.Detach(); detached != nil {
		if err := detached.Close(); err != nil {
			app.logger.Warn("close side channel", "error", err)
		}
	}

	waitCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.downloader.Wait(waitCtx); err != nil {
		return fmt.Errorf("wait for downloads: %w", err)
	}

	return nil
}

// readConsole feeds operator lines to console until in reaches EOF. Lines read
// after ctx is done are discarded. A read blocked on stdin is not interrupted by
// shutdown; the goroutine ends with the process.
func readConsole(ctx context.Context, in io.Reader, console *application.Console) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if !console.HandleInput(ctx, line) {
			console.PrintUsage()
		}
	}
}

// serveMetrics starts the /metrics endpoint when metrics.addr is set and
// returns a function that stops it.
func serveMetrics(app *app) (func(), error) {
	if app.cfg.MetricsAddr == "" {
		return func() {}, nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", prom.Handler(app.metricsGather))

	listener, err := net.Listen("tcp", app.cfg.MetricsAddr)
	if err != nil {
		return nil, fmt.Errorf("listen metrics %s: %w", app.cfg.MetricsAddr, err)
	}

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeader,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("metrics server failed", "addr", app.cfg.MetricsAddr, "error", err)
		}
	}()
	app.logger.Info("serving metrics", "addr", listener.Addr().String())

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), metricsReadHeader)
		defer cancel()
		_ = server.Shutdown(ctx)
	}, nil
}
