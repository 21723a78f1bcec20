package application

import (
	"context"

	"github.com/bnema/serverpacks/internal/ports"
	"github.com/bnema/serverpacks/internal/protocol"
	"github.com/charmbracelet/log"
)

const (
	resultAccepted  = "accepted"
	resultMalformed = "malformed"
)

// SyncController handles inbound pack lists from the side channel.
type SyncController struct {
	installer ports.PackInstaller
	refresher ports.Refresher
	logger    *log.Logger
	metrics   ports.SyncMetrics
}

func NewSyncController(installer ports.PackInstaller, refresher ports.Refresher, logger *log.Logger, metrics ports.SyncMetrics) *SyncController {
	return &SyncController{
		installer: installer,
		refresher: refresher,
		logger:    loggerOrDiscard(logger).With("component", "sync"),
		metrics:   metricsOrNoop(metrics),
	}
}

// OnMessage decodes one sync message, dispatches every entry in order and then
// sends a single refresh. Downloads started by the dispatch may still be running
// when the refresh goes out. A malformed message is dropped without a refresh.
func (c *SyncController) OnMessage(ctx context.Context, data []byte) {
	msg, err := protocol.DecodeSync(data)
	if err != nil {
		c.logger.Warn("dropping sync message", "bytes", len(data), "error", err)
		c.metrics.IncSyncMessages(resultMalformed)
		return
	}
	c.metrics.IncSyncMessages(resultAccepted)

	for _, entry := range msg.Entries {
		c.logger.Info("got server pack", "pack", entry.ID, "url", entry.URL)
		c.installer.Install(ctx, entry.ID, entry.URL)
	}

	c.refresher.Refresh(ctx)
}

// Handler adapts OnMessage to a channel callback bound to ctx.
func (c *SyncController) Handler(ctx context.Context) ports.MessageHandler {
	return func(data []byte) {
		c.OnMessage(ctx, data)
	}
}

func (c *SyncController) RequestRefresh(ctx context.Context) {
	c.refresher.Refresh(ctx)
}
