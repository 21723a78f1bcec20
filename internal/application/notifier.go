package application

import (
	"context"
	"sync"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/bnema/serverpacks/internal/protocol"
	"github.com/charmbracelet/log"
)

const (
	resultSent    = "sent"
	resultDropped = "dropped"
	resultFailed  = "failed"
)

// Notifier owns the process-wide handle to the outbound side channel. The
// channel is attached once the connection is up and detached on teardown;
// Refresh is fire-and-forget and never queues.
type Notifier struct {
	mu      sync.RWMutex
	channel ports.Channel

	logger  *log.Logger
	metrics ports.SyncMetrics
}

var _ ports.Refresher = (*Notifier)(nil)

func NewNotifier(logger *log.Logger, metrics ports.SyncMetrics) *Notifier {
	return &Notifier{
		logger:  loggerOrDiscard(logger).With("component", "notifier"),
		metrics: metricsOrNoop(metrics),
	}
}

func (n *Notifier) Attach(channel ports.Channel) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.channel = channel
}

// Detach clears the channel handle and returns the previous one.
func (n *Notifier) Detach() ports.Channel {
	n.mu.Lock()
	defer n.mu.Unlock()

	previous := n.channel
	n.channel = nil
	return previous
}

func (n *Notifier) Available() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.channel != nil
}

// Refresh sends one refresh command to the peer.
func (n *Notifier) Refresh(ctx context.Context) {
	n.mu.RLock()
	channel := n.channel
	n.mu.RUnlock()

	if channel == nil {
		n.logger.Warn("refresh dropped", "error", domain.ErrChannelUnavailable)
		n.metrics.IncRefreshes(resultDropped)
		return
	}

	if err := channel.Send(ctx, protocol.EncodeRefresh()); err != nil {
		n.logger.Warn("refresh send failed", "error", err)
		n.metrics.IncRefreshes(resultFailed)
		return
	}

	n.logger.Debug("refresh sent")
	n.metrics.IncRefreshes(resultSent)
}
