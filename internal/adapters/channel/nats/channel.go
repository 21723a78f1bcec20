package nats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"
)

const (
	syncSuffix    = "sync"
	refreshSuffix = "refresh"

	clientName     = "serverpacks"
	reconnectWait  = 2 * time.Second
	connectTimeout = 5 * time.Second
)

var (
	errEmptyName  = errors.New("empty channel name")
	errNilHandler = errors.New("nil message handler")
)

// SyncSubject is the subject the peer publishes sync messages on.
func SyncSubject(name string) string {
	return subject(name, syncSuffix)
}

// RefreshSubject is the subject refresh commands are published on.
func RefreshSubject(name string) string {
	return subject(name, refreshSuffix)
}

func subject(name, suffix string) string {
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		return ""
	}
	return name + "." + suffix
}

// Channel carries the side channel over NATS subjects derived from a channel
// name.
type Channel struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	refresh string
	logger  *log.Logger

	done      chan struct{}
	closeOnce sync.Once
}

var _ ports.Channel = (*Channel)(nil)

// Dial connects to the NATS server at url and subscribes handler to the sync
// subject of name.
func Dial(url, name string, handler ports.MessageHandler, logger *log.Logger) (*Channel, error) {
	if SyncSubject(name) == "" {
		return nil, errEmptyName
	}
	if handler == nil {
		return nil, errNilHandler
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Channel{
		refresh: RefreshSubject(name),
		logger:  logger.With("component", "nats", "channel", name),
		done:    make(chan struct{}),
	}

	opts := []nats.Option{
		nats.Name(clientName),
		nats.Timeout(connectTimeout),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(reconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			c.logger.Warn("disconnected from nats", "error", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			c.logger.Info("reconnected to nats", "url", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			c.logger.Info("nats connection closed")
			c.closeOnce.Do(func() { close(c.done) })
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	c.nc = nc

	sub, err := nc.Subscribe(SyncSubject(name), func(msg *nats.Msg) {
		handler(msg.Data)
	})
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("subscribe %s: %w", SyncSubject(name), err)
	}
	c.sub = sub

	return c, nil
}

// Done is closed once the connection is closed for good.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

func (c *Channel) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c == nil || c.nc == nil || c.nc.IsClosed() {
		return domain.ErrChannelUnavailable
	}

	if err := c.nc.Publish(c.refresh, data); err != nil {
		if errors.Is(err, nats.ErrConnectionClosed) {
			return domain.ErrChannelUnavailable
		}
		return fmt.Errorf("publish %s: %w", c.refresh, err)
	}

	return nil
}

// Close drains the subscription and closes the connection.
func (c *Channel) Close() error {
	if c == nil || c.nc == nil || c.nc.IsClosed() {
		return nil
	}

	var err error
	if c.sub != nil {
		err = c.sub.Unsubscribe()
	}
	c.nc.Close()

	return err
}
