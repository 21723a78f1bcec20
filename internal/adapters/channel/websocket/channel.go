package websocket

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	closeWriteTimeout       = time.Second
)

// Channel is a side-channel client over a single websocket connection. Each
// binary frame is one message.
type Channel struct {
	conn    *websocket.Conn
	handler ports.MessageHandler
	logger  *log.Logger

	writeMu sync.Mutex
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

var _ ports.Channel = (*Channel)(nil)

// Dial connects to url and starts delivering inbound binary frames to handler.
func Dial(ctx context.Context, url string, handler ports.MessageHandler, logger *log.Logger) (*Channel, error) {
	if handler == nil {
		return nil, errors.New("nil message handler")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	dialer := websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: defaultHandshakeTimeout,
	}

	conn, resp, err := dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("dial side channel %s: %w", url, err)
	}

	c := &Channel{
		conn:    conn,
		handler: handler,
		logger:  logger.With("component", "websocket", "url", url),
		done:    make(chan struct{}),
	}

	go c.readLoop()

	return c, nil
}

// Done is closed once the connection stops reading.
func (c *Channel) Done() <-chan struct{} {
	return c.done
}

func (c *Channel) Send(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.closed {
		return domain.ErrChannelUnavailable
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		defer func() { _ = c.conn.SetWriteDeadline(time.Time{}) }()
	}

	if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		return fmt.Errorf("write side channel frame: %w", err)
	}

	return nil
}

// Close sends a close frame and tears down the connection.
func (c *Channel) Close() error {
	c.writeMu.Lock()
	if c.closed {
		c.writeMu.Unlock()
		return nil
	}
	c.closed = true
	_ = c.conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(closeWriteTimeout),
	)
	c.writeMu.Unlock()

	err := c.conn.Close()
	<-c.done

	return err
}

func (c *Channel) readLoop() {
	defer c.finish()

	for {
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info("side channel closed by peer")
			} else if !c.isClosed() {
				c.logger.Warn("side channel read failed", "error", err)
			}
			return
		}

		if messageType != websocket.BinaryMessage {
			c.logger.Debug("ignoring non-binary frame", "type", messageType)
			continue
		}

		c.handler(data)
	}
}

func (c *Channel) finish() {
	c.writeMu.Lock()
	c.closed = true
	c.writeMu.Unlock()

	c.closeOnce.Do(func() { close(c.done) })
}

func (c *Channel) isClosed() bool {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	return c.closed
}
