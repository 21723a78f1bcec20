package ports

import "context"

// Channel is the outbound half of the side channel.
type Channel interface {
	Send(ctx context.Context, data []byte) error
	Close() error
}

// MessageHandler receives one whole inbound side-channel message.
type MessageHandler func(data []byte)
