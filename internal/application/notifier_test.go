package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/bnema/serverpacks/internal/ports"
	"github.com/bnema/serverpacks/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
)

type refreshCounter struct {
	ports.NoopMetrics

	mu      sync.Mutex
	results []string
}

func (c *refreshCounter) IncRefreshes(result string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = append(c.results, result)
}

func (c *refreshCounter) Results() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.results...)
}

func TestNotifierDropsRefreshWithoutChannel(t *testing.T) {
	notifier := NewNotifier(testLogger(), nil)

	assert.False(t, notifier.Available())
	assert.NotPanics(t, func() { notifier.Refresh(context.Background()) })
}

func TestNotifierSendsRefreshCommand(t *testing.T) {
	channel := &recordingChannel{}
	notifier := NewNotifier(testLogger(), nil)
	notifier.Attach(channel)

	notifier.Refresh(context.Background())

	assert.Equal(t, [][]byte{{0x01}}, channel.Sent())
}

func TestNotifierDetachStopsSending(t *testing.T) {
	channel := &recordingChannel{}
	notifier := NewNotifier(testLogger(), nil)
	notifier.Attach(channel)

	previous := notifier.Detach()
	notifier.Refresh(context.Background())

	assert.Same(t, channel, previous)
	assert.Empty(t, channel.Sent())
}

func TestNotifierSendFailureIsNotRetried(t *testing.T) {
	attempts := 0
	channel := &recordingChannel{err: errors.New("broken pipe"), onSend: func() { attempts++ }}
	notifier := NewNotifier(testLogger(), nil)
	notifier.Attach(channel)

	notifier.Refresh(context.Background())

	assert.Equal(t, 1, attempts)
	assert.Empty(t, channel.Sent())
}

func TestNotifierConcurrentRefreshes(t *testing.T) {
	channel := &recordingChannel{}
	notifier := NewNotifier(testLogger(), nil)
	notifier.Attach(channel)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			notifier.Refresh(context.Background())
		}()
	}
	wg.Wait()

	assert.Len(t, channel.Sent(), 16)
}

func TestNotifierPassesContextToChannel(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "sync")

	channel := mocks.NewMockChannel(t)
	channel.EXPECT().Send(ctx, []byte{0x01}).Return(nil).Once()

	notifier := NewNotifier(testLogger(), nil)
	notifier.Attach(channel)
	notifier.Refresh(ctx)
}

func TestNotifierCountsRefreshResults(t *testing.T) {
	metrics := &refreshCounter{}
	notifier := NewNotifier(testLogger(), metrics)

	notifier.Refresh(context.Background())

	channel := mocks.NewMockChannel(t)
	channel.EXPECT().Send(mockAnyContext(), []byte{0x01}).Return(nil).Once()
	notifier.Attach(channel)
	notifier.Refresh(context.Background())

	failing := mocks.NewMockChannel(t)
	failing.EXPECT().Send(mockAnyContext(), []byte{0x01}).Return(errors.New("closed")).Once()
	notifier.Attach(failing)
	notifier.Refresh(context.Background())

	assert.Equal(t, []string{"dropped", "sent", "failed"}, metrics.Results())
}
