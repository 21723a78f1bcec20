package application

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

type recordingChannel struct {
	mu     sync.Mutex
	sent   [][]byte
	err    error
	onSend func()
}

func (c *recordingChannel) Send(_ context.Context, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onSend != nil {
		c.onSend()
	}
	if c.err != nil {
		return c.err
	}
	c.sent = append(c.sent, append([]byte(nil), data...))
	return nil
}

func (c *recordingChannel) Close() error {
	return nil
}

func (c *recordingChannel) Sent() [][]byte {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([][]byte(nil), c.sent...)
}

type recordingRegistrar struct {
	mu     sync.Mutex
	paths  []string
	active map[string]bool
	reject error
}

func newRecordingRegistrar() *recordingRegistrar {
	return &recordingRegistrar{active: map[string]bool{}}
}

func (r *recordingRegistrar) AddPack(_ context.Context, path string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.paths = append(r.paths, path)
	if r.reject != nil {
		return false, r.reject
	}
	if r.active[path] {
		return false, nil
	}
	r.active[path] = true
	return true, nil
}

func (r *recordingRegistrar) Paths() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.paths...)
}

// gatedSource serves url -> body pairs. Opening a URL blocks until its gate is
// released when gated is set.
type gatedSource struct {
	bodies map[string]string
	gated  bool

	mu      sync.Mutex
	gates   map[string]chan struct{}
	opened  []string
	active  atomic.Int32
	maxSeen atomic.Int32
}

func newGatedSource(bodies map[string]string, gated bool) *gatedSource {
	return &gatedSource{bodies: bodies, gated: gated, gates: map[string]chan struct{}{}}
}

func (s *gatedSource) gate(url string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	gate, ok := s.gates[url]
	if !ok {
		gate = make(chan struct{})
		s.gates[url] = gate
	}
	return gate
}

func (s *gatedSource) Release(url string) {
	close(s.gate(url))
}

func (s *gatedSource) Open(ctx context.Context, url string) (io.ReadCloser, error) {
	current := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		seen := s.maxSeen.Load()
		if current <= seen || s.maxSeen.CompareAndSwap(seen, current) {
			break
		}
	}

	s.mu.Lock()
	s.opened = append(s.opened, url)
	s.mu.Unlock()

	if s.gated {
		select {
		case <-s.gate(url):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	body, ok := s.bodies[url]
	if !ok {
		return nil, errors.New("unexpected status 404")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (s *gatedSource) Opened() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.opened...)
}

func waitDownloads(t *testing.T, d *Downloader) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, d.Wait(ctx))
}
