package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

const (
	defaultMaxConcurrentDownloads = 4
	defaultDownloadTimeout        = 5 * time.Minute

	resultSucceeded = "succeeded"
	resultInFlight  = "in_flight"
)

type DownloaderOptions struct {
	MaxConcurrent int
	Timeout       time.Duration
	Metrics       ports.SyncMetrics
}

// Downloader runs each fetch on its own goroutine. At most MaxConcurrent
// fetches transfer at once; the rest wait for a slot. A pack id is downloaded
// by at most one task at a time.
type Downloader struct {
	store   ports.PackStore
	source  ports.PackSource
	logger  *log.Logger
	metrics ports.SyncMetrics
	timeout time.Duration
	slots   *semaphore.Weighted

	mu       sync.Mutex
	inFlight map[domain.PackID]string
	wg       sync.WaitGroup
}

var _ ports.PackDownloader = (*Downloader)(nil)

func NewDownloader(store ports.PackStore, source ports.PackSource, logger *log.Logger, opts DownloaderOptions) *Downloader {
	maxConcurrent := opts.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentDownloads
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultDownloadTimeout
	}

	return &Downloader{
		store:    store,
		source:   source,
		logger:   loggerOrDiscard(logger).With("component", "downloader"),
		metrics:  metricsOrNoop(opts.Metrics),
		timeout:  timeout,
		slots:    semaphore.NewWeighted(int64(maxConcurrent)),
		inFlight: map[domain.PackID]string{},
	}
}

// Fetch starts downloading url into the store location of id and returns
// without waiting. onDone is called exactly once, on the download goroutine,
// after the archive is in place. It is never called when the download fails.
// Fetch returns false when a download of id is already running.
func (d *Downloader) Fetch(id domain.PackID, url string, onDone func(domain.PackID)) bool {
	task := domain.DownloadTask{
		ID:     uuid.NewString(),
		PackID: id,
		URL:    url,
		OnDone: onDone,
	}

	d.mu.Lock()
	if running, ok := d.inFlight[id]; ok {
		d.mu.Unlock()
		d.logger.Info("download already in flight", "pack", id, "task", running)
		d.metrics.IncDownloads(resultInFlight)
		return false
	}
	d.inFlight[id] = task.ID
	d.wg.Add(1)
	d.mu.Unlock()

	go d.run(task)
	return true
}

// InFlight reports whether a download of id is currently running.
func (d *Downloader) InFlight(id domain.PackID) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.inFlight[id]
	return ok
}

// Wait blocks until every started download has finished or ctx is done.
func (d *Downloader) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Downloader) run(task domain.DownloadTask) {
	defer d.wg.Done()

	logger := d.logger.With("pack", task.PackID, "task", task.ID)
	logger.Debug("download started", "url", task.URL)

	err := d.download(task)
	d.release(task.PackID)

	if err != nil {
		logger.Error("download failed", "url", task.URL, "error", fmt.Errorf("%w: %w", domain.ErrDownloadFailed, err))
		d.metrics.IncDownloads(resultFailed)
		return
	}

	logger.Info("download finished", "path", d.store.LocationOf(task.PackID))
	d.metrics.IncDownloads(resultSucceeded)

	if task.OnDone != nil {
		task.OnDone(task.PackID)
	}
}

func (d *Downloader) download(task domain.DownloadTask) error {
	// Waiting for a slot is not bounded by the transfer timeout.
	if err := d.slots.Acquire(context.Background(), 1); err != nil {
		return fmt.Errorf("acquire download slot: %w", err)
	}
	defer d.slots.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	body, err := d.source.Open(ctx, task.URL)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	if err := d.store.Materialize(ctx, task.PackID, body); err != nil {
		return fmt.Errorf("store pack: %w", err)
	}

	return nil
}

func (d *Downloader) release(id domain.PackID) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.inFlight, id)
}
