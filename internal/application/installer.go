package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
)

const (
	resultAdded     = "added"
	resultDuplicate = "duplicate"
	resultRejected  = "rejected"
)

// Installer decides between reusing a materialized pack and downloading it,
// then hands the archive to the registrar.
//
// A pack that is already present is registered synchronously and the refresh is
// left to the caller, which sends one per batch. A pack that has to be
// downloaded is registered from the download goroutine, which then sends its
// own refresh.
type Installer struct {
	store      ports.PackStore
	registrar  ports.PackRegistrar
	downloader ports.PackDownloader
	refresher  ports.Refresher
	logger     *log.Logger
	metrics    ports.SyncMetrics
}

var _ ports.PackInstaller = (*Installer)(nil)

func NewInstaller(
	store ports.PackStore,
	registrar ports.PackRegistrar,
	downloader ports.PackDownloader,
	refresher ports.Refresher,
	logger *log.Logger,
	metrics ports.SyncMetrics,
) *Installer {
	return &Installer{
		store:      store,
		registrar:  registrar,
		downloader: downloader,
		refresher:  refresher,
		logger:     loggerOrDiscard(logger).With("component", "installer"),
		metrics:    metricsOrNoop(metrics),
	}
}

func (i *Installer) Install(ctx context.Context, id domain.PackID, url string) {
	if err := id.Validate(); err != nil {
		i.logger.Warn("skipping server pack", "pack", id, "error", err)
		return
	}

	if i.store.Exists(id) {
		i.logger.Debug("server pack present", "pack", id, "state", domain.PackStatePresent)
		i.enable(ctx, id)
		return
	}

	started := i.downloader.Fetch(id, url, i.onDownloaded)
	if started {
		i.logger.Info("downloading server pack", "pack", id, "url", url, "state", domain.PackStateDownloading)
	}
}

func (i *Installer) onDownloaded(id domain.PackID) {
	ctx := context.Background()
	if i.enable(ctx, id) {
		i.refresher.Refresh(ctx)
	}
}

// enable registers the materialized pack and reports whether it was newly added.
func (i *Installer) enable(ctx context.Context, id domain.PackID) bool {
	path := i.store.LocationOf(id)
	added, err := i.registrar.AddPack(ctx, path)

	switch {
	case !added && err != nil:
		i.logger.Warn("server pack rejected", "pack", id, "path", path, "error", rejection(err))
		i.metrics.IncRegistrations(resultRejected)
		return false
	case !added:
		i.logger.Info("server pack already active", "pack", id)
		i.metrics.IncRegistrations(resultDuplicate)
		return false
	case err != nil:
		i.logger.Warn("server pack added with errors", "pack", id, "error", err)
	}

	i.logger.Info("added server pack", "pack", id, "state", domain.PackStateRegistered)
	i.metrics.IncRegistrations(resultAdded)
	return true
}

func rejection(err error) error {
	if errors.Is(err, domain.ErrRegistrationRejected) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrRegistrationRejected, err)
}
