package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/serverpacks/internal/domain"
	"github.com/bnema/serverpacks/internal/ports"
	"github.com/charmbracelet/log"
)

// PackStatus is one local pack joined with its registry record, if any.
type PackStatus struct {
	Pack      domain.LocalPack
	State     domain.PackState
	AddedAt   time.Time
	Resources int
}

// Catalog answers read-only questions about the packs directory.
type Catalog struct {
	store   ports.PackStore
	records ports.PackRecords
	index   ports.PackIndex
	logger  *log.Logger
}

func NewCatalog(store ports.PackStore, records ports.PackRecords, index ports.PackIndex, logger *log.Logger) *Catalog {
	return &Catalog{
		store:   store,
		records: records,
		index:   index,
		logger:  loggerOrDiscard(logger).With("component", "catalog"),
	}
}

// List returns every local pack ordered by id. Packs recorded by the last
// session are marked active.
func (c *Catalog) List(ctx context.Context) ([]PackStatus, error) {
	packs, err := c.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packs: %w", err)
	}

	recorded := map[domain.PackID]domain.PackRecord{}
	if c.records != nil {
		records, err := c.records.Active(ctx)
		if err != nil {
			return nil, fmt.Errorf("read registry records: %w", err)
		}
		for _, record := range records {
			recorded[record.ID] = record
		}
	}

	statuses := make([]PackStatus, 0, len(packs))
	for _, pack := range packs {
		status := PackStatus{Pack: pack, State: domain.PackStatePresent}
		if record, ok := recorded[pack.ID]; ok {
			status.Pack.Active = true
			status.State = domain.PackStateRegistered
			status.AddedAt = record.AddedAt
			status.Resources = record.Resources
		}
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// FindResource indexes every local pack and reports which one provides name.
// Packs that are not readable archives are skipped.
func (c *Catalog) FindResource(ctx context.Context, name string) (domain.PackID, error) {
	if c.index == nil {
		return "", errors.New("catalog has no resource index")
	}

	packs, err := c.store.List(ctx)
	if err != nil {
		return "", fmt.Errorf("list packs: %w", err)
	}

	for _, pack := range packs {
		if _, err := c.index.AddPack(ctx, pack.Path); err != nil {
			if errors.Is(err, domain.ErrRegistrationRejected) {
				c.logger.Warn("skipping unreadable pack", "pack", pack.ID, "error", err)
				continue
			}
			return "", fmt.Errorf("index pack %s: %w", pack.ID, err)
		}
	}

	id, ok := c.index.FindResource(name)
	if !ok {
		return "", fmt.Errorf("%w: no pack provides %q", domain.ErrPackNotFound, name)
	}

	return id, nil
}
