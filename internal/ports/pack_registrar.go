package ports

import (
	"context"

	"github.com/bnema/serverpacks/internal/domain"
)

// PackRegistrar activates a materialized pack archive in the local resource set.
// AddPack returns false when the pack was not newly activated. It must tolerate
// repeated calls with the same path.
type PackRegistrar interface {
	AddPack(ctx context.Context, path string) (bool, error)
}

// ResourceResolver finds which active pack provides a resource. Implementations
// must be safe for concurrent lookups.
type ResourceResolver interface {
	FindResource(name string) (domain.PackID, bool)
}

// PackIndex activates archives and answers resource lookups over them.
type PackIndex interface {
	PackRegistrar
	ResourceResolver
}

// PackRecords lists the packs the last session activated.
type PackRecords interface {
	Active(ctx context.Context) ([]domain.PackRecord, error)
}
