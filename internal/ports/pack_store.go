package ports

import (
	"context"
	"io"

	"github.com/bnema/serverpacks/internal/domain"
)

type PackStore interface {
	Exists(id domain.PackID) bool
	LocationOf(id domain.PackID) string
	Materialize(ctx context.Context, id domain.PackID, r io.Reader) error
	List(ctx context.Context) ([]domain.LocalPack, error)
}
