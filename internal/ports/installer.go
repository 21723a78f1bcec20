package ports

import (
	"context"

	"github.com/bnema/serverpacks/internal/domain"
)

type PackInstaller interface {
	Install(ctx context.Context, id domain.PackID, url string)
}
