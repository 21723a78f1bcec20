package ports

import (
	"context"
	"io"
)

// PackSource opens the remote bytes of a pack archive.
type PackSource interface {
	Open(ctx context.Context, url string) (io.ReadCloser, error)
}
