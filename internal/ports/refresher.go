package ports

import "context"

type Refresher interface {
	Refresh(ctx context.Context)
}
