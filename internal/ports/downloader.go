package ports

import "github.com/bnema/serverpacks/internal/domain"

// PackDownloader schedules an asynchronous fetch. It returns false when no task
// was started. onDone runs on the fetching goroutine, only after success.
type PackDownloader interface {
	Fetch(id domain.PackID, url string, onDone func(domain.PackID)) bool
}
