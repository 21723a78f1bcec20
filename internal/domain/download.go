package domain

// DownloadTask is one in-flight fetch. It is owned by the downloader until the
// fetch completes or fails.
type DownloadTask struct {
	ID     string
	PackID PackID
	URL    string
	OnDone func(PackID)
}
