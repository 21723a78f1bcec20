package ports

type SyncMetrics interface {
	IncSyncMessages(result string)
	IncDownloads(result string)
	IncRegistrations(result string)
	IncRefreshes(result string)
}

type NoopMetrics struct{}

func (NoopMetrics) IncSyncMessages(string)  {}
func (NoopMetrics) IncDownloads(string)     {}
func (NoopMetrics) IncRegistrations(string) {}
func (NoopMetrics) IncRefreshes(string)     {}
