package prom

import (
	"net/http"

	"github.com/bnema/serverpacks/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements ports.SyncMetrics backed by Prometheus counters.
type Metrics struct {
	syncMessages  *prometheus.CounterVec
	downloads     *prometheus.CounterVec
	registrations *prometheus.CounterVec
	refreshes     *prometheus.CounterVec
}

var _ ports.SyncMetrics = (*Metrics)(nil)

// New creates the counters and registers them on reg.
func New(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		syncMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_messages_total",
			Help:      "Inbound sync messages by decode result",
		}, []string{"result"}),
		downloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pack_downloads_total",
			Help:      "Pack downloads by result",
		}, []string{"result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pack_registrations_total",
			Help:      "Pack registrations by result",
		}, []string{"result"}),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "Outbound refresh commands by result",
		}, []string{"result"}),
	}

	for _, collector := range []prometheus.Collector{m.syncMessages, m.downloads, m.registrations, m.refreshes} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) IncSyncMessages(result string) {
	m.syncMessages.WithLabelValues(result).Inc()
}

func (m *Metrics) IncDownloads(result string) {
	m.downloads.WithLabelValues(result).Inc()
}

func (m *Metrics) IncRegistrations(result string) {
	m.registrations.WithLabelValues(result).Inc()
}

func (m *Metrics) IncRefreshes(result string) {
	m.refreshes.WithLabelValues(result).Inc()
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
