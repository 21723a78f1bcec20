package prom

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountByResult(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := New("serverpacks", reg)
	require.NoError(t, err)

	m.IncSyncMessages("accepted")
	m.IncSyncMessages("malformed")
	m.IncDownloads("succeeded")
	m.IncDownloads("succeeded")
	m.IncRegistrations("added")
	m.IncRefreshes("dropped")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.syncMessages.WithLabelValues("accepted")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.downloads.WithLabelValues("succeeded")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.registrations.WithLabelValues("added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.refreshes.WithLabelValues("dropped")))
}

func TestNewRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_, err := New("serverpacks", reg)
	require.NoError(t, err)

	_, err = New("serverpacks", reg)
	require.Error(t, err)
}

func TestHandlerExposesCounters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m, err := New("serverpacks", reg)
	require.NoError(t, err)
	m.IncRefreshes("sent")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `serverpacks_refreshes_total{result="sent"} 1`)
}
