package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("render", 150*time.Millisecond)
	pr.IncStageResult("render", ResultSuccess)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.SetPagesRendered(47)
	pr.IncSiteReload(true)
	pr.ObserveHTTPRequest(http.MethodGet, http.StatusOK, time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(mfs))
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	assert.True(t, names["shanksdocs_build_duration_seconds"])
	assert.True(t, names["shanksdocs_pages_rendered"])
	assert.True(t, names["shanksdocs_http_requests_total"])
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.IncBuildOutcome(OutcomeFailed)
	pr.SetPagesRendered(1)
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).SetPagesRendered(3)

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "shanksdocs_pages_rendered 3")
}

var _ Recorder = NoopRecorder{}
var _ Recorder = (*PrometheusRecorder)(nil)
