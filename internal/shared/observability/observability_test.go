package observability

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func TestMetrics_Counters(t *testing.T) {
	before := counterValue(t, DeclarationsTotal.WithLabelValues("ClassMethod"))
	DeclarationsTotal.WithLabelValues("ClassMethod").Add(3)
	assert.Equal(t, before+3, counterValue(t, DeclarationsTotal.WithLabelValues("ClassMethod")))

	processed := counterValue(t, FilesProcessedTotal)
	FilesProcessedTotal.Inc()
	assert.Equal(t, processed+1, counterValue(t, FilesProcessedTotal))
}

func TestMetricsServer_Handler(t *testing.T) {
	ExtractionDuration.WithLabelValues("tsx").Observe(0.01)
	srv := NewMetricsServer("", nil)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), "fnoutline_extraction_seconds"))

	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var status HealthStatus
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "up", status.Status)
}

func TestMetricsServer_Degraded(t *testing.T) {
	srv := NewMetricsServer("", func(context.Context) HealthStatus {
		return HealthStatus{Status: "degraded", Components: map[string]string{"parser": "missing"}}
	})
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"parser":"missing"`)
}

func TestMetricsServer_StartStop(t *testing.T) {
	srv := NewMetricsServer("127.0.0.1:0", nil)
	require.NoError(t, srv.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, srv.Stop(ctx))

	assert.NoError(t, NewMetricsServer("", nil).Stop(ctx))
}

func TestInitTracer_Disabled(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), "", "fnoutline")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	_, span := Tracer.Start(context.Background(), "noop")
	span.End()
}
