package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-insightui/pkg/renderer"
	"github.com/goliatone/go-insightui/pkg/schema"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetrics_Recorder(t *testing.T) {
	m := New()
	m.FetchCompleted("ok", 20*time.Millisecond)
	m.FetchCompleted("ok", 30*time.Millisecond)
	m.FetchCompleted("http_error", time.Millisecond)
	m.InsightRendered(true)
	m.InsightRendered(false)
	m.InsightRendered(false)

	body := scrape(t, m)
	assert.Contains(t, body, `insightui_fetch_total{outcome="ok"} 2`)
	assert.Contains(t, body, `insightui_fetch_total{outcome="http_error"} 1`)
	assert.Contains(t, body, `insightui_fetch_duration_seconds_count{outcome="ok"} 2`)
	assert.Contains(t, body, `insightui_insights_total{severity="critical"} 1`)
	assert.Contains(t, body, `insightui_insights_total{severity="none"} 2`)
}

func TestMetrics_ObservesRenderer(t *testing.T) {
	m := New()
	r := renderer.New(renderer.WithObserver(m))

	r.Render([]schema.Element{
		{Type: "iframe"},
		{Type: "script"},
		{Type: "address", Props: schema.Props{"address": "nope"}},
		{Type: "divider"},
	})

	body := scrape(t, m)
	assert.Contains(t, body, `insightui_pruned_nodes_total{reason="unknown_type",type="unknown"} 2`)
	assert.Contains(t, body, `insightui_pruned_nodes_total{reason="invalid",type="address"} 1`)
	assert.NotContains(t, body, `type="iframe"`)
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.RequestServed("/v1/insight", http.StatusOK)

	body := scrape(t, m)
	assert.Contains(t, body, `insightui_http_requests_total{code="200",route="/v1/insight"} 1`)
	assert.Contains(t, body, "go_goroutines")
	assert.NotNil(t, m.Registry())
}
