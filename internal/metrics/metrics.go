// Package metrics exposes Prometheus collectors for fetch outcomes, pruned
// nodes and rendered insights. A Metrics value satisfies both
// insight.Recorder and renderer.Observer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-insightui/pkg/insight"
	"github.com/goliatone/go-insightui/pkg/renderer"
)

const namespace = "insightui"

type Metrics struct {
	registry *prometheus.Registry

	fetches       *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
	pruned        *prometheus.CounterVec
	insights      *prometheus.CounterVec
	requests      *prometheus.CounterVec
}

var (
	_ insight.Recorder  = (*Metrics)(nil)
	_ renderer.Observer = (*Metrics)(nil)
)

// New registers the collectors on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Document fetches by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Document fetch latency by outcome.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		pruned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pruned_nodes_total",
			Help:      "Elements dropped while rendering, by element type and reason.",
		}, []string{"type", "reason"}),
		insights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "insights_total",
			Help:      "Rendered insights by severity.",
		}, []string{"severity"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
	}
	m.registry.MustRegister(
		m.fetches,
		m.fetchDuration,
		m.pruned,
		m.insights,
		m.requests,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) FetchCompleted(outcome string, elapsed time.Duration) {
	m.fetches.WithLabelValues(outcome).Inc()
	m.fetchDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

func (m *Metrics) InsightRendered(critical bool) {
	severity := "none"
	if critical {
		severity = "critical"
	}
	m.insights.WithLabelValues(severity).Inc()
}

// NodePruned counts elements dropped by the renderer. Unknown type tags are
// collapsed into a single label value to keep cardinality bounded.
func (m *Metrics) NodePruned(elementType, reason string) {
	if reason == renderer.ReasonUnknownType {
		elementType = "unknown"
	}
	m.pruned.WithLabelValues(elementType, reason).Inc()
}

// RequestServed counts one HTTP response.
func (m *Metrics) RequestServed(route string, code int) {
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collectors in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
