package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for tubeplan.
type Metrics struct {
	WorkflowRuns       *prometheus.CounterVec
	WorkflowDuration   *prometheus.HistogramVec
	IdeasCreated       prometheus.Counter
	AssetsCreated      prometheus.Counter
	ExperimentsCreated prometheus.Counter
	SnapshotsCreated   prometheus.Counter
	SearchCacheHits    prometheus.Counter
	SearchCacheMisses  prometheus.Counter
	RequestDuration    *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers every collector on reg. A nil reg uses a fresh private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		WorkflowRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubeplan_workflow_runs_total",
				Help: "Workflow runs, by workflow and outcome.",
			},
			[]string{"workflow", "outcome"},
		),
		WorkflowDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubeplan_workflow_duration_seconds",
				Help:    "Workflow duration in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"workflow"},
		),
		IdeasCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_ideas_created_total",
			Help: "Video ideas persisted.",
		}),
		AssetsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_assets_created_total",
			Help: "Video assets persisted.",
		}),
		ExperimentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_experiments_created_total",
			Help: "Experiments persisted by diagnose.",
		}),
		SnapshotsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_snapshots_created_total",
			Help: "Metric snapshots persisted.",
		}),
		SearchCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_search_cache_hits_total",
			Help: "Video search cache hits.",
		}),
		SearchCacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tubeplan_search_cache_misses_total",
			Help: "Video search cache misses.",
		}),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubeplan_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds, by route, method and status.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method", "status"},
		),
		gatherer: reg,
	}
	reg.MustRegister(
		m.WorkflowRuns,
		m.WorkflowDuration,
		m.IdeasCreated,
		m.AssetsCreated,
		m.ExperimentsCreated,
		m.SnapshotsCreated,
		m.SearchCacheHits,
		m.SearchCacheMisses,
		m.RequestDuration,
	)
	return m
}

// ObserveWorkflow records one finished run. Nil receivers are ignored.
func (m *Metrics) ObserveWorkflow(name string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.WorkflowRuns.WithLabelValues(name, outcome).Inc()
	m.WorkflowDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
}

func (m *Metrics) AddIdeas(n int) {
	if m != nil && n > 0 {
		m.IdeasCreated.Add(float64(n))
	}
}

func (m *Metrics) AddAssets(n int) {
	if m != nil && n > 0 {
		m.AssetsCreated.Add(float64(n))
	}
}

func (m *Metrics) AddExperiments(n int) {
	if m != nil && n > 0 {
		m.ExperimentsCreated.Add(float64(n))
	}
}

func (m *Metrics) AddSnapshots(n int) {
	if m != nil && n > 0 {
		m.SnapshotsCreated.Add(float64(n))
	}
}

func (m *Metrics) CacheHit() {
	if m != nil {
		m.SearchCacheHits.Inc()
	}
}

func (m *Metrics) CacheMiss() {
	if m != nil {
		m.SearchCacheMisses.Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
