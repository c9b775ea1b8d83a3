// Package metrics exposes the Prometheus instruments recorded by the
// extraction pipeline and the REST surface.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tradeops"

// Outcome labels recorded for finished extraction tasks.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

var (
	requestBuckets    = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10}
	extractionBuckets = []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}
)

// Collector bundles the counters and histograms shared by the processing
// pipeline and the HTTP layer. A nil Collector is valid and records nothing
type Collector struct {
	jobsTotal         *prometheus.CounterVec
	documentsTotal    *prometheus.CounterVec
	extractionLatency *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	requestLatency    *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them on the default
// registry. Registration is idempotent so repeated construction, for
// example across tests, reuses the collectors registered first
func NewCollector() *Collector {
	collector := &Collector{
		jobsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_total",
			Help:      "Count of finished extraction jobs by final status",
		}, []string{"status"}),
		documentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_processed_total",
			Help:      "Count of finished extraction tasks by document type and outcome",
		}, []string{"doc_type", "outcome"}),
		extractionLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "extraction",
			Name:      "duration_seconds",
			Help:      "Latency distribution of model extraction per document group",
			Buckets:   extractionBuckets,
		}, []string{"doc_type"}),
		requestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Count of processed HTTP requests",
		}, []string{"method", "path", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP handlers",
			Buckets:   requestBuckets,
		}, []string{"method", "path"}),
	}

	collector.jobsTotal = registerCounterVec(collector.jobsTotal)
	collector.documentsTotal = registerCounterVec(collector.documentsTotal)
	collector.extractionLatency = registerHistogramVec(collector.extractionLatency)
	collector.requestTotal = registerCounterVec(collector.requestTotal)
	collector.requestLatency = registerHistogramVec(collector.requestLatency)
	return collector
}

func registerCounterVec(vec *prometheus.CounterVec) *prometheus.CounterVec {
	if err := prometheus.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return vec
}

func registerHistogramVec(vec *prometheus.HistogramVec) *prometheus.HistogramVec {
	if err := prometheus.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
	}
	return vec
}

// RecordJob counts a finished job under its final status
func (c *Collector) RecordJob(status string) {
	if c == nil {
		return
	}
	c.jobsTotal.With(prometheus.Labels{"status": status}).Inc()
}

// RecordDocument counts a finished extraction task and observes how long
// the model took for the document group
func (c *Collector) RecordDocument(docType, outcome string, duration time.Duration) {
	if c == nil {
		return
	}
	c.documentsTotal.With(prometheus.Labels{"doc_type": docType, "outcome": outcome}).Inc()
	c.extractionLatency.With(prometheus.Labels{"doc_type": docType}).Observe(duration.Seconds())
}

// RecordRequest counts an HTTP request and observes handler latency. The
// latency series carries no status label so its cardinality stays per-path
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.requestTotal.With(prometheus.Labels{
		"method": method,
		"path":   path,
		"status": strconv.Itoa(status),
	}).Inc()
	c.requestLatency.With(prometheus.Labels{
		"method": method,
		"path":   path,
	}).Observe(duration.Seconds())
}
