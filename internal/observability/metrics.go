// Package observability exposes the service's Prometheus metrics.
package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Skufu/GoTriage/internal/triage"
)

const namespace = "triage"

// Metrics owns its registry so tests and multiple servers in one process do
// not collide on the global one. A nil *Metrics is a valid no-op.
type Metrics struct {
	registry          *prometheus.Registry
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
	assessments       *prometheus.CounterVec
	emergencies       prometheus.Counter
	conditionMatches  *prometheus.CounterVec
	confidence        prometheus.Histogram
	consultations     *prometheus.CounterVec
	consultDuration   *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route and status.",
		}, []string{"route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Assessments produced, by risk tier.",
		}, []string{"risk"}),
		emergencies: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emergencies_total",
			Help:      "Assessments in which at least one red flag fired.",
		}),
		conditionMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "condition_matches_total",
			Help:      "Catalogue matches by condition id; unmatched intakes count as \"none\".",
		}, []string{"condition"}),
		confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_confidence",
			Help:      "Distribution of assessment confidence scores.",
			Buckets:   []float64{0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95},
		}),
		consultations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "consultations_total",
			Help:      "Consultations by response source.",
		}, []string{"source"}),
		consultDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "consultation_duration_seconds",
			Help:      "Histogram of consultation durations by response source.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpDuration,
		m.assessments,
		m.emergencies,
		m.conditionMatches,
		m.confidence,
		m.consultations,
		m.consultDuration,
	)

	return m
}

// Middleware records request count and latency by matched route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.httpRequestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format. A nil
// *Metrics has nothing to expose and answers 404.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveAssessment records one engine result. Empty intakes are skipped.
func (m *Metrics) ObserveAssessment(a triage.Assessment) {
	if m == nil || a.Empty {
		return
	}
	m.assessments.WithLabelValues(string(a.Risk.Tier)).Inc()
	if a.Emergency {
		m.emergencies.Inc()
	}
	condition := "none"
	if a.Match.Matched {
		condition = a.Match.ConditionID
	}
	m.conditionMatches.WithLabelValues(condition).Inc()
	m.confidence.Observe(a.Confidence)
}

// ObserveConsultation implements advisor.Observer.
func (m *Metrics) ObserveConsultation(source string, d time.Duration) {
	if m == nil {
		return
	}
	m.consultations.WithLabelValues(source).Inc()
	m.consultDuration.WithLabelValues(source).Observe(d.Seconds())
}
