package http

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess           = "success"
	OutcomeEmptyNotification = "empty_notification"
	OutcomeCopyError         = "copy_error"
	OutcomeFiltered          = "filtered"
	OutcomeQueued            = "queued"
)

type Metrics struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "copy_invocations_total",
			Help: "Number of copy handler invocations by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "copy_invocation_duration_seconds",
			Help:    "Duration of copy handler invocations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(m.invocations, m.duration)
	return m
}

func (m *Metrics) Count(outcome string) {
	m.invocations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Observe(outcome string, d time.Duration) {
	m.Count(outcome)
	m.duration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
