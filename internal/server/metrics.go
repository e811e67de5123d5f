package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculation outcomes recorded by the metrics
const (
	OutcomeSuccess    = "success"
	OutcomeRejected   = "rejected"
	OutcomeBadRequest = "bad_request"
)

// Metrics holds the Prometheus collectors of one server. Each server owns its
// registry so several servers can coexist in one process.
type Metrics struct {
	registry     *prometheus.Registry
	calculations *prometheus.CounterVec
	comparisons  *prometheus.CounterVec
	participants prometheus.Histogram
}

// NewMetrics creates and registers the collectors
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharesplit",
			Name:      "calculations_total",
			Help:      "Distribution calculations by allocation model and outcome.",
		}, []string{"model", "outcome"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sharesplit",
			Name:      "comparisons_total",
			Help:      "Model comparisons by outcome.",
		}, []string{"outcome"}),
		participants: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sharesplit",
			Name:      "calculation_participants",
			Help:      "Number of submitted participants per calculation.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34},
		}),
	}
	m.registry.MustRegister(m.calculations, m.comparisons, m.participants)
	return m
}

// ObserveCalculation records one calculation request
func (m *Metrics) ObserveCalculation(model, outcome string, participants int) {
	m.calculations.WithLabelValues(model, outcome).Inc()
	if outcome != OutcomeBadRequest {
		m.participants.Observe(float64(participants))
	}
}

// ObserveComparison records one comparison request
func (m *Metrics) ObserveComparison(outcome string) {
	m.comparisons.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
