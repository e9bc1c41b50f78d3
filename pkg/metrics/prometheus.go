package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes
const (
	OutcomeExact   = "exact"
	OutcomeShifted = "shifted"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	Searches            *prometheus.CounterVec
	SearchDuration      prometheus.Histogram
	CandidatesDiscarded *prometheus.CounterVec
	RepositoryErrors    *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered on reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "The total number of itinerary searches by outcome",
		}, []string{"outcome"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time taken to answer an itinerary search",
			Buckets:   prometheus.DefBuckets,
		}),
		CandidatesDiscarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_discarded_total",
			Help:      "Connection candidates dropped because of incomplete schedule data",
		}, []string{"reason"}),
		RepositoryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "repository_errors_total",
			Help:      "The total number of failed schedule store reads",
		}, []string{"operation"}),
	}
}

// ObserveSearch records the outcome and latency of one search
func (m *Metrics) ObserveSearch(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(seconds)
}

// DiscardCandidate counts a dropped connection candidate
func (m *Metrics) DiscardCandidate(reason string) {
	if m == nil {
		return
	}
	m.CandidatesDiscarded.WithLabelValues(reason).Inc()
}

// RepositoryError counts a failed repository read
func (m *Metrics) RepositoryError(operation string) {
	if m == nil {
		return
	}
	m.RepositoryErrors.WithLabelValues(operation).Inc()
}
