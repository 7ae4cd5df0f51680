package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cuisearch",
			Name:      "searches_total",
			Help:      "Total number of search requests by outcome",
		},
		[]string{"outcome"},
	)

	searchFusedResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cuisearch",
			Name:      "search_fused_results",
			Help:      "Deduplicated result count per search",
			Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)

	searchExactHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cuisearch",
			Name:      "search_exact_hits_total",
			Help:      "Total searches that surfaced at least one exact match",
		},
	)
)

// RegisterSearchMetrics registers engine metrics explicitly (no init()).
func RegisterSearchMetrics() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(searchFusedResults)
	prometheus.MustRegister(searchExactHits)
}

// Search outcome labels.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid_request"
	OutcomeRetrieval = "retrieval_failure"
)

// RecordSearch observes one completed search request.
func RecordSearch(outcome string, fusedTotal int, hadExact bool) {
	searchesTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	searchFusedResults.Observe(float64(fusedTotal))
	if hadExact {
		searchExactHits.Inc()
	}
}
