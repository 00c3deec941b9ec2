package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "auctiondex",
			Name:      "search_requests_total",
			Help:      "Total number of auction search operations",
		},
		[]string{"kind", "status"}, // kind: list / search / get / similar
	)

	SearchResultsReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "auctiondex",
			Name:      "search_results_returned",
			Help:      "Number of auctions returned per search operation",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"kind"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResultsReturned)
	searchMetricsRegistered = true
}
