package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search pipeline metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_requests_total",
			Help:      "Searches by ranking strategy and effective category",
		},
		[]string{"strategy", "category"},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_results",
			Help:      "Number of providers returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		},
	)

	ClassifierTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "classifier_total",
			Help:      "Keyword classification attempts by classifier and outcome",
		},
		[]string{"classifier", "outcome"}, // matched | unmatched | error
	)
)

// Recorder reports search and classification outcomes to Prometheus.
type Recorder struct{}

// NewRecorder creates a Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

// ObserveSearch records one completed search.
func (*Recorder) ObserveSearch(strategy, category string, results int) {
	SearchRequestsTotal.WithLabelValues(strategy, category).Inc()
	SearchResults.Observe(float64(results))
}

// ObserveClassification records one classifier attempt.
func (*Recorder) ObserveClassification(classifier, outcome string) {
	ClassifierTotal.WithLabelValues(classifier, outcome).Inc()
}
