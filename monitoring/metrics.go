package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	dataLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusconnect_data_loads_total",
			Help: "Data document loads by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	bookmarkOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campusconnect_bookmark_operations_total",
			Help: "Bookmark mutations by kind and operation",
		},
		[]string{"kind", "operation"},
	)

	feedbackSubmissions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "campusconnect_feedback_submissions_total",
			Help: "Accepted feedback form submissions",
		},
	)
)

const (
	OutcomeCacheHit = "cache_hit"
	OutcomeFetched  = "fetched"
	OutcomeFailed   = "failed"
)

func RecordLoad(resource, outcome string) {
	dataLoads.WithLabelValues(resource, outcome).Inc()
}

func RecordBookmark(kind, operation string) {
	bookmarkOperations.WithLabelValues(kind, operation).Inc()
}

func RecordFeedback() {
	feedbackSubmissions.Inc()
}
