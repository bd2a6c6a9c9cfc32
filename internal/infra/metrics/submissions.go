package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(photoSubmissionsTotal, queuePublishFailuresTotal) }

var photoSubmissionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "photo_submissions_total",
		Help: "Total photo submissions handled, labeled by outcome.",
	},
	[]string{"outcome"}, // 'accepted', 'no_photo', 'upload_failed', 'error'
)

var queuePublishFailuresTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "job_queue_publish_failures_total",
		Help: "Job publishes that failed after a successful upload.",
	},
)

func IncSubmission(outcome string) {
	photoSubmissionsTotal.WithLabelValues(outcome).Inc()
}

func IncQueuePublishFailure() {
	queuePublishFailuresTotal.Inc()
}
