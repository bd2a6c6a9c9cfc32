package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

func init() { register(resultDeliveriesTotal, resultPhotoSendFailuresTotal) }

var resultDeliveriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "result_deliveries_total",
		Help: "Result delivery requests, labeled by response status code.",
	},
	[]string{"status"},
)

var resultPhotoSendFailuresTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "result_photo_send_failures_total",
		Help: "Annotated-image deliveries that degraded to a text apology.",
	},
)

func IncDelivery(status int) {
	resultDeliveriesTotal.WithLabelValues(strconv.Itoa(status)).Inc()
}

func IncPhotoSendFailure() {
	resultPhotoSendFailuresTotal.Inc()
}
