package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	channelEmail = "email"
	channelPush  = "push"

	resultSuccess = "success"
	resultFailure = "failure"
)

type Metrics struct {
	deliveries *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	dropped    prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "investledger_notification_deliveries_total",
				Help: "Outbound notification deliveries by channel and result",
			},
			[]string{"channel", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "investledger_notification_delivery_duration_seconds",
				Help:    "Time spent delivering a notification on one channel, retries included",
				Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10},
			},
			[]string{"channel"},
		),
		dropped: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "investledger_notification_deliveries_dropped_total",
				Help: "Notifications whose delivery could not be queued",
			},
		),
	}
}
