package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type busMetrics struct {
	events  *prometheus.CounterVec
	amount  *prometheus.CounterVec
	dropped *prometheus.CounterVec
}

func newBusMetrics(registry prometheus.Registerer) *busMetrics {
	factory := promauto.With(registry)
	return &busMetrics{
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_events_total",
			Help: "Total number of committed funding events by type",
		}, []string{"type"}),
		amount: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_event_amount_total",
			Help: "Sum of amounts carried by funding events by type",
		}, []string{"type"}),
		dropped: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_events_dropped_total",
			Help: "Events dropped because a subscriber queue was full",
		}, []string{"type"}),
	}
}
