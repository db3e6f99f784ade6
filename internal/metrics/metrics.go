// Package metrics exposes the service counters scraped from /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	EventsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "afftrack",
		Name:      "funnel_events_recorded_total",
		Help:      "Funnel events persisted, by event type.",
	}, []string{"event_type"})

	EventsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "afftrack",
		Name:      "funnel_events_skipped_total",
		Help:      "Funnel events dropped because the visitor had no live attribution.",
	})

	PostbackDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "afftrack",
		Name:      "postback_deliveries_total",
		Help:      "Postback attempts, by event type and delivery status.",
	}, []string{"event_type", "status"})

	PostbackDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "afftrack",
		Name:      "postback_duplicates_total",
		Help:      "Dispatches suppressed because the (event, config) pair was already claimed.",
	})

	CommissionsRecognized = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "afftrack",
		Name:      "commissions_recognized_total",
		Help:      "Commission line items written, by kind.",
	}, []string{"kind"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
