package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sharing"

var (
	// LinksCreated counts issued links by link type
	LinksCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "links_created_total",
		Help:      "Number of sharing links issued.",
	}, []string{"link_type"})

	// EventsLogged counts appended link events by event type
	EventsLogged = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "link_events_total",
		Help:      "Number of link events appended to the event log.",
	}, []string{"event_type"})

	// BonusTokensAwarded sums credited tokens by reason code
	BonusTokensAwarded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bonus_tokens_awarded_total",
		Help:      "Number of bonus tokens credited to user accounts.",
	}, []string{"reason_code"})

	// ScansResolved counts QR scans by resulting action
	ScansResolved = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "qr_scans_total",
		Help:      "Number of QR scans resolved, by action.",
	}, []string{"action"})

	// DispatchOutcomes counts email dispatch results
	DispatchOutcomes = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_dispatch_total",
		Help:      "Number of private email link dispatches, by outcome.",
	}, []string{"outcome"})

	// HTTPRequestDuration observes API latency
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Latency of API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(
		LinksCreated,
		EventsLogged,
		BonusTokensAwarded,
		ScansResolved,
		DispatchOutcomes,
		HTTPRequestDuration,
	)
}

// Handler returns the HTTP handler exposing the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}
