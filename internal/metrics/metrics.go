package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shortener_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shortener_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	LinksCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shortener_links_created_total",
			Help: "Total number of short links stored",
		},
	)

	// CodeCollisionsTotal counts generated codes rejected because they were already taken.
	CodeCollisionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shortener_code_collisions_total",
			Help: "Total number of generated short codes that were already taken",
		},
	)

	RedirectsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shortener_redirects_total",
			Help: "Total number of short code lookups by outcome",
		},
		[]string{"result"},
	)
)

func RecordLinkCreated() {
	LinksCreatedTotal.Inc()
}

func RecordCodeCollision() {
	CodeCollisionsTotal.Inc()
}

// RecordRedirect counts a lookup that found its target.
func RecordRedirect() {
	RedirectsTotal.WithLabelValues("found").Inc()
}

// RecordRedirectMiss counts a lookup for an unknown code.
func RecordRedirectMiss() {
	RedirectsTotal.WithLabelValues("not_found").Inc()
}
