// Package metrics exposes prometheus counters for the public surface of the
// landing backend.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for ContactSubmissions.
const (
	OutcomeAccepted = "accepted"
	OutcomeRejected = "rejected"
)

var (
	// ContactSubmissions counts contact-form submissions by outcome.
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Contact form submissions by outcome.",
	}, []string{"outcome"})

	// PageViews counts recorded page views.
	PageViews = promauto.NewCounter(prometheus.CounterOpts{
		Name: "page_views_total",
		Help: "Page views recorded for analytics.",
	})

	// HTTPRateLimited counts requests rejected by the HTTP rate limiter.
	HTTPRateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "http_rate_limited_total",
		Help: "Requests rejected with 429 by the per-IP HTTP rate limiter.",
	})
)

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
