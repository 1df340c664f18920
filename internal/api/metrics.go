package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devplane_http_requests_total",
		Help: "HTTP requests served, by handler, method and status code.",
	}, []string{"handler", "code", "method"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "devplane_http_request_duration_seconds",
		Help:    "HTTP request latency, by handler.",
		Buckets: prometheus.DefBuckets,
	}, []string{"handler"})
)

// instrument wraps a handler with request count and latency metrics under
// the given handler label.
func instrument(name string, next http.Handler) http.Handler {
	labels := prometheus.Labels{"handler": name}
	return promhttp.InstrumentHandlerDuration(
		requestDuration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(
			requestsTotal.MustCurryWith(labels),
			next,
		),
	)
}
