package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ledger_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"method", "endpoint"},
	)
)

// Metrics creates middleware that records request counts and latencies.
// Path segments holding identifiers are collapsed into a placeholder so the
// endpoint label stays low-cardinality.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			endpoint := normalizeEndpoint(r.URL.Path)
			timer := prometheus.NewTimer(httpRequestDuration.WithLabelValues(r.Method, endpoint))
			recorder := newStatusRecorder(w)

			next.ServeHTTP(recorder, r)

			timer.ObserveDuration()
			httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(recorder.statusCode)).Inc()
		})
	}
}

func normalizeEndpoint(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		if _, err := uuid.Parse(segment); err == nil {
			segments[i] = "{id}"
		}
	}
	return strings.Join(segments, "/")
}
