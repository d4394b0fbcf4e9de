package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedRoute labels requests chi could not route.
const unmatchedRoute = "unmatched"

var (
	apiRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chartd",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Dashboard API requests by route pattern, method and status code",
		},
		[]string{"route", "method", "code"},
	)

	// Theme fetches and page renders dominate the upper buckets.
	apiRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chartd",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "Dashboard API latency by route pattern",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10},
		},
		[]string{"route", "method", "code"},
	)

	apiInflight = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "chartd",
			Subsystem: "api",
			Name:      "inflight_requests",
			Help:      "Dashboard API requests being served",
		},
		[]string{"method"},
	)

	rejectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chartd",
			Subsystem: "api",
			Name:      "rejected_requests_total",
			Help:      "Requests refused before reaching the dashboard, by reason",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(apiRequestsTotal, apiRequestDuration, apiInflight, rejectedTotal)
}

// statusRecorder remembers the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// MetricsMiddleware records count, latency and concurrency of API requests.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inflight := apiInflight.WithLabelValues(r.Method)
		inflight.Inc()
		defer inflight.Dec()

		sr := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sr, r)
		// chi fills the route pattern while routing
		labels := []string{routeLabel(r), r.Method, strconv.Itoa(sr.status)}
		apiRequestsTotal.WithLabelValues(labels...).Inc()
		apiRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
	})
}

// routeLabel returns the chi route pattern, or unmatchedRoute so chart ids
// and stray paths never become label values.
func routeLabel(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return unmatchedRoute
}

// IncrementRejected counts a request refused for reason (content_type,
// body, validation).
func IncrementRejected(reason string) {
	if reason == "" {
		reason = "unspecified"
	}
	rejectedTotal.WithLabelValues(reason).Inc()
}
