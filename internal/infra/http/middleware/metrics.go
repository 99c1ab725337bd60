package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	contractsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contracts_created_total",
			Help: "Total number of contracts acquired",
		},
		[]string{"contract_type"},
	)

	welcomeTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contract_welcome_transitions_total",
			Help: "Total number of welcoming transitions, by outcome",
		},
		[]string{"outcome"},
	)

	tutorRegistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tutor_registrations_total",
			Help: "Total number of tutor registrations, by outcome",
		},
		[]string{"outcome"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordContractCreated(contractType string) {
	if contractType == "" {
		contractType = "none"
	}
	contractsCreated.WithLabelValues(contractType).Inc()
}

func RecordWelcomeTransition(outcome string) {
	welcomeTransitions.WithLabelValues(outcome).Inc()
}

func RecordTutorRegistration(outcome string) {
	tutorRegistrations.WithLabelValues(outcome).Inc()
}
