package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "feedbackhub", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "feedbackhub", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ReviewsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "feedbackhub", Name: "reviews_submitted_total", Help: "Submitted reviews."},
		[]string{"approved"}, // approved: true|false
	)
	WebhookDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "feedbackhub", Name: "webhook_deliveries_total", Help: "Webhook delivery attempts."},
		[]string{"outcome"}, // outcome: delivered|failed|dropped
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "feedbackhub", Name: "rate_limited_total", Help: "Requests rejected by the rate limiter."},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ReviewsSubmitted, WebhookDeliveries, RateLimited)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveReview(approved bool) {
	ReviewsSubmitted.WithLabelValues(strconv.FormatBool(approved)).Inc()
}

func ObserveWebhook(outcome string) {
	WebhookDeliveries.WithLabelValues(outcome).Inc()
}

func ObserveRateLimited() {
	RateLimited.Inc()
}
