package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestay_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "homestay_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	bookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homestay_bookings_created_total",
		Help: "Bookings persisted.",
	})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestay_notifications_total",
		Help: "Email notifications by kind and outcome.",
	}, []string{"kind", "outcome"})

	reviewsAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestay_reviews_added_total",
		Help: "Reviews stored, by author kind.",
	}, []string{"author_kind"})

	reviewRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "homestay_review_version_conflicts_total",
		Help: "Optimistic concurrency retries while appending reviews.",
	})

	cacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestay_cache_hits_total",
		Help: "Home cache hits by key kind.",
	}, []string{"kind"})

	cacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "homestay_cache_misses_total",
		Help: "Home cache misses by key kind.",
	}, []string{"kind"})
)

func ObserveHTTPRequest(method, route string, status int, took time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

func IncBookingCreated() { bookingsCreated.Inc() }

// ObserveNotification records one dispatch attempt; outcome is "sent" or "failed".
func ObserveNotification(kind, outcome string) {
	notifications.WithLabelValues(kind, outcome).Inc()
}

func IncReviewAdded(authorKind string) { reviewsAdded.WithLabelValues(authorKind).Inc() }

func IncReviewRetry() { reviewRetries.Inc() }

func IncCacheHit(kind string) { cacheHits.WithLabelValues(kind).Inc() }

func IncCacheMiss(kind string) { cacheMisses.WithLabelValues(kind).Inc() }
