package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "staysync"

var (
	// Registry is the dedicated registry served on /metrics.
	Registry = prometheus.NewRegistry()

	regOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "route", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "route"},
	)

	channelRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "channel_requests_total", Help: "Calls to the channel manager API by operation and status code, 0 for transport failures."},
		[]string{"operation", "status"},
	)
	channelDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Namespace: namespace, Name: "channel_request_duration_seconds", Help: "Channel manager API call duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"operation"},
	)

	bookingSync = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "booking_sync_total", Help: "Booking synchronization attempts by operation and outcome."},
		[]string{"operation", "outcome"},
	)

	inventorySync = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "inventory_sync_total", Help: "Inventory pushes by kind and outcome."},
		[]string{"kind", "outcome"},
	)

	reconciliation = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "reconciliation_bookings_total", Help: "Bookings seen by the reconciliation import by outcome."},
		[]string{"outcome"},
	)

	webhookEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "webhook_events_total", Help: "Webhook events by type and outcome."},
		[]string{"event_type", "outcome"},
	)
)

const (
	OutcomeSuccess   = "success"
	OutcomeFailed    = "failed"
	OutcomeConflict  = "conflict"
	OutcomeSkipped   = "skipped"
	OutcomeDuplicate = "duplicate"
	OutcomeImported  = "imported"
)

// Register registers every collector on Registry (idempotent).
func Register() {
	regOnce.Do(func() {
		Registry.MustRegister(
			httpRequests,
			httpDuration,
			channelRequests,
			channelDuration,
			bookingSync,
			inventorySync,
			reconciliation,
			webhookEvents,
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	})
}

// Handler serves Registry in the Prometheus exposition format.
func Handler() http.Handler {
	Register()

	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}

func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func ObserveChannelRequest(operation string, status int, elapsed time.Duration) {
	channelRequests.WithLabelValues(operation, strconv.Itoa(status)).Inc()
	channelDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

func IncBookingSync(operation, outcome string) {
	bookingSync.WithLabelValues(operation, outcome).Inc()
}

func IncInventorySync(kind, outcome string) {
	inventorySync.WithLabelValues(kind, outcome).Inc()
}

func AddReconciliation(outcome string, count int) {
	reconciliation.WithLabelValues(outcome).Add(float64(count))
}

func IncWebhookEvent(eventType, outcome string) {
	webhookEvents.WithLabelValues(eventType, outcome).Inc()
}
