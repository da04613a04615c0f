package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	// Payments
	PaymentsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_total",
			Help: "Total successful payments",
		},
	)
	PaymentsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Total failed payments",
		},
		[]string{"reason"}, // credit_limit|invalid_amount|missing_wallet|not_found|internal
	)
	PaymentVolume = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_volume_total",
			Help: "Sum of successfully paid amounts",
		},
	)
	CreditDrawn = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "credit_drawn_total",
			Help: "Sum of payment amounts funded from credit",
		},
	)

	// Social graph
	FriendshipsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "friendships_total",
			Help: "Total friendships created",
		},
	)

	// Activity events
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_events_total",
			Help: "Activity events handed to the broker",
		},
		[]string{"result"}, // ok|error|dropped
	)

	// Worker queue
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint'i için handler
var Handler = promhttp.Handler

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			PaymentsTotal,
			PaymentsFailed,
			PaymentVolume,
			CreditDrawn,
			FriendshipsTotal,
			EventsPublished,
			WorkerQueueDepth,
		)
	})
}
