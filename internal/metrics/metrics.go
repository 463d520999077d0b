package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "venuebook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		},
		[]string{"route", "status"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "venuebook",
			Name:      "bookings_created_total",
			Help:      "Booking requests successfully recorded as pending.",
		},
	)

	bookingConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "venuebook",
			Name:      "booking_conflicts_total",
			Help:      "Submissions rejected because the day was occupied.",
		},
	)

	emailOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "venuebook",
			Name:      "confirmation_emails_total",
			Help:      "Confirmation email attempts by outcome.",
		},
		[]string{"outcome"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, bookingsCreated, bookingConflicts, emailOutcomes)
	})
}

// IncHTTP increments the request counter for a route and status label.
func IncHTTP(route, status string) {
	httpRequests.WithLabelValues(route, status).Inc()
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingConflict() {
	bookingConflicts.Inc()
}

func IncEmail(outcome string) {
	emailOutcomes.WithLabelValues(outcome).Inc()
}
