package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pause_manager_http_requests_total",
		Help: "Total number of HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pause_manager_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	AvailabilityChecks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pause_manager_availability_checks_total",
		Help: "Room availability checks by result",
	}, []string{"result"})

	ReservationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pause_manager_reservation_conflicts_total",
		Help: "Reservation writes rejected because the room was taken",
	})

	DashboardQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pause_manager_dashboard_duration_seconds",
		Help:    "Time spent aggregating dashboard views",
		Buckets: prometheus.DefBuckets,
	}, []string{"view"})
)

// ObserveAvailability registra o resultado de uma verificação de sala.
func ObserveAvailability(available bool) {
	if available {
		AvailabilityChecks.WithLabelValues("available").Inc()
		return
	}
	AvailabilityChecks.WithLabelValues("conflict").Inc()
}
