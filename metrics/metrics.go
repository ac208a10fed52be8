package metrics

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_bookings_created_total",
		Help: "Bookings created across all item types.",
	})

	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_bookings_cancelled_total",
		Help: "Bookings cancelled, including checkout compensation.",
	})

	PaymentsCaptured = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_payments_captured_total",
		Help: "Successful payment captures.",
	})

	PaymentsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_payments_failed_total",
		Help: "Failed payment captures.",
	})

	ConflictsDetected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_schedule_conflicts_total",
		Help: "Schedule conflicts surfaced to users.",
	})

	SlotLocksTaken = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_slot_locks_taken_total",
		Help: "Dining slot locks acquired.",
	})

	SlotLocksExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fairway_slot_locks_expired_total",
		Help: "Dining slot locks that expired before confirmation.",
	})
)

// Handler exposes the Prometheus endpoint through httprouter.
func Handler() httprouter.Handle {
	h := promhttp.Handler()
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		h.ServeHTTP(w, r)
	}
}
