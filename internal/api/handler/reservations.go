package handler

import (
	"net/http"

	"github.com/poka-net3/kitchen-dashboard-api/internal/usecases/booking"
	"github.com/poka-net3/kitchen-dashboard-api/pkg/log"
)

// GetReservations serves today's bookings sorted by time.
func GetReservations(service booking.BookingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		bookings := service.TodayBookings(r.Context())
		logger.WithField("bookings", len(bookings)).Debug("reservations: serving booking list")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(bookings); err != nil {
			logger.WithError(err).Error("reservations: failed to encode response")
		}
	})
}
