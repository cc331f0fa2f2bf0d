package cancelTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/metrics"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	BookingForUser(bookingID, userID int) (*models.BookingDetail, error)
	CancelBooking(bookingID int, cancelledAt time.Time) error
}

func New(log *slog.Logger, bookings BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelTicket.New"

		log := log.With(slog.String("op", op))

		bookingID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())

		// someone else's booking looks like a missing one
		booking, err := bookings.BookingForUser(bookingID, user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))

				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel ticket"))

			return
		}

		now := time.Now()

		if !booking.CanCancel(booking.EventStartsAt, now) {
			if booking.IsCancelled {
				flash.Set(w, flash.KindError, "This ticket has already been cancelled.")
			} else {
				flash.Set(w, flash.KindError, "Cannot cancel ticket. Must be at least 5 days before the event.")
			}
			http.Redirect(w, r, "/my-tickets", http.StatusFound)

			return
		}

		if err := bookings.CancelBooking(bookingID, now); err != nil {
			log.Error("failed to cancel booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel ticket"))

			return
		}

		metrics.IncBookingCancelled()
		log.Info("booking cancelled", slog.Int("booking_id", bookingID), slog.Int("user_id", user.ID))

		flash.Set(w, flash.KindSuccess, "Ticket for '"+booking.EventTitle+"' has been cancelled successfully.")
		http.Redirect(w, r, "/my-tickets", http.StatusFound)
	}
}
