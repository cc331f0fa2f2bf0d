package buyTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/metrics"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketSeller
type TicketSeller interface {
	GetEvent(id int) (*models.Event, error)
	CreateBooking(eventID, userID int, reference string) (int, error)
}

// New books one ticket for the authenticated user. There is no capacity
// limit and no duplicate check: booking the same event twice buys two
// tickets.
func New(log *slog.Logger, bookings TicketSeller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.buyTicket.New"

		log := log.With(slog.String("op", op))

		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))

			return
		}

		eventID, err := strconv.Atoi(idStr)
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		if _, err := bookings.GetEvent(eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to book event"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())

		bookingID, err := bookings.CreateBooking(eventID, user.ID, uuid.NewString())
		if err != nil {
			log.Error("failed to book event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to book event"))

			return
		}

		metrics.IncBookingCreated()
		log.Info("event booked",
			slog.Int("event_id", eventID),
			slog.Int("booking_id", bookingID),
			slog.Int("user_id", user.ID),
		)

		http.Redirect(w, r, "/my-tickets", http.StatusFound)
	}
}
