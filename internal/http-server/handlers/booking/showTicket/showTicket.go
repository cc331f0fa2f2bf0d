package showTicket

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

type Ticket struct {
	ID        int       `json:"id"`
	Reference string    `json:"reference"`
	EventName string    `json:"event_name"`
	DateTime  time.Time `json:"date_time"`
	Location  string    `json:"location"`
	Holder    string    `json:"holder"`
}

type TicketResponse struct {
	response.Response
	Ticket Ticket `json:"ticket"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingGetter
type BookingGetter interface {
	BookingForUser(bookingID, userID int) (*models.BookingDetail, error)
}

func New(log *slog.Logger, bookings BookingGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.showTicket.New"

		log := log.With(slog.String("op", op))

		ticketID, err := strconv.Atoi(r.URL.Query().Get("id"))
		if err != nil {
			log.Error("invalid ticket id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket id format"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())

		booking, err := bookings.BookingForUser(ticketID, user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrBookingNotFound) {
				http.Redirect(w, r, "/my-tickets", http.StatusFound)
				return
			}

			log.Error("failed to get booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get ticket"))

			return
		}

		render.JSON(w, r, TicketResponse{
			Response: response.OK(),
			Ticket: Ticket{
				ID:        booking.ID,
				Reference: booking.Reference,
				EventName: booking.EventTitle,
				DateTime:  booking.EventStartsAt,
				Location:  booking.EventCity,
				Holder:    user.Name,
			},
		})
	}
}
