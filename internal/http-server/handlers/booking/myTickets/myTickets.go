package myTickets

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

type TicketEntry struct {
	ID          int       `json:"id"`
	Reference   string    `json:"reference"`
	BookedAt    time.Time `json:"booked_at"`
	IsCancelled bool      `json:"is_cancelled"`
	CanCancel   bool      `json:"can_cancel"`
}

// EventGroup bundles a user's tickets for one event.
type EventGroup struct {
	EventID          int           `json:"event_id"`
	EventName        string        `json:"event_name"`
	DateTime         time.Time     `json:"date_time"`
	Location         string        `json:"location"`
	EventImage       string        `json:"event_image"`
	Tickets          []TicketEntry `json:"tickets"`
	TotalTickets     int           `json:"total_tickets"`
	ActiveTickets    int           `json:"active_tickets"`
	CancelledTickets int           `json:"cancelled_tickets"`
}

type TicketsResponse struct {
	response.Response
	Groups []EventGroup   `json:"grouped_tickets"`
	Flash  *flash.Message `json:"flash,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsLister
type BookingsLister interface {
	ListUserBookings(userID int) ([]models.BookingDetail, error)
}

func New(log *slog.Logger, bookings BookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.myTickets.New"

		log := log.With(slog.String("op", op))

		user, _ := mwauth.UserFromContext(r.Context())

		records, err := bookings.ListUserBookings(user.ID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get tickets"))

			return
		}

		render.JSON(w, r, TicketsResponse{
			Response: response.OK(),
			Groups:   groupByEvent(records, time.Now()),
			Flash:    flash.Pop(w, r),
		})
	}
}

// groupByEvent folds the bookings into one group per event. Records arrive
// newest first, so first-seen group order already sorts groups by their most
// recent booking.
func groupByEvent(records []models.BookingDetail, now time.Time) []EventGroup {
	groups := []EventGroup{}
	index := map[int]int{}

	for _, rec := range records {
		pos, ok := index[rec.EventID]
		if !ok {
			pos = len(groups)
			index[rec.EventID] = pos
			groups = append(groups, EventGroup{
				EventID:    rec.EventID,
				EventName:  rec.EventTitle,
				DateTime:   rec.EventStartsAt,
				Location:   rec.EventCity,
				EventImage: rec.EventImage,
			})
		}

		groups[pos].Tickets = append(groups[pos].Tickets, TicketEntry{
			ID:          rec.ID,
			Reference:   rec.Reference,
			BookedAt:    rec.BookedAt,
			IsCancelled: rec.IsCancelled,
			CanCancel:   rec.CanCancel(rec.EventStartsAt, now),
		})

		groups[pos].TotalTickets++
		if rec.IsCancelled {
			groups[pos].CancelledTickets++
		} else {
			groups[pos].ActiveTickets++
		}
	}

	return groups
}
