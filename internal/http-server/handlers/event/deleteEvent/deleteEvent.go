package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	GetEvent(id int) (*models.Event, error)
	CountTickets(eventID int) (int, error)
	DeleteEvent(id int) error
}

func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		event, err := events.GetEvent(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())
		if event.UserID != user.ID {
			flash.Set(w, flash.KindError, "You are not allowed to delete this event.")
			http.Redirect(w, r, "/events", http.StatusFound)

			return
		}

		// the guard reads the secondary tickets table, not bookings
		ticketsSold, err := events.CountTickets(eventID)
		if err != nil {
			log.Error("failed to count tickets", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))

			return
		}

		if ticketsSold > 0 {
			flash.Set(w, flash.KindError, "Cannot delete event. Tickets have already been sold.")
			http.Redirect(w, r, "/events", http.StatusFound)

			return
		}

		if err := events.DeleteEvent(eventID); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))

			return
		}

		log.Info("event deleted", slog.Int("event_id", eventID))

		flash.Set(w, flash.KindSuccess, "Event deleted successfully.")
		http.Redirect(w, r, "/events", http.StatusFound)
	}
}
