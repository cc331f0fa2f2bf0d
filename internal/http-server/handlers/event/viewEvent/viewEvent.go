package viewEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

type EventResponse struct {
	response.Response
	Event      models.Event `json:"event"`
	Organizer  string       `json:"organizer"`
	Bookmarked bool         `json:"bookmarked"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventViewer
type EventViewer interface {
	GetEvent(id int) (*models.Event, error)
	UserByID(id int) (*models.User, error)
	IsBookmarked(userID, eventID int) (bool, error)
}

func New(log *slog.Logger, events EventViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.viewEvent.New"

		log := log.With(slog.String("op", op))

		idStr := r.URL.Query().Get("id")
		if idStr == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		eventID, err := strconv.Atoi(idStr)
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
			render.JSON(w, r, response.Error("failed to get event"))

			return
		}

		organizer, err := events.UserByID(event.UserID)
		if err != nil {
			log.Error("failed to get organizer", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get event"))

			return
		}

		bookmarked := false
		if user, ok := mwauth.UserFromContext(r.Context()); ok {
			bookmarked, err = events.IsBookmarked(user.ID, eventID)
			if err != nil {
				log.Error("failed to check bookmark", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get event"))

				return
			}
		}

		render.JSON(w, r, EventResponse{
			Response:   response.OK(),
			Event:      *event,
			Organizer:  organizer.Name,
			Bookmarked: bookmarked,
		})
	}
}
