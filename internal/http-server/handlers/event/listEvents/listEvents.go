package listEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

type EventsResponse struct {
	response.Response
	Events             []models.Event `json:"events"`
	BookmarkedEventIDs []int          `json:"bookmarked_event_ids"`
	Flash              *flash.Message `json:"flash,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	ListEvents() ([]models.Event, error)
	BookmarkedEventIDs(userID int) ([]int, error)
}

func New(log *slog.Logger, events EventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(slog.String("op", op))

		records, err := events.ListEvents()
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))

			return
		}

		bookmarked := []int{}
		if user, ok := mwauth.UserFromContext(r.Context()); ok {
			bookmarked, err = events.BookmarkedEventIDs(user.ID)
			if err != nil {
				log.Error("failed to get bookmarks", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get events"))

				return
			}
			if bookmarked == nil {
				bookmarked = []int{}
			}
		}

		log.Info("events retrieved", slog.Int("count", len(records)))

		render.JSON(w, r, EventsResponse{
			Response:           response.OK(),
			Events:             records,
			BookmarkedEventIDs: bookmarked,
			Flash:              flash.Pop(w, r),
		})
	}
}
