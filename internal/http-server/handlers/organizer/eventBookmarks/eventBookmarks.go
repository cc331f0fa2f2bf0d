package eventBookmarks

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

type BookmarksResponse struct {
	response.Response
	Event     models.Event              `json:"event"`
	Bookmarks []models.BookmarkWithUser `json:"bookmarks"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventBookmarksLister
type EventBookmarksLister interface {
	OwnedEvent(eventID, userID int) (*models.Event, error)
	ListEventBookmarks(eventID int) ([]models.BookmarkWithUser, error)
}

func New(log *slog.Logger, events EventBookmarksLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.eventBookmarks.New"

		log := log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())

		// a non-owner gets 404, never 403
		event, err := events.OwnedEvent(eventID, user.ID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookmarks"))

			return
		}

		bookmarks, err := events.ListEventBookmarks(eventID)
		if err != nil {
			log.Error("failed to get bookmarks", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookmarks"))

			return
		}

		render.JSON(w, r, BookmarksResponse{
			Response:  response.OK(),
			Event:     *event,
			Bookmarks: bookmarks,
		})
	}
}
