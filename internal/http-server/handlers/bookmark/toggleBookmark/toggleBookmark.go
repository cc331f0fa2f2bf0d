package toggleBookmark

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
	"eventsphere/internal/metrics"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

// ToggleResponse reports the state the bookmark ended up in.
type ToggleResponse struct {
	Bookmarked bool `json:"bookmarked"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookmarkToggler
type BookmarkToggler interface {
	GetEvent(id int) (*models.Event, error)
	ToggleBookmark(userID, eventID int) (bool, error)
}

func New(log *slog.Logger, bookmarks BookmarkToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookmark.toggleBookmark.New"

		log := log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))

			return
		}

		if _, err := bookmarks.GetEvent(eventID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle bookmark"))

			return
		}

		user, _ := mwauth.UserFromContext(r.Context())

		bookmarked, err := bookmarks.ToggleBookmark(user.ID, eventID)
		if err != nil {
			if errors.Is(err, storage.ErrBookmarkExists) {
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("bookmark already exists"))

				return
			}

			log.Error("failed to toggle bookmark", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to toggle bookmark"))

			return
		}

		metrics.IncBookmarkToggled(bookmarked)
		log.Info("bookmark toggled",
			slog.Int("event_id", eventID),
			slog.Int("user_id", user.ID),
			slog.Bool("bookmarked", bookmarked),
		)

		render.JSON(w, r, ToggleResponse{Bookmarked: bookmarked})
	}
}
