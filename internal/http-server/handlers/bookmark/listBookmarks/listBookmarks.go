package listBookmarks

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

type BookmarksResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookmarksLister
type BookmarksLister interface {
	ListBookmarkedEvents(userID int) ([]models.Event, error)
}

func New(log *slog.Logger, bookmarks BookmarksLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.bookmark.listBookmarks.New"

		log := log.With(slog.String("op", op))

		user, _ := mwauth.UserFromContext(r.Context())

		events, err := bookmarks.ListBookmarkedEvents(user.ID)
		if err != nil {
			log.Error("failed to get bookmarked events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookmarks"))

			return
		}

		render.JSON(w, r, BookmarksResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
