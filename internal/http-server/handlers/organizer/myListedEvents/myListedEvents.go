package myListedEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

type ListedEventsResponse struct {
	response.Response
	Events []models.EventWithStats `json:"events_with_stats"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerEventsLister
type OwnerEventsLister interface {
	ListOwnerEventsWithStats(userID int) ([]models.EventWithStats, error)
}

func New(log *slog.Logger, events OwnerEventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.myListedEvents.New"

		log := log.With(slog.String("op", op))

		user, _ := mwauth.UserFromContext(r.Context())

		records, err := events.ListOwnerEventsWithStats(user.ID)
		if err != nil {
			log.Error("failed to get listed events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get listed events"))

			return
		}

		log.Info("listed events retrieved", slog.Int("count", len(records)))

		render.JSON(w, r, ListedEventsResponse{
			Response: response.OK(),
			Events:   records,
		})
	}
}
