package homeEvents

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

// homeEventCount is how many events the landing page shows.
const homeEventCount = 5

type HomeResponse struct {
	response.Response
	Events []models.Event `json:"events"`
	Flash  *flash.Message `json:"flash,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	ListFirstEvents(limit int) ([]models.Event, error)
}

func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.homeEvents.New"

		log := log.With(slog.String("op", op))

		records, err := events.ListFirstEvents(homeEventCount)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))

			return
		}

		render.JSON(w, r, HomeResponse{
			Response: response.OK(),
			Events:   records,
			Flash:    flash.Pop(w, r),
		})
	}
}
