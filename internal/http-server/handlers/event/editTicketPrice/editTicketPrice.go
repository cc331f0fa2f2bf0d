package editTicketPrice

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

// PriceResponse mirrors the inline-edit contract of the listing page.
type PriceResponse struct {
	Success  bool   `json:"success"`
	NewPrice int    `json:"new_price"`
	Error    string `json:"error,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PriceEditor
type PriceEditor interface {
	OwnedEvent(eventID, userID int) (*models.Event, error)
	UpdateTicketPrice(eventID, price int) error
}

func New(log *slog.Logger, events PriceEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.editTicketPrice.New"

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
		if _, err := events.OwnedEvent(eventID, user.ID); err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))

				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update price"))

			return
		}

		priceStr := r.PostFormValue("ticket_price")
		if priceStr == "" {
			render.JSON(w, r, PriceResponse{Success: false})
			return
		}

		price, err := strconv.Atoi(priceStr)
		if err != nil || price < 0 {
			render.JSON(w, r, PriceResponse{Success: false, Error: "Invalid price"})
			return
		}

		if err := events.UpdateTicketPrice(eventID, price); err != nil {
			log.Error("failed to update price", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update price"))

			return
		}

		log.Info("ticket price updated", slog.Int("event_id", eventID), slog.Int("price", price))

		render.JSON(w, r, PriceResponse{Success: true, NewPrice: price})
	}
}
