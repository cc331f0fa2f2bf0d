package createEvent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/metrics"
	"eventsphere/internal/models"
)

// datetimeLayout matches the datetime-local form inputs.
const datetimeLayout = "2006-01-02T15:04"

const maxImageSize = 10 << 20

type EventForm struct {
	Title       string `validate:"required"`
	Category    string `validate:"required"`
	Address     string `validate:"required"`
	City        string `validate:"required"`
	Description string `validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(e *models.Event) (int, error)
}

// ImageUploader pushes the poster to the external image host and hands back
// a usable URL no matter what.
type ImageUploader interface {
	UploadOrDefault(ctx context.Context, category, filename string, data []byte) string
}

func New(log *slog.Logger, events EventCreator, images ImageUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		if err := r.ParseMultipartForm(maxImageSize); err != nil {
			log.Error("failed to parse form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to parse form"))

			return
		}

		form := EventForm{
			Title:       r.PostFormValue("event-title"),
			Category:    r.PostFormValue("event-type"),
			Address:     r.PostFormValue("location-address"),
			City:        r.PostFormValue("location-city"),
			Description: r.PostFormValue("event-description"),
		}

		if err := validator.New().Struct(form); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid event form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		pincode, err := strconv.Atoi(r.PostFormValue("location-pincode"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid pincode"))

			return
		}

		startsAt, err := time.Parse(datetimeLayout, r.PostFormValue("start-date-time"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start date"))

			return
		}

		endsAt, err := time.Parse(datetimeLayout, r.PostFormValue("end-date-time"))
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid end date"))

			return
		}

		ticketPrice, err := strconv.Atoi(r.PostFormValue("ticket-price"))
		if err != nil || ticketPrice < 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid ticket price"))

			return
		}

		var imageData []byte
		var imageName string
		if file, header, err := r.FormFile("image-upload"); err == nil {
			imageData, err = io.ReadAll(file)
			file.Close()
			if err != nil {
				log.Error("failed to read image", sl.Err(err))
				imageData = nil
			}
			imageName = header.Filename
		}

		imageURL := images.UploadOrDefault(r.Context(), form.Category, imageName, imageData)

		user, _ := mwauth.UserFromContext(r.Context())

		eventID, err := events.CreateEvent(&models.Event{
			Title:       form.Title,
			City:        form.City,
			Address:     form.Address,
			Pincode:     pincode,
			Category:    form.Category,
			Description: form.Description,
			Image:       imageURL,
			StartsAt:    startsAt,
			EndsAt:      endsAt,
			TicketPrice: ticketPrice,
			UserID:      user.ID,
		})
		if err != nil {
			log.Error("failed to create event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create event"))

			return
		}

		metrics.IncEventCreated()
		log.Info("event created", slog.Int("event_id", eventID))

		http.Redirect(w, r, "/events", http.StatusFound)
	}
}
