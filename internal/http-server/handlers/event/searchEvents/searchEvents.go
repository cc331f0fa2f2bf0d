package searchEvents

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

// dateLayout matches the date form input.
const dateLayout = "2006-01-02"

type SearchResponse struct {
	response.Response
	Events     []models.Event `json:"events"`
	Query      string         `json:"search_query"`
	Date       string         `json:"search_date"`
	SearchType string         `json:"search_type"`
	Warning    string         `json:"warning,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSearcher
type EventSearcher interface {
	SearchEvents(query, searchType string, day *time.Time) ([]models.Event, error)
}

func New(log *slog.Logger, events EventSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.searchEvents.New"

		log := log.With(slog.String("op", op))

		query := strings.TrimSpace(r.URL.Query().Get("query"))
		dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
		searchType := strings.TrimSpace(r.URL.Query().Get("search-type"))

		// nothing to search for
		if query == "" && dateStr == "" {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		var warning string
		var day *time.Time
		if dateStr != "" {
			parsed, err := time.Parse(dateLayout, dateStr)
			if err != nil {
				// the text filter still applies
				warning = "Invalid date format."
			} else {
				day = &parsed
			}
		}

		records, err := events.SearchEvents(query, searchType, day)
		if err != nil {
			log.Error("failed to search events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search events"))

			return
		}

		log.Info("search completed",
			slog.String("query", query),
			slog.String("search_type", searchType),
			slog.Int("count", len(records)),
		)

		render.JSON(w, r, SearchResponse{
			Response:   response.OK(),
			Events:     records,
			Query:      query,
			Date:       dateStr,
			SearchType: searchType,
			Warning:    warning,
		})
	}
}
