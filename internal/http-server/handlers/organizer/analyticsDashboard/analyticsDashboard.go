package analyticsDashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/analytics"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

// noDataMessage is shown to organizers with no events yet.
const noDataMessage = "No data to display the results"

type DashboardResponse struct {
	response.Response
	analytics.Report
	Message string `json:"message,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	ListOwnerEventStats(userID int) ([]models.EventStat, error)
}

func New(log *slog.Logger, stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.analyticsDashboard.New"

		log := log.With(slog.String("op", op))

		user, _ := mwauth.UserFromContext(r.Context())

		rows, err := stats.ListOwnerEventStats(user.ID)
		if err != nil {
			log.Error("failed to get event stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build analytics"))

			return
		}

		report := analytics.BuildReport(rows)

		resp := DashboardResponse{
			Response: response.OK(),
			Report:   report,
		}
		if !report.HasData {
			resp.Message = noDataMessage
		}

		log.Info("analytics built",
			slog.Int("events", len(rows)),
			slog.Int("total_revenue", report.TotalRevenue),
		)

		render.JSON(w, r, resp)
	}
}
