package exportAnalytics

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"eventsphere/internal/analytics"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/xlsx"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatsProvider
type StatsProvider interface {
	ListOwnerEventStats(userID int) ([]models.EventStat, error)
}

// New streams the organizer's analytics as a spreadsheet attachment.
func New(log *slog.Logger, stats StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.organizer.exportAnalytics.New"

		log := log.With(slog.String("op", op))

		user, _ := mwauth.UserFromContext(r.Context())

		rows, err := stats.ListOwnerEventStats(user.ID)
		if err != nil {
			log.Error("failed to get event stats", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build export"))

			return
		}

		report := analytics.BuildReport(rows)

		f, err := xlsx.BuildReport(user.Name, report)
		if err != nil {
			log.Error("failed to build workbook", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build export"))

			return
		}
		defer f.Close()

		filename := "analytics_" + time.Now().Format("2006-01-02") + ".xlsx"

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

		if err := f.Write(w); err != nil {
			log.Error("failed to write workbook", sl.Err(err))
		}
	}
}
