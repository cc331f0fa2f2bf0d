package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/models"
)

type ProfileResponse struct {
	response.Response
	User models.User `json:"user"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, _ := mwauth.UserFromContext(r.Context())

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
