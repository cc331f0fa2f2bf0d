package logout

import (
	"log/slog"
	"net/http"

	"eventsphere/internal/http-server/middleware/mwauth"
)

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		http.SetCookie(w, &http.Cookie{
			Name:     mwauth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		})

		if user, ok := mwauth.UserFromContext(r.Context()); ok {
			log.Info("user logged out", slog.Int("user_id", user.ID))
		}

		http.Redirect(w, r, "/", http.StatusFound)
	}
}
