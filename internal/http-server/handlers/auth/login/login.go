package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/crypto/bcrypt"

	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/jwt"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
	"eventsphere/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserGetter
type UserGetter interface {
	UserByEmail(email string) (*models.User, error)
}

func New(log *slog.Logger, secret string, tokenTTL time.Duration, users UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		user, err := users.UserByEmail(email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				flash.Set(w, flash.KindError, "Invalid Username")
				http.Redirect(w, r, "/login", http.StatusFound)

				return
			}

			log.Error("failed to look up user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))

			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
			flash.Set(w, flash.KindError, "Invalid Password")
			http.Redirect(w, r, "/login", http.StatusFound)

			return
		}

		token, err := jwt.NewToken(*user, secret, tokenTTL)
		if err != nil {
			log.Error("failed to mint session token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))

			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     mwauth.CookieName,
			Value:    token,
			Path:     "/",
			MaxAge:   int(tokenTTL.Seconds()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("user logged in", slog.Int("user_id", user.ID))

		http.Redirect(w, r, "/profile", http.StatusFound)
	}
}
