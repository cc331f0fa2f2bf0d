// Package mwauth resolves the session cookie into the current user and
// gates the routes that need one.
package mwauth

import (
	"context"
	"log/slog"
	"net/http"

	"eventsphere/internal/lib/jwt"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/models"
)

// CookieName holds the signed session token.
const CookieName = "session"

const loginPath = "/login"

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByID(id int) (*models.User, error)
}

// New resolves the session cookie, if any, and stores the user on the
// request context. Requests without a valid session pass through anonymous.
func New(log *slog.Logger, secret string, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := jwt.Parse(cookie.Value, secret)
			if err != nil {
				log.Debug("rejected session token", sl.Err(err))
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.UserByID(claims.UserID)
			if err != nil {
				log.Debug("session user not found", slog.Int("user_id", claims.UserID))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, *user)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireUser redirects anonymous requests to the login page.
func RequireUser(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			http.Redirect(w, r, loginPath, http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	}

	return http.HandlerFunc(fn)
}

// UserFromContext returns the authenticated user, when there is one.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(models.User)
	return user, ok
}

// ContextWithUser is used by handler tests to simulate a logged-in user.
func ContextWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}
