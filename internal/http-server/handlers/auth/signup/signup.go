package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"eventsphere/internal/lib/api/response"
	"eventsphere/internal/lib/flash"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/storage"
)

type SignupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserCreator
type UserCreator interface {
	CreateUser(email, passwordHash, name string) (int, error)
}

func New(log *slog.Logger, users UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

		log := log.With(slog.String("op", op))

		form := SignupForm{
			Name:     r.PostFormValue("name"),
			Email:    r.PostFormValue("email"),
			Password: r.PostFormValue("password"),
		}

		if err := validator.New().Struct(form); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid signup form", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create account"))

			return
		}

		id, err := users.CreateUser(form.Email, string(hash), form.Name)
		if err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				log.Info("email already registered", slog.String("email", form.Email))
				flash.Set(w, flash.KindError, "Email already registered.")
				http.Redirect(w, r, "/signup", http.StatusFound)

				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create account"))

			return
		}

		log.Info("user registered", slog.Int("user_id", id))

		http.Redirect(w, r, "/login", http.StatusFound)
	}
}
