package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventsphere/internal/config"
	"eventsphere/internal/http-server/handlers/auth/login"
	"eventsphere/internal/http-server/handlers/auth/logout"
	"eventsphere/internal/http-server/handlers/auth/profile"
	"eventsphere/internal/http-server/handlers/auth/signup"
	"eventsphere/internal/http-server/handlers/booking/buyTicket"
	"eventsphere/internal/http-server/handlers/booking/cancelTicket"
	"eventsphere/internal/http-server/handlers/booking/myTickets"
	"eventsphere/internal/http-server/handlers/booking/showTicket"
	"eventsphere/internal/http-server/handlers/bookmark/listBookmarks"
	"eventsphere/internal/http-server/handlers/bookmark/toggleBookmark"
	"eventsphere/internal/http-server/handlers/event/createEvent"
	"eventsphere/internal/http-server/handlers/event/deleteEvent"
	"eventsphere/internal/http-server/handlers/event/editTicketPrice"
	"eventsphere/internal/http-server/handlers/event/homeEvents"
	"eventsphere/internal/http-server/handlers/event/listEvents"
	"eventsphere/internal/http-server/handlers/event/searchEvents"
	"eventsphere/internal/http-server/handlers/event/viewEvent"
	"eventsphere/internal/http-server/handlers/organizer/analyticsDashboard"
	"eventsphere/internal/http-server/handlers/organizer/eventAttendees"
	"eventsphere/internal/http-server/handlers/organizer/eventBookmarks"
	"eventsphere/internal/http-server/handlers/organizer/exportAnalytics"
	"eventsphere/internal/http-server/handlers/organizer/myListedEvents"
	"eventsphere/internal/http-server/middleware/mwauth"
	"eventsphere/internal/http-server/middleware/mwlogger"
	"eventsphere/internal/imagehost"
	"eventsphere/internal/lib/logger/handlers/slogpretty"
	"eventsphere/internal/lib/logger/sl"
	"eventsphere/internal/metrics"
	"eventsphere/internal/storage/postgres"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting eventsphere", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	metrics.Register()

	images := imagehost.New(log, cfg.ImageHost.Endpoint, cfg.ImageHost.Key)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwauth.New(log, cfg.Auth.Secret, storage))

	fs := http.FileServer(http.Dir("./static/"))
	router.Handle("/static/*", http.StripPrefix("/static/", fs))

	router.Handle("/metrics", promhttp.Handler())

	router.Get("/", homeEvents.New(log, storage))
	router.Get("/events", listEvents.New(log, storage))
	router.Get("/view-event", viewEvent.New(log, storage))
	router.Get("/search", searchEvents.New(log, storage))

	router.Post("/signup", signup.New(log, storage))
	router.Post("/login", login.New(log, cfg.Auth.Secret, cfg.Auth.TokenTTL, storage))
	router.Post("/logout", logout.New(log))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.RequireUser)

		r.Get("/profile", profile.New(log))

		r.Post("/create-event", createEvent.New(log, storage, images))
		r.Post("/delete-event/{id}", deleteEvent.New(log, storage))
		r.Post("/edit-ticket-price/{id}", editTicketPrice.New(log, storage))

		r.Get("/buy-ticket", buyTicket.New(log, storage))
		r.Get("/my-tickets", myTickets.New(log, storage))
		r.Get("/ticket", showTicket.New(log, storage))
		r.Post("/cancel-ticket/{id}", cancelTicket.New(log, storage))

		r.Post("/bookmark/{id}", toggleBookmark.New(log, storage))
		r.Get("/bookmarks", listBookmarks.New(log, storage))

		r.Get("/my-listed-events", myListedEvents.New(log, storage))
		r.Get("/analytics-dashboard", analyticsDashboard.New(log, storage))
		r.Get("/analytics-export", exportAnalytics.New(log, storage))
		r.Get("/event-attendees/{id}", eventAttendees.New(log, storage))
		r.Get("/event-bookmarks/{id}", eventBookmarks.New(log, storage))
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
