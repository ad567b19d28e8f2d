package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"hotelbooker/internal/config"
	"hotelbooker/internal/http-server/handlers/booking/createBooking"
	"hotelbooker/internal/http-server/handlers/booking/getBooking"
	"hotelbooker/internal/http-server/handlers/booking/replaceBooking"
	"hotelbooker/internal/http-server/handlers/hotels/getAllHotels"
	"hotelbooker/internal/http-server/handlers/hotels/getHotel"
	"hotelbooker/internal/http-server/middleware/auth"
	"hotelbooker/internal/http-server/middleware/mwlogger"
	"hotelbooker/internal/lib/logger/handlers/slogpretty"
	"hotelbooker/internal/lib/logger/sl"
	"hotelbooker/internal/service/booking"
	"hotelbooker/internal/service/hotels"
	"hotelbooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting hotel booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	bookingService := booking.New(storage)
	hotelsService := hotels.New(storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	authMiddleware := auth.New(log, cfg.Auth.Secret)

	router.Route("/booking", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", getBooking.New(log, bookingService))
		r.Post("/", createBooking.New(log, bookingService))
		r.Put("/{bookingId}", replaceBooking.New(log, bookingService))
	})

	router.Route("/hotels", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", getAllHotels.New(log, hotelsService))
		r.Get("/{hotelId}", getHotel.New(log, hotelsService))
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

	if err = srv.Shutdown(context.Background()); err != nil {
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
