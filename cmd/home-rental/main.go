package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homeRental/internal/config"
	"homeRental/internal/http-server/handlers/auth/forgotPassword"
	"homeRental/internal/http-server/handlers/auth/login"
	"homeRental/internal/http-server/handlers/auth/logout"
	"homeRental/internal/http-server/handlers/auth/resetPassword"
	"homeRental/internal/http-server/handlers/auth/signup"
	"homeRental/internal/http-server/handlers/notification/listNotifications"
	"homeRental/internal/http-server/handlers/orders/acceptBooking"
	"homeRental/internal/http-server/handlers/orders/bookingDetails"
	"homeRental/internal/http-server/handlers/orders/cancelBooking"
	"homeRental/internal/http-server/handlers/orders/createBooking"
	"homeRental/internal/http-server/handlers/orders/ownerBookings"
	"homeRental/internal/http-server/handlers/orders/rejectBooking"
	"homeRental/internal/http-server/handlers/orders/renterBookings"
	"homeRental/internal/http-server/handlers/property/createProperty"
	"homeRental/internal/http-server/handlers/property/getProperty"
	"homeRental/internal/http-server/handlers/property/listProperties"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/http-server/middleware/mwlogger"
	"homeRental/internal/lib/logger/handlers/slogpretty"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/mailer"
	"homeRental/internal/services/booking"
	"homeRental/internal/services/identity"
	"homeRental/internal/services/property"
	"homeRental/internal/session"
	"homeRental/internal/storage/memory"
	"homeRental/internal/storage/postgres"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// Storage is everything the services and read-only handlers need from a backend.
type Storage interface {
	booking.Storage
	identity.Storage
	property.Storage
	listNotifications.NotificationLister
	Close() error
}

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting home rental", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := setupStorage(cfg)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	if cfg.Redis.Embedded {
		if !embeddedRedisAllowed(cfg.Env) {
			log.Error("embedded redis is only available with env=local", slog.String("env", cfg.Env))
			os.Exit(1)
		}

		mr, err := miniredis.Run()
		if err != nil {
			log.Error("failed to start embedded redis", sl.Err(err))
			os.Exit(1)
		}
		defer mr.Close()

		cfg.Redis.Address = mr.Addr()
		log.Warn("using embedded redis, sessions are lost on restart", slog.String("address", mr.Addr()))
	}

	redisClient, err := session.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", sl.Err(err))
		os.Exit(1)
	}

	sessions := session.NewRedisStore(redisClient, cfg.Session.TTL)

	mail, err := mailer.New(log, cfg.Mailer)
	if err != nil {
		log.Error("failed to init mailer", sl.Err(err))
		os.Exit(1)
	}

	bookings := booking.New(log, storage, mail)
	users := identity.New(log, storage, sessions, mail, cfg.App.BaseURL)
	properties := property.New(log, storage)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	requireSession := auth.RequireSession(log, sessions, cfg.Session.CookieName)

	router.Route("/auth", func(r chi.Router) {
		r.Post("/signup", signup.New(log, users))
		r.Post("/login", login.New(log, users, cfg.Session))
		r.With(requireSession).Post("/logout", logout.New(log, users, cfg.Session))
		r.Post("/forgot-password", forgotPassword.New(log, users))
		r.Get("/reset-password/{token}", resetPassword.NewCheck(log, users))
		r.Post("/reset-password/{token}", resetPassword.New(log, users))
	})

	router.Route("/properties", func(r chi.Router) {
		r.Get("/", listProperties.New(log, properties))
		r.Get("/{id}", getProperty.New(log, properties))
		r.With(requireSession).Post("/", createProperty.New(log, properties))
	})

	router.Route("/orders", func(r chi.Router) {
		r.Use(requireSession)

		r.Get("/", ownerBookings.New(log, bookings))
		r.Get("/my", renterBookings.New(log, bookings))
		r.Get("/details/{id}", bookingDetails.New(log, bookings))
		r.Post("/bookings/create/{propertyId}", createBooking.New(log, bookings))
		r.Post("/{id}/remove", cancelBooking.New(log, bookings))
		r.Post("/{id}/reject", rejectBooking.New(log, bookings))
		r.Post("/{id}/accept", acceptBooking.New(log, bookings))
	})

	router.With(requireSession).Get("/notifications", listNotifications.New(log, storage))

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

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	defer stopPurge()

	go func() {
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				n, err := users.PurgeExpiredResetTokens(purgeCtx)
				if err != nil {
					log.Error("failed to purge expired reset tokens", sl.Err(err))
					continue
				}
				if n > 0 {
					log.Info("expired reset tokens purged", slog.Int64("count", n))
				}
			case <-purgeCtx.Done():
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	stopPurge()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = redisClient.Close(); err != nil {
		log.Error("failed to close redis connection", sl.Err(err))
	}

	if err = storage.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

// embeddedRedisAllowed keeps the in-process redis out of dev and prod, where
// sessions must survive restarts.
func embeddedRedisAllowed(env string) bool {
	return env == envLocal
}

func setupStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Storage.Kind {
	case "postgres":
		return postgres.InitDB(&cfg.Database)
	case "memory":
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", cfg.Storage.Kind)
	}
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
