package logout

import (
	"context"
	"log/slog"
	"net/http"

	"homeRental/internal/config"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCloser
type SessionCloser interface {
	Logout(ctx context.Context, sessionID string) error
}

func New(log *slog.Logger, sessions SessionCloser, cfg config.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		sessionID, ok := auth.SessionID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		if err := sessions.Logout(r.Context(), sessionID); err != nil {
			log.Error("failed to log out", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log out"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cfg.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   cfg.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		render.JSON(w, r, response.OK())
	}
}
