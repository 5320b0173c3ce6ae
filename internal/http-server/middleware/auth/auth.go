// Package auth resolves the session attached to a request into the id of the
// acting user. Protected routes sit behind RequireSession and read the actor
// with ActorID.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/session"

	"github.com/go-chi/render"
)

type ctxKey int

const (
	actorKey ctxKey = iota
	sessionKey
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionGetter
type SessionGetter interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

func RequireSession(log *slog.Logger, sessions SessionGetter, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/auth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			sessionID := SessionIDFromRequest(r, cookieName)
			if sessionID == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			actorID, err := sessions.Get(r.Context(), sessionID)
			if err != nil {
				if !errors.Is(err, session.ErrNotFound) {
					log.Error("failed to resolve session", sl.Err(err))
				}
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
				return
			}

			ctx := context.WithValue(r.Context(), actorKey, actorID)
			ctx = context.WithValue(ctx, sessionKey, sessionID)

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// SessionIDFromRequest prefers the session cookie and falls back to an
// "Authorization: Bearer <id>" header.
func SessionIDFromRequest(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	h := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}

	return ""
}

func ActorID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actorKey).(string)
	return id, ok && id != ""
}

func SessionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionKey).(string)
	return id, ok && id != ""
}

// WithActor returns a copy of ctx carrying actorID, as RequireSession does.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorKey, actorID)
}
