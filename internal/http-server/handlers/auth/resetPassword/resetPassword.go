package resetPassword

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/services/identity"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const invalidTokenMsg = "password reset token is invalid or has expired"

type Request struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PasswordResetter
type PasswordResetter interface {
	CheckResetToken(ctx context.Context, token string) error
	RedeemToken(ctx context.Context, token, newPassword string) error
}

// NewCheck tells a client whether the token in the link can still be used.
func NewCheck(log *slog.Logger, resetter PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.resetPassword.NewCheck"

		log := log.With(slog.String("op", op))

		err := resetter.CheckResetToken(r.Context(), chi.URLParam(r, "token"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		render.JSON(w, r, response.OK())
	}
}

func New(log *slog.Logger, resetter PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.resetPassword.New"

		log := log.With(slog.String("op", op))

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		err := resetter.RedeemToken(r.Context(), chi.URLParam(r, "token"), req.Password)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		log.Info("password reset completed")

		render.JSON(w, r, response.OK())
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, identity.ErrInvalidToken):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(invalidTokenMsg))
		return
	case errors.Is(err, identity.ErrPasswordTooLong):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(identity.ErrPasswordTooLong.Error()))
		return
	}

	log.Error("failed to reset password", sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("failed to reset password"))
}
