package forgotPassword

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// GenericMessage is returned for every well-formed request, whether or not the
// email belongs to an account.
const GenericMessage = "If an account with that email exists, a password reset link has been sent."

type Request struct {
	Email string `json:"email" validate:"required,email"`
}

type Response struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ResetTokenIssuer
type ResetTokenIssuer interface {
	IssueResetToken(ctx context.Context, email string) error
}

func New(log *slog.Logger, issuer ResetTokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.forgotPassword.New"

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

		if err := issuer.IssueResetToken(r.Context(), req.Email); err != nil {
			log.Error("failed to issue reset token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to process password reset request"))
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  GenericMessage,
		})
	}
}
