package signup

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"
	"homeRental/internal/services/identity"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=renter owner"`
}

type Response struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	Signup(ctx context.Context, name, email, password string, role models.Role) (models.User, error)
}

func New(log *slog.Logger, users UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

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
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		user, err := users.Signup(r.Context(), req.Name, req.Email, req.Password, models.Role(req.Role))
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrEmailTaken):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email already used"))
			case errors.Is(err, identity.ErrPasswordTooLong):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(identity.ErrPasswordTooLong.Error()))
			case errors.Is(err, identity.ErrInvalidRole):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid role"))
			default:
				log.Error("failed to sign up", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to sign up"))
			}
			return
		}

		log.Info("user signed up", slog.String("user_id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
		})
	}
}
