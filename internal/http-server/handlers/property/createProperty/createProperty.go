package createProperty

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"
	"homeRental/internal/services/property"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	Title         string `json:"title" validate:"required"`
	Description   string `json:"description,omitempty"`
	Location      string `json:"location,omitempty"`
	PricePerNight int64  `json:"price_per_night" validate:"gte=0"`
}

type Response struct {
	response.Response
	Property models.Property `json:"property"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PropertyCreator
type PropertyCreator interface {
	Create(ctx context.Context, ownerID string, in property.CreateInput) (models.Property, error)
}

func New(log *slog.Logger, properties PropertyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.property.createProperty.New"

		log := log.With(slog.String("op", op))

		ownerID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		var req Request

		if err := render.DecodeJSON(r.Body, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Debug("request body decoded", slog.Any("request", req))

		if err := validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Info("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		p, err := properties.Create(r.Context(), ownerID, property.CreateInput{
			Title:         req.Title,
			Description:   req.Description,
			Location:      req.Location,
			PricePerNight: req.PricePerNight,
		})
		if err != nil {
			switch {
			case errors.Is(err, property.ErrEmptyTitle):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(property.ErrEmptyTitle.Error()))
			case errors.Is(err, property.ErrNegativePrice):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error(property.ErrNegativePrice.Error()))
			case errors.Is(err, property.ErrOwnerNotFound):
				log.Warn("session refers to a missing user", slog.String("owner_id", ownerID))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authentication required"))
			default:
				log.Error("failed to create property", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create property"))
			}
			return
		}

		log.Info("property created", slog.String("property_id", p.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Property: p,
		})
	}
}
