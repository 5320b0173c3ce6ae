package getProperty

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"
	"homeRental/internal/services/property"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type PropertyResponse struct {
	response.Response
	Property models.Property `json:"property"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PropertyGetter
type PropertyGetter interface {
	Get(ctx context.Context, id string) (models.Property, error)
}

func New(log *slog.Logger, properties PropertyGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.property.getProperty.New"

		log := log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("property id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("property id is required"))
			return
		}

		p, err := properties.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, property.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("property not found"))
				return
			}

			log.Error("failed to get property", slog.String("property_id", id), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get property"))
			return
		}

		render.JSON(w, r, PropertyResponse{
			Response: response.OK(),
			Property: p,
		})
	}
}
