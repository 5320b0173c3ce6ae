package listProperties

import (
	"context"
	"log/slog"
	"net/http"

	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"

	"github.com/go-chi/render"
)

type PropertiesResponse struct {
	response.Response
	Properties []models.Property `json:"properties"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PropertyLister
type PropertyLister interface {
	List(ctx context.Context) ([]models.Property, error)
}

func New(log *slog.Logger, properties PropertyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.property.listProperties.New"

		log := log.With(slog.String("op", op))

		list, err := properties.List(r.Context())
		if err != nil {
			log.Error("failed to get properties", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get properties"))
			return
		}

		if list == nil {
			list = []models.Property{}
		}

		log.Info("properties successfully received", slog.Int("count", len(list)))

		render.JSON(w, r, PropertiesResponse{
			Response:   response.OK(),
			Properties: list,
		})
	}
}
