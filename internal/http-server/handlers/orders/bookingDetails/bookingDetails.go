package bookingDetails

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/services/booking"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type DetailsResponse struct {
	response.Response
	Booking booking.Details `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=DetailsGetter
type DetailsGetter interface {
	GetDetails(ctx context.Context, bookingID, actorID string) (booking.Details, error)
}

func New(log *slog.Logger, bookings DetailsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.bookingDetails.New"

		log := log.With(slog.String("op", op))

		actorID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		bookingID := chi.URLParam(r, "id")
		if bookingID == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		details, err := bookings.GetDetails(r.Context(), bookingID, actorID)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrNotAuthorized):
				log.Warn("booking details requested by a third party",
					slog.String("booking_id", bookingID),
					slog.String("actor_id", actorID),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you are not a party to this booking"))
			default:
				log.Error("failed to get booking details", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booking details"))
			}
			return
		}

		render.JSON(w, r, DetailsResponse{
			Response: response.OK(),
			Booking:  details,
		})
	}
}
