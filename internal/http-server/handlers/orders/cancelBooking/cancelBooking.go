package cancelBooking

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"
	"homeRental/internal/services/booking"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	Cancel(ctx context.Context, bookingID, actorID string) (models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.cancelBooking.New"

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

		log = log.With(slog.String("booking_id", bookingID), slog.String("actor_id", actorID))

		b, err := bookings.Cancel(r.Context(), bookingID, actorID)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrNotFound):
				log.Info("booking not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrNotAuthorized):
				log.Warn("cancel not authorized")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the renter can cancel this booking"))
			case errors.Is(err, booking.ErrInvalidTransition):
				log.Info("booking is not pending", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("only pending bookings can be cancelled"))
			default:
				log.Error("failed to cancel booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to cancel booking"))
			}
			return
		}

		log.Info("booking cancelled")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
