package createBooking

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

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(ctx context.Context, renterID, propertyID string) (models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.createBooking.New"

		log := log.With(slog.String("op", op))

		renterID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		propertyID := chi.URLParam(r, "propertyId")
		if propertyID == "" {
			log.Error("property id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("property id is required"))
			return
		}

		log = log.With(slog.String("property_id", propertyID), slog.String("renter_id", renterID))

		b, err := bookings.Create(r.Context(), renterID, propertyID)
		if err != nil {
			switch {
			case errors.Is(err, booking.ErrNotFound):
				log.Info("property not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("property not found"))
			case errors.Is(err, booking.ErrDuplicateBooking):
				log.Info("duplicate booking", sl.Err(err))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you already have a booking for this property"))
			default:
				log.Error("failed to create booking", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.String("booking_id", b.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  b,
		})
	}
}
