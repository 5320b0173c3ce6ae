package renterBookings

import (
	"context"
	"log/slog"
	"net/http"

	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/api/response"
	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingWithProperty `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RenterBookingsLister
type RenterBookingsLister interface {
	ListForRenter(ctx context.Context, renterID string) ([]models.BookingWithProperty, error)
}

func New(log *slog.Logger, bookings RenterBookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.renterBookings.New"

		log := log.With(slog.String("op", op))

		renterID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := bookings.ListForRenter(r.Context(), renterID)
		if err != nil {
			log.Error("failed to list renter bookings", slog.String("renter_id", renterID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if list == nil {
			list = []models.BookingWithProperty{}
		}

		log.Debug("renter bookings listed", slog.Int("count", len(list)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
