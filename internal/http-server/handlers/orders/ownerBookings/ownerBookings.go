package ownerBookings

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
	Bookings []models.BookingWithParties `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerBookingsLister
type OwnerBookingsLister interface {
	ListForOwner(ctx context.Context, ownerID string) ([]models.BookingWithParties, error)
}

func New(log *slog.Logger, bookings OwnerBookingsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.ownerBookings.New"

		log := log.With(slog.String("op", op))

		ownerID, ok := auth.ActorID(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication required"))
			return
		}

		list, err := bookings.ListForOwner(r.Context(), ownerID)
		if err != nil {
			log.Error("failed to list owner bookings", slog.String("owner_id", ownerID), sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if list == nil {
			list = []models.BookingWithParties{}
		}

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
