package ownerBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeRental/internal/http-server/handlers/orders/ownerBookings/mocks"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOwnerBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Success", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewOwnerBookingsLister(t)
		lister.On("ListForOwner", mock.Anything, "owner-1").Return([]models.BookingWithParties{
			{
				Booking:  models.Booking{ID: "b-1", Status: models.BookingStatusPending},
				Property: models.Property{ID: "p-1", Title: "Loft"},
				Renter:   models.PublicUser{ID: "renter-1", Name: "Rita", Email: "rita@example.com"},
			},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
		req = req.WithContext(auth.WithActor(req.Context(), "owner-1"))
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp BookingsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, "rita@example.com", resp.Bookings[0].Renter.Email)
		assert.Equal(t, "Loft", resp.Bookings[0].Property.Title)
	})

	t.Run("Owner without properties", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewOwnerBookingsLister(t)
		lister.On("ListForOwner", mock.Anything, "owner-2").Return([]models.BookingWithParties{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
		req = req.WithContext(auth.WithActor(req.Context(), "owner-2"))
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","bookings":[]}`, rr.Body.String())
	})

	t.Run("Unauthenticated", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewOwnerBookingsLister(t)

		req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewOwnerBookingsLister(t)
		lister.On("ListForOwner", mock.Anything, "owner-1").Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/orders/", nil)
		req = req.WithContext(auth.WithActor(req.Context(), "owner-1"))
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get bookings"}`, rr.Body.String())
	})
}
