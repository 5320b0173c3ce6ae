package createBooking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeRental/internal/http-server/handlers/orders/createBooking/mocks"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"
	"homeRental/internal/services/booking"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	created := models.Booking{
		ID:         "b-1",
		PropertyID: "p-1",
		RenterID:   "renter-1",
		Status:     models.BookingStatusPending,
		CreatedAt:  time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name           string
		actorID        string
		mockSetup      func(m *mocks.BookingCreator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			actorID: "renter-1",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, "renter-1", "p-1").Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Unauthenticated",
			mockSetup:      func(m *mocks.BookingCreator) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:    "Property not found",
			actorID: "renter-1",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, "renter-1", "p-1").
					Return(models.Booking{}, fmt.Errorf("services.booking.Create: %w", booking.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"property not found"}`,
		},
		{
			name:    "Duplicate booking",
			actorID: "renter-1",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, "renter-1", "p-1").
					Return(models.Booking{}, fmt.Errorf("services.booking.Create: %w", booking.ErrDuplicateBooking))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"you already have a booking for this property"}`,
		},
		{
			name:    "Internal server error",
			actorID: "renter-1",
			mockSetup: func(m *mocks.BookingCreator) {
				m.On("Create", mock.Anything, "renter-1", "p-1").Return(models.Booking{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			creator := mocks.NewBookingCreator(t)
			tc.mockSetup(creator)

			router := chi.NewRouter()
			router.Post("/orders/bookings/create/{propertyId}", New(logger, creator))

			req := httptest.NewRequest(http.MethodPost, "/orders/bookings/create/p-1", nil)
			if tc.actorID != "" {
				req = req.WithContext(auth.WithActor(req.Context(), tc.actorID))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				return
			}

			var resp BookingResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "OK", resp.Status)
			assert.Equal(t, created.ID, resp.Booking.ID)
			assert.Equal(t, models.BookingStatusPending, resp.Booking.Status)
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	creator := mocks.NewBookingCreator(t)
	handler := New(slogdiscard.NewDiscardLogger(), creator)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req = req.WithContext(auth.WithActor(context.Background(), "renter-1"))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"property id is required"}`, rr.Body.String())
}
