package renterBookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeRental/internal/http-server/handlers/orders/renterBookings/mocks"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRenterBookingsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		actorID        string
		mockSetup      func(m *mocks.RenterBookingsLister)
		expectedStatus int
		expectedBody   string
		expectedCount  int
	}{
		{
			name:    "Success",
			actorID: "renter-1",
			mockSetup: func(m *mocks.RenterBookingsLister) {
				m.On("ListForRenter", mock.Anything, "renter-1").Return([]models.BookingWithProperty{
					{Booking: models.Booking{ID: "b-2"}, Property: models.Property{Title: "Cabin"}},
					{Booking: models.Booking{ID: "b-1"}, Property: models.Property{Title: "Loft"}},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:    "No bookings",
			actorID: "renter-1",
			mockSetup: func(m *mocks.RenterBookingsLister) {
				m.On("ListForRenter", mock.Anything, "renter-1").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","bookings":[]}`,
		},
		{
			name:           "Unauthenticated",
			mockSetup:      func(m *mocks.RenterBookingsLister) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"authentication required"}`,
		},
		{
			name:    "Internal server error",
			actorID: "renter-1",
			mockSetup: func(m *mocks.RenterBookingsLister) {
				m.On("ListForRenter", mock.Anything, "renter-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get bookings"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			lister := mocks.NewRenterBookingsLister(t)
			tc.mockSetup(lister)

			req := httptest.NewRequest(http.MethodGet, "/orders/my", nil)
			if tc.actorID != "" {
				req = req.WithContext(auth.WithActor(req.Context(), tc.actorID))
			}

			rr := httptest.NewRecorder()
			New(logger, lister).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				return
			}

			var resp BookingsResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			require.Len(t, resp.Bookings, tc.expectedCount)
			assert.Equal(t, "b-2", resp.Bookings[0].ID)
			assert.Equal(t, "Cabin", resp.Bookings[0].Property.Title)
		})
	}
}
