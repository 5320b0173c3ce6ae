package resetPassword

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"homeRental/internal/http-server/handlers/auth/resetPassword/mocks"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/services/identity"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(resetter PasswordResetter) http.Handler {
	logger := slogdiscard.NewDiscardLogger()

	router := chi.NewRouter()
	router.Get("/auth/reset-password/{token}", NewCheck(logger, resetter))
	router.Post("/auth/reset-password/{token}", New(logger, resetter))

	return router
}

func TestCheckHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		checkErr       error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Valid token",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Expired token",
			checkErr:       fmt.Errorf("services.identity.CheckResetToken: %w", identity.ErrInvalidToken),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"password reset token is invalid or has expired"}`,
		},
		{
			name:           "Storage failure",
			checkErr:       errors.New("database error"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to reset password"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resetter := mocks.NewPasswordResetter(t)
			resetter.On("CheckResetToken", mock.Anything, "tok123").Return(tc.checkErr)

			req := httptest.NewRequest(http.MethodGet, "/auth/reset-password/tok123", nil)
			rr := httptest.NewRecorder()

			newRouter(resetter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestRedeemHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.PasswordResetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"password":"brand-new"}`,
			mockSetup: func(m *mocks.PasswordResetter) {
				m.On("RedeemToken", mock.Anything, "tok123", "brand-new").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Short password",
			requestBody:    `{"password":"abc"}`,
			mockSetup:      func(m *mocks.PasswordResetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password must be at least 6 characters"}`,
		},
		{
			name:           "Password over 72 characters",
			requestBody:    `{"password":"` + strings.Repeat("x", 73) + `"}`,
			mockSetup:      func(m *mocks.PasswordResetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password must be at most 72 characters"}`,
		},
		{
			name:        "Password over 72 bytes",
			requestBody: `{"password":"` + strings.Repeat("é", 40) + `"}`,
			mockSetup: func(m *mocks.PasswordResetter) {
				m.On("RedeemToken", mock.Anything, "tok123", strings.Repeat("é", 40)).
					Return(fmt.Errorf("services.identity.RedeemToken: %w", identity.ErrPasswordTooLong))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"password must be at most 72 bytes"}`,
		},
		{
			name:        "Invalid token",
			requestBody: `{"password":"brand-new"}`,
			mockSetup: func(m *mocks.PasswordResetter) {
				m.On("RedeemToken", mock.Anything, "tok123", "brand-new").
					Return(fmt.Errorf("services.identity.RedeemToken: %w", identity.ErrInvalidToken))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"password reset token is invalid or has expired"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			resetter := mocks.NewPasswordResetter(t)
			tc.mockSetup(resetter)

			req := httptest.NewRequest(http.MethodPost, "/auth/reset-password/tok123", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			newRouter(resetter).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
