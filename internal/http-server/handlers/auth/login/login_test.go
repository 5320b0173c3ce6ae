package login

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeRental/internal/config"
	"homeRental/internal/http-server/handlers/auth/login/mocks"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"
	"homeRental/internal/services/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var sessionCfg = config.Session{CookieName: "session_id", TTL: 24 * time.Hour}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.Authenticator)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"email":"rita@example.com","password":"secret1"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", mock.Anything, "rita@example.com", "secret1").
					Return("sess-1", models.User{ID: "u-1", Email: "rita@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing password",
			requestBody:    `{"email":"rita@example.com"}`,
			mockSetup:      func(m *mocks.Authenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Password is a required field"}`,
		},
		{
			name:        "Invalid credentials",
			requestBody: `{"email":"rita@example.com","password":"wrong"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", mock.Anything, "rita@example.com", "wrong").
					Return("", models.User{}, fmt.Errorf("services.identity.Login: %w", identity.ErrInvalidCredentials))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid email or password"}`,
		},
		{
			name:        "Session store down",
			requestBody: `{"email":"rita@example.com","password":"secret1"}`,
			mockSetup: func(m *mocks.Authenticator) {
				m.On("Login", mock.Anything, "rita@example.com", "secret1").
					Return("", models.User{}, errors.New("redis: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log in"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			authenticator := mocks.NewAuthenticator(t)
			tc.mockSetup(authenticator)

			req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(tc.requestBody))
			rr := httptest.NewRecorder()

			New(logger, authenticator, sessionCfg).ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
				assert.Empty(t, rr.Result().Cookies())
				return
			}

			var resp Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, "sess-1", resp.SessionID)
			assert.Equal(t, "u-1", resp.User.ID)

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "session_id", cookies[0].Name)
			assert.Equal(t, "sess-1", cookies[0].Value)
			assert.True(t, cookies[0].HttpOnly)
			assert.Equal(t, 86400, cookies[0].MaxAge)
		})
	}
}
