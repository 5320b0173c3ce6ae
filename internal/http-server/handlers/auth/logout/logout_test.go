package logout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"homeRental/internal/config"
	"homeRental/internal/http-server/handlers/auth/logout/mocks"
	"homeRental/internal/http-server/middleware/auth"
	authmocks "homeRental/internal/http-server/middleware/auth/mocks"
	"homeRental/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	cfg := config.Session{CookieName: "session_id"}

	testCases := []struct {
		name           string
		logoutErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Session store down",
			logoutErr:      errors.New("redis: connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to log out"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := authmocks.NewSessionGetter(t)
			getter.On("Get", mock.Anything, "sess-1").Return("user-1", nil)

			closer := mocks.NewSessionCloser(t)
			closer.On("Logout", mock.Anything, "sess-1").Return(tc.logoutErr)

			handler := auth.RequireSession(logger, getter, cfg.CookieName)(New(logger, closer, cfg))

			req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
			req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess-1"})
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())

			if tc.logoutErr == nil {
				cookies := rr.Result().Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, "session_id", cookies[0].Name)
				assert.Empty(t, cookies[0].Value)
				assert.Less(t, cookies[0].MaxAge, 0)
			}
		})
	}
}

func TestLogoutWithoutSession(t *testing.T) {
	t.Parallel()

	closer := mocks.NewSessionCloser(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), closer, config.Session{CookieName: "session_id"}).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
