package listNotifications

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeRental/internal/http-server/handlers/notification/listNotifications/mocks"
	"homeRental/internal/http-server/middleware/auth"
	"homeRental/internal/lib/logger/handlers/slogdiscard"
	"homeRental/internal/models"
	"homeRental/internal/storage/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListNotificationsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	t.Run("Unauthenticated", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewNotificationLister(t)

		rr := httptest.NewRecorder()
		New(logger, lister).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/notifications", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Storage failure", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewNotificationLister(t)
		lister.On("NotificationsByReceiver", mock.Anything, "user-1").Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		req = req.WithContext(auth.WithActor(req.Context(), "user-1"))
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"status":"Error","error":"failed to get notifications"}`, rr.Body.String())
	})

	t.Run("Empty inbox", func(t *testing.T) {
		t.Parallel()

		lister := mocks.NewNotificationLister(t)
		lister.On("NotificationsByReceiver", mock.Anything, "user-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
		req = req.WithContext(auth.WithActor(req.Context(), "user-1"))
		rr := httptest.NewRecorder()

		New(logger, lister).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"OK","notifications":[]}`, rr.Body.String())
	})
}

func TestListNotificationsNewestFirst(t *testing.T) {
	t.Parallel()

	store := memory.New()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i, msg := range []string{"first", "second", "third"} {
		require.NoError(t, store.SaveNotification(ctx, models.Notification{
			ID:         msg,
			ReceiverID: "user-1",
			Message:    msg,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, store.SaveNotification(ctx, models.Notification{ID: "other", ReceiverID: "user-2"}))

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	req = req.WithContext(auth.WithActor(req.Context(), "user-1"))
	rr := httptest.NewRecorder()

	New(slogdiscard.NewDiscardLogger(), store).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp NotificationsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 3)
	assert.Equal(t, "third", resp.Notifications[0].Message)
	assert.Equal(t, "first", resp.Notifications[2].Message)
}
