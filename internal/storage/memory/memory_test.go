package memory

import (
	"context"
	"testing"
	"time"

	"homeRental/internal/models"
	"homeRental/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) *Storage {
	t.Helper()

	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveUser(ctx, models.User{ID: "u1", Email: "u1@example.com", Name: "U1"}))
	require.NoError(t, s.SaveUser(ctx, models.User{ID: "u2", Email: "u2@example.com", Name: "U2"}))
	require.NoError(t, s.SaveProperty(ctx, models.Property{ID: "p1", OwnerID: "u1", Title: "Loft"}))

	return s
}

func TestSaveUserDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := seed(t)

	err := s.SaveUser(context.Background(), models.User{ID: "u3", Email: "u1@example.com"})
	assert.ErrorIs(t, err, storage.ErrUserExists)
}

func TestSavePropertyUnknownOwner(t *testing.T) {
	t.Parallel()

	s := seed(t)

	err := s.SaveProperty(context.Background(), models.Property{ID: "p2", OwnerID: "ghost"})
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestResetTokenLifecycle(t *testing.T) {
	t.Parallel()

	s := seed(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.SetResetToken(ctx, "u1", "tok", now.Add(15*time.Minute)))

	u, err := s.UserByResetToken(ctx, "tok", now.Add(14*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	_, err = s.UserByResetToken(ctx, "tok", now.Add(15*time.Minute))
	assert.ErrorIs(t, err, storage.ErrResetTokenNotFound)

	_, err = s.UserByResetToken(ctx, "", now)
	assert.ErrorIs(t, err, storage.ErrResetTokenNotFound)

	require.NoError(t, s.UpdatePassword(ctx, "u1", "new-hash"))

	u, err = s.UserByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", u.PasswordHash)
	assert.Empty(t, u.ResetToken)
	assert.Nil(t, u.ResetTokenExpire)
}

func TestClearExpiredResetTokens(t *testing.T) {
	t.Parallel()

	s := seed(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.SetResetToken(ctx, "u1", "old", now.Add(-time.Minute)))
	require.NoError(t, s.SetResetToken(ctx, "u2", "fresh", now.Add(time.Minute)))

	n, err := s.ClearExpiredResetTokens(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	u1, _ := s.UserByID(ctx, "u1")
	assert.Empty(t, u1.ResetToken)

	u2, _ := s.UserByID(ctx, "u2")
	assert.Equal(t, "fresh", u2.ResetToken)
}

func TestBookingRules(t *testing.T) {
	t.Parallel()

	s := seed(t)
	ctx := context.Background()
	at := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	b := models.Booking{ID: "b1", PropertyID: "p1", RenterID: "u2", Status: models.BookingStatusPending, CreatedAt: at}
	require.NoError(t, s.SaveBooking(ctx, b))

	dup := b
	dup.ID = "b2"
	assert.ErrorIs(t, s.SaveBooking(ctx, dup), storage.ErrActiveBookingExists)

	orphan := models.Booking{ID: "b3", PropertyID: "nope", RenterID: "u2", Status: models.BookingStatusPending}
	assert.ErrorIs(t, s.SaveBooking(ctx, orphan), storage.ErrPropertyNotFound)

	err := s.UpdateBookingStatus(ctx, "b1", models.BookingStatusConfirmed, models.BookingStatusRejected, at)
	assert.ErrorIs(t, err, storage.ErrBookingStatusChanged)

	require.NoError(t, s.UpdateBookingStatus(ctx, "b1", models.BookingStatusPending, models.BookingStatusCancelled, at))

	exists, err := s.ActiveBookingExists(ctx, "u2", "p1")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, s.SaveBooking(ctx, dup))

	err = s.UpdateBookingStatus(ctx, "missing", models.BookingStatusPending, models.BookingStatusCancelled, at)
	assert.ErrorIs(t, err, storage.ErrBookingNotFound)
}

func TestNotificationsNewestFirst(t *testing.T) {
	t.Parallel()

	s := seed(t)
	ctx := context.Background()

	require.NoError(t, s.SaveNotification(ctx, models.Notification{ID: "n1", ReceiverID: "u1", Message: "first"}))
	require.NoError(t, s.SaveNotification(ctx, models.Notification{ID: "n2", ReceiverID: "u2", Message: "other"}))
	require.NoError(t, s.SaveNotification(ctx, models.Notification{ID: "n3", ReceiverID: "u1", Message: "second"}))

	n, err := s.NotificationsByReceiver(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, n, 2)
	assert.Equal(t, "second", n[0].Message)
	assert.Equal(t, "first", n[1].Message)
}
