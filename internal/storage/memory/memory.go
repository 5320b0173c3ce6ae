// Package memory is a process-local Storage used for local runs and tests.
// It keeps the same contracts as the postgres package, including the
// one-active-booking rule, enforced under a single mutex.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"homeRental/internal/models"
	"homeRental/internal/storage"
)

type Storage struct {
	mu            sync.RWMutex
	users         map[string]models.User
	properties    map[string]models.Property
	bookings      map[string]models.Booking
	notifications []models.Notification
}

func New() *Storage {
	return &Storage{
		users:      make(map[string]models.User),
		properties: make(map[string]models.Property),
		bookings:   make(map[string]models.Booking),
	}
}

func (s *Storage) Close() error {
	return nil
}

func (s *Storage) SaveUser(_ context.Context, user models.User) error {
	const op = "storage.memory.SaveUser"

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return fmt.Errorf("%s: %w", op, storage.ErrUserExists)
		}
	}

	s.users[user.ID] = user

	return nil
}

func (s *Storage) UserByID(_ context.Context, id string) (models.User, error) {
	const op = "storage.memory.UserByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	return user, nil
}

func (s *Storage) UserByEmail(_ context.Context, email string) (models.User, error) {
	const op = "storage.memory.UserByEmail"

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}

	return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
}

func (s *Storage) SetResetToken(_ context.Context, userID, token string, expire time.Time) error {
	const op = "storage.memory.SetResetToken"

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	user.ResetToken = token
	user.ResetTokenExpire = &expire
	s.users[userID] = user

	return nil
}

func (s *Storage) UserByResetToken(_ context.Context, token string, now time.Time) (models.User, error) {
	const op = "storage.memory.UserByResetToken"

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if token != "" && u.ResetToken == token && u.ResetTokenExpire != nil && now.Before(*u.ResetTokenExpire) {
			return u, nil
		}
	}

	return models.User{}, fmt.Errorf("%s: %w", op, storage.ErrResetTokenNotFound)
}

func (s *Storage) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	const op = "storage.memory.UpdatePassword"

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	user.PasswordHash = passwordHash
	user.ResetToken = ""
	user.ResetTokenExpire = nil
	s.users[userID] = user

	return nil
}

func (s *Storage) ClearExpiredResetTokens(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var cleared int64
	for id, u := range s.users {
		if u.ResetTokenExpire != nil && !now.Before(*u.ResetTokenExpire) {
			u.ResetToken = ""
			u.ResetTokenExpire = nil
			s.users[id] = u
			cleared++
		}
	}

	return cleared, nil
}

func (s *Storage) SaveProperty(_ context.Context, p models.Property) error {
	const op = "storage.memory.SaveProperty"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[p.OwnerID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}

	s.properties[p.ID] = p

	return nil
}

func (s *Storage) PropertyByID(_ context.Context, id string) (models.Property, error) {
	const op = "storage.memory.PropertyByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.properties[id]
	if !ok {
		return models.Property{}, fmt.Errorf("%s: %w", op, storage.ErrPropertyNotFound)
	}

	return p, nil
}

func (s *Storage) Properties(_ context.Context) ([]models.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	properties := make([]models.Property, 0, len(s.properties))
	for _, p := range s.properties {
		properties = append(properties, p)
	}

	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].CreatedAt.After(properties[j].CreatedAt)
	})

	return properties, nil
}

func (s *Storage) PropertyIDsByOwner(_ context.Context, ownerID string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var ids []string
	for _, p := range s.properties {
		if p.OwnerID == ownerID {
			ids = append(ids, p.ID)
		}
	}

	return ids, nil
}

func (s *Storage) ActiveBookingExists(_ context.Context, renterID, propertyID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.activeBookingExists(renterID, propertyID), nil
}

func (s *Storage) activeBookingExists(renterID, propertyID string) bool {
	for _, b := range s.bookings {
		if b.RenterID == renterID && b.PropertyID == propertyID && b.Status.IsActive() {
			return true
		}
	}
	return false
}

func (s *Storage) SaveBooking(_ context.Context, b models.Booking) error {
	const op = "storage.memory.SaveBooking"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.properties[b.PropertyID]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrPropertyNotFound)
	}

	if b.Status.IsActive() && s.activeBookingExists(b.RenterID, b.PropertyID) {
		return fmt.Errorf("%s: %w", op, storage.ErrActiveBookingExists)
	}

	s.bookings[b.ID] = b

	return nil
}

func (s *Storage) BookingByID(_ context.Context, id string) (models.Booking, error) {
	const op = "storage.memory.BookingByID"

	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.bookings[id]
	if !ok {
		return models.Booking{}, fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	return b, nil
}

func (s *Storage) UpdateBookingStatus(
	_ context.Context,
	id string,
	from, to models.BookingStatus,
	at time.Time,
) error {
	const op = "storage.memory.UpdateBookingStatus"

	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrBookingNotFound)
	}

	if b.Status != from {
		return fmt.Errorf("%s: %w", op, storage.ErrBookingStatusChanged)
	}

	b.Status = to
	b.UpdatedAt = at
	s.bookings[id] = b

	return nil
}

func (s *Storage) BookingsByRenter(_ context.Context, renterID string) ([]models.BookingWithProperty, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bookings := make([]models.BookingWithProperty, 0)
	for _, b := range s.bookings {
		if b.RenterID != renterID {
			continue
		}
		bookings = append(bookings, models.BookingWithProperty{
			Booking:  b,
			Property: s.properties[b.PropertyID],
		})
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (s *Storage) BookingsByProperties(_ context.Context, propertyIDs []string) ([]models.BookingWithParties, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[string]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		wanted[id] = struct{}{}
	}

	bookings := make([]models.BookingWithParties, 0)
	for _, b := range s.bookings {
		if _, ok := wanted[b.PropertyID]; !ok {
			continue
		}
		bookings = append(bookings, models.BookingWithParties{
			Booking:  b,
			Property: s.properties[b.PropertyID],
			Renter:   s.users[b.RenterID].Public(),
		})
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})

	return bookings, nil
}

func (s *Storage) SaveNotification(_ context.Context, n models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, n)

	return nil
}

func (s *Storage) NotificationsByReceiver(_ context.Context, receiverID string) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notifications := make([]models.Notification, 0)
	for i := len(s.notifications) - 1; i >= 0; i-- {
		if s.notifications[i].ReceiverID == receiverID {
			notifications = append(notifications, s.notifications[i])
		}
	}

	return notifications, nil
}
