// Package booking owns the booking lifecycle: creation, the pending -> confirmed,
// rejected or cancelled transitions, the authorization rules that guard them,
// and the notification and email side effects that follow each one.
//
// Every operation takes the acting user's id explicitly. Side effects run only
// after the state change has been stored, and their failures are logged, never
// returned.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"homeRental/internal/lib/logger/sl"
	"homeRental/internal/mailer"
	"homeRental/internal/models"
	"homeRental/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrInvalidTransition = errors.New("invalid booking status transition")
	ErrDuplicateBooking  = errors.New("you already have a booking for this property")
)

type Storage interface {
	UserByID(ctx context.Context, id string) (models.User, error)
	PropertyByID(ctx context.Context, id string) (models.Property, error)
	PropertyIDsByOwner(ctx context.Context, ownerID string) ([]string, error)
	ActiveBookingExists(ctx context.Context, renterID, propertyID string) (bool, error)
	SaveBooking(ctx context.Context, b models.Booking) error
	BookingByID(ctx context.Context, id string) (models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id string, from, to models.BookingStatus, at time.Time) error
	BookingsByRenter(ctx context.Context, renterID string) ([]models.BookingWithProperty, error)
	BookingsByProperties(ctx context.Context, propertyIDs []string) ([]models.BookingWithParties, error)
	SaveNotification(ctx context.Context, n models.Notification) error
}

type Mailer interface {
	SendTemplate(ctx context.Context, to, subject, name string, data any) error
}

type Manager struct {
	log     *slog.Logger
	storage Storage
	mailer  Mailer
	now     func() time.Time
}

func New(log *slog.Logger, storage Storage, mailer Mailer) *Manager {
	return &Manager{
		log:     log,
		storage: storage,
		mailer:  mailer,
		now:     time.Now,
	}
}

// Details is a booking as seen by one of its two parties.
type Details struct {
	models.BookingDetails
	IsOwner  bool `json:"is_owner"`
	IsRenter bool `json:"is_renter"`
}

func (m *Manager) Create(ctx context.Context, renterID, propertyID string) (models.Booking, error) {
	const op = "services.booking.Create"

	log := m.log.With(
		slog.String("op", op),
		slog.String("renter_id", renterID),
		slog.String("property_id", propertyID),
	)

	property, err := m.storage.PropertyByID(ctx, propertyID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	exists, err := m.storage.ActiveBookingExists(ctx, renterID, propertyID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrDuplicateBooking)
	}

	now := m.now()
	b := models.Booking{
		ID:         uuid.NewString(),
		PropertyID: propertyID,
		RenterID:   renterID,
		Status:     models.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = m.storage.SaveBooking(ctx, b); err != nil {
		if errors.Is(err, storage.ErrActiveBookingExists) {
			return models.Booking{}, fmt.Errorf("%s: %w", op, ErrDuplicateBooking)
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	log.Info("booking created", slog.String("booking_id", b.ID))

	m.notify(ctx, log, property.OwnerID, property.ID, fmt.Sprintf("New booking request for %s.", property.Title))
	m.email(ctx, log, property.OwnerID, "New Booking Request", mailer.TemplateBookingRequested, b, property)

	return b, nil
}

// Cancel lets the renter withdraw a booking that is still pending.
func (m *Manager) Cancel(ctx context.Context, bookingID, actorID string) (models.Booking, error) {
	const op = "services.booking.Cancel"

	log := m.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID),
		slog.String("actor_id", actorID),
	)

	b, property, err := m.transition(ctx, bookingID, models.BookingStatusCancelled, func(b models.Booking, _ models.Property) bool {
		return b.RenterID == actorID
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking cancelled")

	m.notify(ctx, log, property.OwnerID, property.ID,
		fmt.Sprintf("Booking for %s has been cancelled by the renter.", property.Title))
	m.email(ctx, log, property.OwnerID, "Booking Cancelled by Renter", mailer.TemplateBookingCancelled, b, property)
	m.notify(ctx, log, b.RenterID, property.ID,
		fmt.Sprintf("Your booking cancellation for %s has been processed.", property.Title))

	return b, nil
}

// Reject lets the property owner turn down a pending booking.
func (m *Manager) Reject(ctx context.Context, bookingID, actorID string) (models.Booking, error) {
	const op = "services.booking.Reject"

	log := m.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID),
		slog.String("actor_id", actorID),
	)

	b, property, err := m.transition(ctx, bookingID, models.BookingStatusRejected, isOwner(actorID))
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking rejected")

	m.notify(ctx, log, b.RenterID, property.ID,
		fmt.Sprintf("Your booking request for %s was rejected.", property.Title))
	m.email(ctx, log, b.RenterID, "Booking Rejected", mailer.TemplateBookingRejected, b, property)

	return b, nil
}

// Accept lets the property owner confirm a pending booking.
func (m *Manager) Accept(ctx context.Context, bookingID, actorID string) (models.Booking, error) {
	const op = "services.booking.Accept"

	log := m.log.With(
		slog.String("op", op),
		slog.String("booking_id", bookingID),
		slog.String("actor_id", actorID),
	)

	b, property, err := m.transition(ctx, bookingID, models.BookingStatusConfirmed, isOwner(actorID))
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking accepted")

	m.notify(ctx, log, b.RenterID, property.ID,
		fmt.Sprintf("Your booking request for %s was accepted.", property.Title))
	m.email(ctx, log, b.RenterID, "Booking Accepted", mailer.TemplateBookingAccepted, b, property)

	return b, nil
}

func (m *Manager) ListForRenter(ctx context.Context, renterID string) ([]models.BookingWithProperty, error) {
	const op = "services.booking.ListForRenter"

	bookings, err := m.storage.BookingsByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

// ListForOwner returns the bookings made on any property the owner holds.
func (m *Manager) ListForOwner(ctx context.Context, ownerID string) ([]models.BookingWithParties, error) {
	const op = "services.booking.ListForOwner"

	propertyIDs, err := m.storage.PropertyIDsByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(propertyIDs) == 0 {
		return []models.BookingWithParties{}, nil
	}

	bookings, err := m.storage.BookingsByProperties(ctx, propertyIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}

func (m *Manager) GetDetails(ctx context.Context, bookingID, actorID string) (Details, error) {
	const op = "services.booking.GetDetails"

	b, err := m.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return Details{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	property, err := m.storage.PropertyByID(ctx, b.PropertyID)
	if err != nil {
		return Details{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	d := Details{
		IsOwner:  property.OwnerID == actorID,
		IsRenter: b.RenterID == actorID,
	}

	if !d.IsOwner && !d.IsRenter {
		return Details{}, fmt.Errorf("%s: %w", op, ErrNotAuthorized)
	}

	owner, err := m.storage.UserByID(ctx, property.OwnerID)
	if err != nil {
		return Details{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	renter, err := m.storage.UserByID(ctx, b.RenterID)
	if err != nil {
		return Details{}, fmt.Errorf("%s: %w", op, notFound(err))
	}

	d.BookingDetails = models.BookingDetails{
		Booking:  b,
		Property: property,
		Owner:    owner.Public(),
		Renter:   renter.Public(),
	}

	return d, nil
}

type authorizer func(b models.Booking, property models.Property) bool

func isOwner(actorID string) authorizer {
	return func(_ models.Booking, property models.Property) bool {
		return property.OwnerID == actorID
	}
}

// transition moves a pending booking to status `to` once allowed reports that
// the actor may do so. Only pending bookings can move; every other status is terminal.
func (m *Manager) transition(
	ctx context.Context,
	bookingID string,
	to models.BookingStatus,
	allowed authorizer,
) (models.Booking, models.Property, error) {
	b, err := m.storage.BookingByID(ctx, bookingID)
	if err != nil {
		return models.Booking{}, models.Property{}, notFound(err)
	}

	property, err := m.storage.PropertyByID(ctx, b.PropertyID)
	if err != nil {
		return models.Booking{}, models.Property{}, notFound(err)
	}

	if !allowed(b, property) {
		return models.Booking{}, models.Property{}, ErrNotAuthorized
	}

	if b.Status != models.BookingStatusPending {
		return models.Booking{}, models.Property{}, fmt.Errorf("%w: booking is %s", ErrInvalidTransition, b.Status)
	}

	now := m.now()
	err = m.storage.UpdateBookingStatus(ctx, b.ID, models.BookingStatusPending, to, now)
	if err != nil {
		if errors.Is(err, storage.ErrBookingStatusChanged) {
			return models.Booking{}, models.Property{}, ErrInvalidTransition
		}
		return models.Booking{}, models.Property{}, notFound(err)
	}

	b.Status = to
	b.UpdatedAt = now

	return b, property, nil
}

func (m *Manager) notify(ctx context.Context, log *slog.Logger, receiverID, propertyID, message string) {
	n := models.Notification{
		ID:         uuid.NewString(),
		ReceiverID: receiverID,
		PropertyID: propertyID,
		Message:    message,
		CreatedAt:  m.now(),
	}

	if err := m.storage.SaveNotification(ctx, n); err != nil {
		log.Error("failed to save notification", slog.String("receiver_id", receiverID), sl.Err(err))
	}
}

func (m *Manager) email(
	ctx context.Context,
	log *slog.Logger,
	userID, subject, template string,
	b models.Booking,
	property models.Property,
) {
	user, err := m.storage.UserByID(ctx, userID)
	if err != nil {
		log.Error("failed to load email recipient", slog.String("user_id", userID), sl.Err(err))
		return
	}

	if user.Email == "" {
		log.Error("recipient email missing, email not sent", slog.String("user_id", userID))
		return
	}

	data := mailer.BookingData{
		Name:          user.Name,
		PropertyTitle: property.Title,
		PropertyID:    property.ID,
		BookingID:     b.ID,
	}

	if err = m.mailer.SendTemplate(ctx, user.Email, subject, template, data); err != nil {
		log.Error("email sending failed", slog.String("to", user.Email), sl.Err(err))
	}
}

func notFound(err error) error {
	switch {
	case errors.Is(err, storage.ErrBookingNotFound),
		errors.Is(err, storage.ErrPropertyNotFound),
		errors.Is(err, storage.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}
