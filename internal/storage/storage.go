package storage

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrPropertyNotFound    = errors.New("property not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrActiveBookingExists = errors.New("renter already has an active booking for this property")
	// ErrBookingStatusChanged is returned when a status update finds the booking
	// in a different status than the caller expected.
	ErrBookingStatusChanged = errors.New("booking status changed")
	ErrResetTokenNotFound   = errors.New("reset token not found or expired")
)
