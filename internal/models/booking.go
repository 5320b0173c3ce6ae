package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ActiveStatuses are the statuses counted by the one-active-booking-per-renter rule.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	return s != BookingStatusPending
}

type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id"`
	RenterID   string        `json:"renter_id"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// BookingWithProperty is a booking joined with its property, as listed to a renter.
type BookingWithProperty struct {
	Booking
	Property Property `json:"property"`
}

// BookingWithParties is a booking joined with its property and renter, as listed to an owner.
type BookingWithParties struct {
	Booking
	Property Property   `json:"property"`
	Renter   PublicUser `json:"renter"`
}

// BookingDetails is a booking joined with everything needed to show it to either side.
type BookingDetails struct {
	Booking
	Property Property   `json:"property"`
	Owner    PublicUser `json:"owner"`
	Renter   PublicUser `json:"renter"`
}
