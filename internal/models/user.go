package models

import "time"

type Role string

const (
	RoleRenter Role = "renter"
	RoleOwner  Role = "owner"
)

type User struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Role             Role       `json:"role"`
	PasswordHash     string     `json:"-"`
	ResetToken       string     `json:"-"`
	ResetTokenExpire *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"created_at"`
}

// PublicUser is the part of a user that may be shown to the other side of a booking.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
