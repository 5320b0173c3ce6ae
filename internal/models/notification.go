package models

import "time"

type Notification struct {
	ID         string    `json:"id"`
	ReceiverID string    `json:"receiver_id"`
	PropertyID string    `json:"property_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
