package models

import "time"

// Notification kinds.
const (
	NotificationFollow = "follow"
	NotificationLike   = "like"
)

type Notification struct {
	ID        string    `json:"id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Kind      string    `json:"type"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
