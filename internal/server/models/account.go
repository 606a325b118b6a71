package models

import "time"

// Account is a registered user's persisted identity and profile data.
// PasswordHash is never serialized; Followers and Following carry account ids.
type Account struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Followers    []string  `json:"followers"`
	Following    []string  `json:"following"`
	ProfileImg   string    `json:"profileImg"`
	CoverImg     string    `json:"coverImg"`
	CreatedAt    time.Time `json:"-"`
}
