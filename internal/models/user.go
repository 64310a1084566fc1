package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        *string   `json:"phone,omitempty"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the optional personal details kept separate from the
// credentials row. Created explicitly right after registration.
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	FullName  *string   `json:"full_name,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Location  *string   `json:"location,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActorLabel is the free-text actor identifier recorded in the activity log,
// e.g. "admin:jane" or "user:bob".
func (u *User) ActorLabel() string {
	if u.IsAdmin {
		return "admin:" + u.Username
	}
	return "user:" + u.Username
}
