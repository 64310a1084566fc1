package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity types
const (
	ActivityCreated       = "created"
	ActivityEdited        = "edited"
	ActivityStatusChanged = "status_changed"
	ActivityDeleted       = "deleted"
)

// ActivityLog is an append-only audit entry keyed by pet. PetID is nil once
// the pet itself has been deleted; the entry is never removed.
type ActivityLog struct {
	ID           uuid.UUID  `json:"id"`
	PetID        *uuid.UUID `json:"pet_id,omitempty"`
	ActivityType string     `json:"activity_type"`
	Actor        string     `json:"actor"`
	Details      string     `json:"details"`
	CreatedAt    time.Time  `json:"created_at"`
}
