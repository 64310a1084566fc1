package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Request statuses
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// Request types
const (
	RequestTypeLost     = "lost"
	RequestTypeFound    = "found"
	RequestTypeAdoption = "adoption"
)

// Valid moderation transitions: from -> []to. Accepted and rejected may be
// swapped to correct a mis-moderation, but nothing goes back to pending.
var ValidRequestTransitions = map[string][]string{
	RequestStatusPending:  {RequestStatusAccepted, RequestStatusRejected},
	RequestStatusAccepted: {RequestStatusRejected},
	RequestStatusRejected: {RequestStatusAccepted},
}

func IsValidTransition(from, to string) bool {
	allowed, ok := ValidRequestTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidRequestType(t string) bool {
	switch t {
	case RequestTypeLost, RequestTypeFound, RequestTypeAdoption:
		return true
	}
	return false
}

// NormalizeStatus lowercases a status value so "Accepted" from a form POST
// matches the stored enum.
func NormalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

type Request struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	PetID        uuid.UUID `json:"pet_id"`
	RequestType  string    `json:"request_type"`
	ContactPhone string    `json:"contact_phone"`
	Message      *string   `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RequestWithPet embeds Request and adds pet and reporter context for the
// admin dashboard.
type RequestWithPet struct {
	Request
	PetType          string  `json:"pet_type"`
	PetBreed         string  `json:"pet_breed"`
	PetStatus        string  `json:"pet_status"`
	ReporterUsername *string `json:"reporter_username,omitempty"`
}
