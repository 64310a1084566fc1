package models

import (
	"time"

	"github.com/google/uuid"
)

// Pet types
const (
	PetTypeDog    = "dog"
	PetTypeCat    = "cat"
	PetTypeBird   = "bird"
	PetTypeRabbit = "rabbit"
	PetTypeOther  = "other"
)

// Pet statuses
const (
	PetStatusLost      = "lost"
	PetStatusFound     = "found"
	PetStatusAdopted   = "adopted"
	PetStatusAdoptable = "adoptable"
)

func IsValidPetType(t string) bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeBird, PetTypeRabbit, PetTypeOther:
		return true
	}
	return false
}

func IsValidPetStatus(s string) bool {
	switch s {
	case PetStatusLost, PetStatusFound, PetStatusAdopted, PetStatusAdoptable:
		return true
	}
	return false
}

type Pet struct {
	ID          uuid.UUID  `json:"id"`
	OwnerUserID uuid.UUID  `json:"owner_user_id"`
	Name        *string    `json:"name,omitempty"`
	PetType     string     `json:"pet_type"`
	Breed       string     `json:"breed"`
	Color       string     `json:"color"`
	Location    string     `json:"location"`
	Description *string    `json:"description,omitempty"`
	ImageRef    *string    `json:"image_ref,omitempty"`
	Status      string     `json:"status"`
	DateLost    *time.Time `json:"date_lost,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PetWithRequest embeds Pet and adds the moderation request to avoid N+1
// queries on the dashboard and admin listings.
type PetWithRequest struct {
	Pet
	RequestID        uuid.UUID `json:"request_id"`
	RequestType      string    `json:"request_type"`
	RequestStatus    string    `json:"request_status"`
	ReporterUsername *string   `json:"reporter_username,omitempty"`
}
