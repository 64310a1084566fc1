package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact submission types
const (
	SubmissionGeneral = "general"
	SubmissionIssue   = "issue"
)

func IsValidSubmissionType(t string) bool {
	return t == SubmissionGeneral || t == SubmissionIssue
}

type ContactSubmission struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	SubmissionType string     `json:"submission_type"`
	Status         string     `json:"status"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	PetID          *uuid.UUID `json:"pet_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
