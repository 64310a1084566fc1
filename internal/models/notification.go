package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types
const (
	NotificationLostReport        = "lost_report"
	NotificationFoundReport       = "found_report"
	NotificationContactSubmission = "contact_submission"
	NotificationIssueReport       = "issue_report"
)

// Notification is an admin-facing inbox entry. RequestID and ContactID are
// mutually exclusive; only is_read ever changes after creation.
type Notification struct {
	ID               uuid.UUID  `json:"id"`
	Message          string     `json:"message"`
	NotificationType string     `json:"notification_type"`
	RequestID        *uuid.UUID `json:"request_id,omitempty"`
	ContactID        *uuid.UUID `json:"contact_id,omitempty"`
	IsRead           bool       `json:"is_read"`
	CreatedAt        time.Time  `json:"created_at"`
}
