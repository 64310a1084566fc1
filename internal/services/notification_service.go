package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/models"
)

// NotificationStore is the persistence surface the notification read side
// needs. Satisfied by repositories.NotificationRepo.
type NotificationStore interface {
	List(ctx context.Context, limit, offset int) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id uuid.UUID) (bool, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

// NotificationService is the admin read side of the notification inbox.
// Creation happens inside the report/contact transactions.
type NotificationService struct {
	notificationRepo NotificationStore
	log              *zap.Logger
}

func NewNotificationService(notificationRepo NotificationStore, log *zap.Logger) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo, log: log}
}

func (s *NotificationService) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	return s.notificationRepo.List(ctx, limit, offset)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	return s.notificationRepo.UnreadCount(ctx)
}

// MarkRead is idempotent: marking an already-read notification succeeds.
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	found, err := s.notificationRepo.MarkRead(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return notFoundf("notification")
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx)
}

// reportNotificationMessage formats the admin inbox line for a new report.
func reportNotificationMessage(requestType string, pet *models.Pet, reporter string) string {
	where := pet.Location
	switch requestType {
	case models.RequestTypeLost:
		name := pet.PetType
		if pet.Name != nil && *pet.Name != "" {
			name = *pet.Name
		}
		return fmt.Sprintf("New lost pet report: %s (%s, %s) last seen at %s, reported by %s",
			name, pet.PetType, pet.Breed, where, reporter)
	case models.RequestTypeFound:
		return fmt.Sprintf("New found pet report: %s (%s, %s) found at %s, reported by %s",
			pet.PetType, pet.Breed, pet.Color, where, reporter)
	default:
		return fmt.Sprintf("New %s request: %s (%s) at %s, by %s",
			requestType, pet.PetType, pet.Breed, where, reporter)
	}
}

// contactNotificationMessage formats the admin inbox line for an inbound
// contact or issue submission.
func contactNotificationMessage(c *models.ContactSubmission) string {
	if c.SubmissionType == models.SubmissionIssue {
		return fmt.Sprintf("New issue report from %s <%s>: %s", c.Name, c.Email, c.Subject)
	}
	return fmt.Sprintf("New contact submission from %s <%s>: %s", c.Name, c.Email, c.Subject)
}
