package services

import (
	"context"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/events"
	"github.com/petrescue/backend/internal/metrics"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/repositories"
)

type ContactService struct {
	pool             *pgxpool.Pool
	contactRepo      *repositories.ContactRepo
	notificationRepo *repositories.NotificationRepo
	petRepo          *repositories.PetRepo
	publisher        events.Publisher
	delivery         *DeliveryClient
	log              *zap.Logger
}

func NewContactService(
	pool *pgxpool.Pool,
	contactRepo *repositories.ContactRepo,
	notificationRepo *repositories.NotificationRepo,
	petRepo *repositories.PetRepo,
	publisher events.Publisher,
	delivery *DeliveryClient,
	log *zap.Logger,
) *ContactService {
	return &ContactService{
		pool:             pool,
		contactRepo:      contactRepo,
		notificationRepo: notificationRepo,
		petRepo:          petRepo,
		publisher:        publisher,
		delivery:         delivery,
		log:              log,
	}
}

type ContactInput struct {
	Name           string
	Email          string
	Subject        string
	Message        string
	SubmissionType string
	PetID          *uuid.UUID
}

func validateContact(in ContactInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return validationf("name is required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return validationf("invalid email address")
	}
	if strings.TrimSpace(in.Subject) == "" {
		return validationf("subject is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return validationf("message is required")
	}
	if !models.IsValidSubmissionType(in.SubmissionType) {
		return validationf("invalid submission type %q", in.SubmissionType)
	}
	return nil
}

// Submit stores a contact or issue submission with its admin notification in
// one transaction. actor may be nil for anonymous submissions.
func (s *ContactService) Submit(ctx context.Context, actor *models.User, in ContactInput) (*models.ContactSubmission, error) {
	if err := validateContact(in); err != nil {
		return nil, err
	}

	if in.PetID != nil {
		if _, err := s.petRepo.GetByID(ctx, *in.PetID); err != nil {
			return nil, mapNoRows(err, "pet")
		}
	}

	sub := &models.ContactSubmission{
		Name:           strings.TrimSpace(in.Name),
		Email:          strings.TrimSpace(in.Email),
		Subject:        strings.TrimSpace(in.Subject),
		Message:        strings.TrimSpace(in.Message),
		SubmissionType: in.SubmissionType,
		Status:         "pending",
		PetID:          in.PetID,
	}
	if actor != nil {
		sub.UserID = &actor.ID
	}

	notificationType := models.NotificationContactSubmission
	if in.SubmissionType == models.SubmissionIssue {
		notificationType = models.NotificationIssueReport
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.contactRepo.WithTx(tx).Create(ctx, sub); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Message:          contactNotificationMessage(sub),
		NotificationType: notificationType,
		ContactID:        &sub.ID,
	}
	if err := s.notificationRepo.WithTx(tx).Create(ctx, notification); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, events.StreamAdmin, events.Event{
		Type: events.EventNotificationCreated,
		Payload: map[string]any{
			"notification_id":   notification.ID.String(),
			"notification_type": notification.NotificationType,
			"message":           notification.Message,
		},
	}); err != nil {
		s.log.Warn("failed to publish notification event", zap.Error(err))
	}
	if err := s.delivery.Notify(ctx, notification.NotificationType, notification.Message); err != nil {
		s.log.Warn("failed to deliver notification", zap.Error(err))
	}
	metrics.NotificationsCreated.WithLabelValues(notification.NotificationType).Inc()

	return sub, nil
}

// ListSubmissions is the admin view of the contact inbox.
func (s *ContactService) ListSubmissions(ctx context.Context, actor *models.User, limit, offset int) ([]models.ContactSubmission, error) {
	if !actor.IsAdmin {
		return nil, permissionf("admin capability required")
	}
	return s.contactRepo.List(ctx, limit, offset)
}
