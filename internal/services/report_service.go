package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/config"
	"github.com/petrescue/backend/internal/events"
	"github.com/petrescue/backend/internal/metrics"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/repositories"
)

type ReportService struct {
	pool             *pgxpool.Pool
	petRepo          *repositories.PetRepo
	requestRepo      *repositories.RequestRepo
	activityRepo     *repositories.ActivityRepo
	notificationRepo *repositories.NotificationRepo
	publisher        events.Publisher
	delivery         *DeliveryClient
	cfg              *config.Config
	log              *zap.Logger
}

func NewReportService(
	pool *pgxpool.Pool,
	petRepo *repositories.PetRepo,
	requestRepo *repositories.RequestRepo,
	activityRepo *repositories.ActivityRepo,
	notificationRepo *repositories.NotificationRepo,
	publisher events.Publisher,
	delivery *DeliveryClient,
	cfg *config.Config,
	log *zap.Logger,
) *ReportService {
	return &ReportService{
		pool:             pool,
		petRepo:          petRepo,
		requestRepo:      requestRepo,
		activityRepo:     activityRepo,
		notificationRepo: notificationRepo,
		publisher:        publisher,
		delivery:         delivery,
		cfg:              cfg,
		log:              log,
	}
}

type LostReportInput struct {
	PetName          string
	PetType          string
	Breed            string
	Color            string
	LastSeenLocation string
	Description      *string
	ImageRef         *string
	DateLost         time.Time
	ContactPhone     string
	Message          *string
}

type FoundReportInput struct {
	PetType       string
	Breed         string
	Color         string
	FoundLocation string
	Description   *string
	ImageRef      *string
	ContactPhone  *string
	Message       *string
}

func validateLostReport(in LostReportInput, now time.Time) error {
	if strings.TrimSpace(in.PetName) == "" {
		return validationf("pet name is required")
	}
	if !models.IsValidPetType(in.PetType) {
		return validationf("invalid pet type %q", in.PetType)
	}
	if strings.TrimSpace(in.Breed) == "" {
		return validationf("breed is required")
	}
	if strings.TrimSpace(in.Color) == "" {
		return validationf("color is required")
	}
	if strings.TrimSpace(in.LastSeenLocation) == "" {
		return validationf("last seen location is required")
	}
	if in.DateLost.IsZero() {
		return validationf("date lost is required")
	}
	if in.DateLost.After(now) {
		return validationf("date lost cannot be in the future")
	}
	if strings.TrimSpace(in.ContactPhone) == "" {
		return validationf("contact phone is required")
	}
	return nil
}

func validateFoundReport(in FoundReportInput) error {
	if !models.IsValidPetType(in.PetType) {
		return validationf("invalid pet type %q", in.PetType)
	}
	if strings.TrimSpace(in.Breed) == "" {
		return validationf("breed is required")
	}
	if strings.TrimSpace(in.Color) == "" {
		return validationf("color is required")
	}
	if strings.TrimSpace(in.FoundLocation) == "" {
		return validationf("found location is required")
	}
	return nil
}

// SubmitLost creates the pet, its pending request, the created audit entry
// and the admin notification in one transaction.
func (s *ReportService) SubmitLost(ctx context.Context, actor *models.User, in LostReportInput) (*models.PetWithRequest, error) {
	if err := validateLostReport(in, time.Now()); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.PetName)
	pet := &models.Pet{
		OwnerUserID: actor.ID,
		Name:        &name,
		PetType:     in.PetType,
		Breed:       strings.TrimSpace(in.Breed),
		Color:       strings.TrimSpace(in.Color),
		Location:    strings.TrimSpace(in.LastSeenLocation),
		Description: in.Description,
		ImageRef:    in.ImageRef,
		Status:      models.PetStatusLost,
		DateLost:    &in.DateLost,
	}
	req := &models.Request{
		UserID:       actor.ID,
		RequestType:  models.RequestTypeLost,
		ContactPhone: strings.TrimSpace(in.ContactPhone),
		Message:      in.Message,
		Status:       models.RequestStatusPending,
	}

	return s.submit(ctx, actor, pet, req, models.NotificationLostReport)
}

func (s *ReportService) SubmitFound(ctx context.Context, actor *models.User, in FoundReportInput) (*models.PetWithRequest, error) {
	if err := validateFoundReport(in); err != nil {
		return nil, err
	}

	contactPhone := ""
	if in.ContactPhone != nil {
		contactPhone = strings.TrimSpace(*in.ContactPhone)
	}
	pet := &models.Pet{
		OwnerUserID: actor.ID,
		PetType:     in.PetType,
		Breed:       strings.TrimSpace(in.Breed),
		Color:       strings.TrimSpace(in.Color),
		Location:    strings.TrimSpace(in.FoundLocation),
		Description: in.Description,
		ImageRef:    in.ImageRef,
		Status:      models.PetStatusFound,
	}
	req := &models.Request{
		UserID:       actor.ID,
		RequestType:  models.RequestTypeFound,
		ContactPhone: contactPhone,
		Message:      in.Message,
		Status:       models.RequestStatusPending,
	}

	return s.submit(ctx, actor, pet, req, models.NotificationFoundReport)
}

func (s *ReportService) submit(ctx context.Context, actor *models.User, pet *models.Pet, req *models.Request, notificationType string) (*models.PetWithRequest, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.petRepo.WithTx(tx).Create(ctx, pet); err != nil {
		return nil, err
	}

	req.PetID = pet.ID
	if err := s.requestRepo.WithTx(tx).Create(ctx, req); err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{
		PetID:        &pet.ID,
		ActivityType: models.ActivityCreated,
		Actor:        actor.ActorLabel(),
		Details:      fmt.Sprintf("%s report submitted: %s - %s", req.RequestType, pet.PetType, pet.Breed),
	}
	if err := s.activityRepo.WithTx(tx).Append(ctx, entry); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		Message:          reportNotificationMessage(req.RequestType, pet, actor.Username),
		NotificationType: notificationType,
		RequestID:        &req.ID,
	}
	if err := s.notificationRepo.WithTx(tx).Create(ctx, notification); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	s.fanOut(ctx, notification)
	metrics.ReportsSubmitted.WithLabelValues(req.RequestType).Inc()

	return &models.PetWithRequest{
		Pet:           *pet,
		RequestID:     req.ID,
		RequestType:   req.RequestType,
		RequestStatus: req.Status,
	}, nil
}

// fanOut pushes a committed notification to the admin live feed and the
// delivery bridge. Both are best-effort.
func (s *ReportService) fanOut(ctx context.Context, n *models.Notification) {
	err := s.publisher.Publish(ctx, events.StreamAdmin, events.Event{
		Type: events.EventNotificationCreated,
		Payload: map[string]any{
			"notification_id":   n.ID.String(),
			"notification_type": n.NotificationType,
			"message":           n.Message,
		},
	})
	if err != nil {
		s.log.Warn("failed to publish notification event", zap.Error(err))
	}
	if err := s.delivery.Notify(ctx, n.NotificationType, n.Message); err != nil {
		s.log.Warn("failed to deliver notification", zap.Error(err))
	}
	metrics.NotificationsCreated.WithLabelValues(n.NotificationType).Inc()
}

// canModifyReport gates user edits and deletes: owner only, and only while
// the request is still pending.
func canModifyReport(req *models.Request, actor *models.User) error {
	if req.UserID != actor.ID {
		return permissionf("not your report")
	}
	if req.Status != models.RequestStatusPending {
		return permissionf("report is %s and can no longer be modified", req.Status)
	}
	return nil
}

type EditReportInput struct {
	PetName      *string
	Breed        string
	Color        string
	Location     string
	Description  *string
	ImageRef     *string
	ContactPhone string
	Message      *string
}

// EditReport updates a user's own report while its request is still pending.
func (s *ReportService) EditReport(ctx context.Context, actor *models.User, requestID uuid.UUID, in EditReportInput) (*models.Pet, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, mapNoRows(err, "request")
	}
	if err := canModifyReport(req, actor); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Breed) == "" {
		return nil, validationf("breed is required")
	}
	if strings.TrimSpace(in.Color) == "" {
		return nil, validationf("color is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, validationf("location is required")
	}
	if strings.TrimSpace(in.ContactPhone) == "" {
		return nil, validationf("contact phone is required")
	}

	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, mapNoRows(err, "pet")
	}

	pet.Name = in.PetName
	pet.Breed = strings.TrimSpace(in.Breed)
	pet.Color = strings.TrimSpace(in.Color)
	pet.Location = strings.TrimSpace(in.Location)
	pet.Description = in.Description
	if in.ImageRef != nil {
		pet.ImageRef = in.ImageRef
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := s.petRepo.WithTx(tx).Update(ctx, pet); err != nil {
		return nil, err
	}
	if err := s.requestRepo.WithTx(tx).UpdateContact(ctx, req.ID, strings.TrimSpace(in.ContactPhone), in.Message); err != nil {
		return nil, err
	}

	entry := &models.ActivityLog{
		PetID:        &pet.ID,
		ActivityType: models.ActivityEdited,
		Actor:        actor.ActorLabel(),
		Details:      fmt.Sprintf("%s report updated", req.RequestType),
	}
	if err := s.activityRepo.WithTx(tx).Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return pet, nil
}

// DeleteReport removes a user's own pending report. The deleted audit entry
// survives the pet row (its pet_id is nulled by the FK).
func (s *ReportService) DeleteReport(ctx context.Context, actor *models.User, requestID uuid.UUID) error {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return mapNoRows(err, "request")
	}
	if err := canModifyReport(req, actor); err != nil {
		return err
	}

	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return mapNoRows(err, "pet")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	entry := &models.ActivityLog{
		PetID:        &pet.ID,
		ActivityType: models.ActivityDeleted,
		Actor:        actor.ActorLabel(),
		Details:      fmt.Sprintf("%s report deleted: %s - %s", req.RequestType, pet.PetType, pet.Breed),
	}
	if err := s.activityRepo.WithTx(tx).Append(ctx, entry); err != nil {
		return err
	}
	if err := s.petRepo.WithTx(tx).Delete(ctx, pet.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetHistory returns the activity trail for a report's pet, newest first.
// Owner or admin only.
func (s *ReportService) GetHistory(ctx context.Context, actor *models.User, requestID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, mapNoRows(err, "request")
	}
	if req.UserID != actor.ID && !actor.IsAdmin {
		return nil, permissionf("not your report")
	}
	return s.activityRepo.ListByPet(ctx, req.PetID, limit, false)
}

func (s *ReportService) ListMyReports(ctx context.Context, actor *models.User, limit, offset int) ([]models.PetWithRequest, error) {
	return s.requestRepo.ListWithPetByUser(ctx, actor.ID, limit, offset)
}
