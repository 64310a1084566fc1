package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/petrescue/backend/internal/events"
	"github.com/petrescue/backend/internal/metrics"
	"github.com/petrescue/backend/internal/models"
	"github.com/petrescue/backend/internal/repositories"
)

type ModerationService struct {
	pool         *pgxpool.Pool
	requestRepo  *repositories.RequestRepo
	petRepo      *repositories.PetRepo
	activityRepo *repositories.ActivityRepo
	publisher    events.Publisher
	log          *zap.Logger
}

func NewModerationService(
	pool *pgxpool.Pool,
	requestRepo *repositories.RequestRepo,
	petRepo *repositories.PetRepo,
	activityRepo *repositories.ActivityRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *ModerationService {
	return &ModerationService{
		pool:         pool,
		requestRepo:  requestRepo,
		petRepo:      petRepo,
		activityRepo: activityRepo,
		publisher:    publisher,
		log:          log,
	}
}

// UpdateRequestStatus performs an admin moderation transition, writing the
// status and the status_changed audit entry in one transaction. It does not
// create a notification.
func (s *ModerationService) UpdateRequestStatus(ctx context.Context, actor *models.User, requestID uuid.UUID, newStatus string) (*models.Request, error) {
	if !actor.IsAdmin {
		return nil, permissionf("moderation requires admin capability")
	}

	newStatus = models.NormalizeStatus(newStatus)

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, mapNoRows(err, "request")
	}

	if !models.IsValidTransition(req.Status, newStatus) {
		return nil, validationf("cannot transition from %s to %s", req.Status, newStatus)
	}

	// Guards against a pet deleted between lookup and moderation.
	pet, err := s.petRepo.GetByID(ctx, req.PetID)
	if err != nil {
		return nil, mapNoRows(err, "pet for this request")
	}

	oldStatus := req.Status

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	changed, err := s.requestRepo.WithTx(tx).UpdateStatusFrom(ctx, req.ID, oldStatus, newStatus)
	if err != nil {
		return nil, err
	}
	if !changed {
		// Another moderation landed between our read and this write.
		return nil, validationf("request was moderated concurrently, reload and retry")
	}

	// Accepting an adoption request hands the pet over.
	if newStatus == models.RequestStatusAccepted && req.RequestType == models.RequestTypeAdoption {
		if err := s.petRepo.WithTx(tx).UpdateStatus(ctx, pet.ID, models.PetStatusAdopted); err != nil {
			return nil, err
		}
	}

	entry := &models.ActivityLog{
		PetID:        &pet.ID,
		ActivityType: models.ActivityStatusChanged,
		Actor:        actor.ActorLabel(),
		Details:      fmt.Sprintf("%s -> %s", oldStatus, newStatus),
	}
	if err := s.activityRepo.WithTx(tx).Append(ctx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	req.Status = newStatus

	if err := s.publisher.Publish(ctx, events.StreamAdmin, events.Event{
		Type: events.EventRequestStatusChanged,
		Payload: map[string]any{
			"request_id": req.ID.String(),
			"old_status": oldStatus,
			"new_status": newStatus,
		},
	}); err != nil {
		s.log.Warn("failed to publish status event", zap.Error(err))
	}
	metrics.ModerationTransitions.WithLabelValues(newStatus).Inc()

	return req, nil
}

// ListRequests is the admin dashboard listing, optionally narrowed by status.
func (s *ModerationService) ListRequests(ctx context.Context, actor *models.User, status *string, limit, offset int) ([]models.RequestWithPet, error) {
	if !actor.IsAdmin {
		return nil, permissionf("moderation requires admin capability")
	}
	if status != nil {
		normalized := models.NormalizeStatus(*status)
		status = &normalized
	}
	return s.requestRepo.ListWithPet(ctx, repositories.RequestFilter{
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
}
