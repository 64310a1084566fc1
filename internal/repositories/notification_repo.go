package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

type NotificationRepo struct {
	db Querier
}

func NewNotificationRepo(pool *pgxpool.Pool) *NotificationRepo {
	return &NotificationRepo{db: pool}
}

func (r *NotificationRepo) WithTx(tx pgx.Tx) *NotificationRepo {
	return &NotificationRepo{db: tx}
}

func (r *NotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notifications (message, notification_type, request_id, contact_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`, n.Message, n.NotificationType, n.RequestID, n.ContactID).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
}

func (r *NotificationRepo) List(ctx context.Context, limit, offset int) ([]models.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, message, notification_type, request_id, contact_id, is_read, created_at
		FROM notifications
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Message, &n.NotificationType, &n.RequestID, &n.ContactID,
			&n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *NotificationRepo) UnreadCount(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM notifications WHERE NOT is_read`).Scan(&count)
	return count, err
}

// MarkRead sets is_read and reports whether the notification exists. The
// update is idempotent: re-marking a read notification succeeds as a no-op.
func (r *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *NotificationRepo) MarkAllRead(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `UPDATE notifications SET is_read = true WHERE NOT is_read`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
