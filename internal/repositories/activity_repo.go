package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

// ActivityRepo is append-only: there are no update or delete statements.
type ActivityRepo struct {
	db Querier
}

func NewActivityRepo(pool *pgxpool.Pool) *ActivityRepo {
	return &ActivityRepo{db: pool}
}

func (r *ActivityRepo) WithTx(tx pgx.Tx) *ActivityRepo {
	return &ActivityRepo{db: tx}
}

func (r *ActivityRepo) Append(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO activity_log (pet_id, activity_type, actor, details)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, entry.PetID, entry.ActivityType, entry.Actor, entry.Details).Scan(&entry.ID, &entry.CreatedAt)
}

// ListByPet returns the pet's audit trail. asc=false gives newest first;
// limit <= 0 falls back to 50 ("latest N" slice).
func (r *ActivityRepo) ListByPet(ctx context.Context, petID uuid.UUID, limit int, asc bool) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	order := "DESC"
	if asc {
		order = "ASC"
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, pet_id, activity_type, actor, details, created_at
		FROM activity_log WHERE pet_id = $1
		ORDER BY created_at `+order+` LIMIT $2
	`, petID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.ActivityLog
	for rows.Next() {
		var l models.ActivityLog
		if err := rows.Scan(&l.ID, &l.PetID, &l.ActivityType, &l.Actor, &l.Details, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
