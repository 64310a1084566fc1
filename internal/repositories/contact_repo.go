package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

type ContactRepo struct {
	db Querier
}

func NewContactRepo(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{db: pool}
}

func (r *ContactRepo) WithTx(tx pgx.Tx) *ContactRepo {
	return &ContactRepo{db: tx}
}

func (r *ContactRepo) Create(ctx context.Context, c *models.ContactSubmission) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO contact_submissions (name, email, subject, message, submission_type, status, user_id, pet_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, c.Name, c.Email, c.Subject, c.Message, c.SubmissionType, c.Status, c.UserID, c.PetID,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *ContactRepo) List(ctx context.Context, limit, offset int) ([]models.ContactSubmission, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, subject, message, submission_type, status, user_id, pet_id, created_at
		FROM contact_submissions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ContactSubmission
	for rows.Next() {
		var c models.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.SubmissionType,
			&c.Status, &c.UserID, &c.PetID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
