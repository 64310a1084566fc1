package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

type RequestRepo struct {
	db Querier
}

func NewRequestRepo(pool *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{db: pool}
}

func (r *RequestRepo) WithTx(tx pgx.Tx) *RequestRepo {
	return &RequestRepo{db: tx}
}

func (r *RequestRepo) Create(ctx context.Context, req *models.Request) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO requests (user_id, pet_id, request_type, contact_phone, message, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, req.UserID, req.PetID, req.RequestType, req.ContactPhone, req.Message, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *RequestRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, pet_id, request_type, contact_phone, message, status, created_at, updated_at
		FROM requests WHERE id = $1
	`, id).Scan(&req.ID, &req.UserID, &req.PetID, &req.RequestType, &req.ContactPhone,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) GetByPet(ctx context.Context, petID uuid.UUID) (*models.Request, error) {
	var req models.Request
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, pet_id, request_type, contact_phone, message, status, created_at, updated_at
		FROM requests WHERE pet_id = $1
	`, petID).Scan(&req.ID, &req.UserID, &req.PetID, &req.RequestType, &req.ContactPhone,
		&req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// UpdateStatusFrom writes a moderation transition as a compare-and-set: the
// row is only touched while its status still equals from. Returns false when
// the status moved underneath the caller.
func (r *RequestRepo) UpdateStatusFrom(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3
	`, to, id, from)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *RequestRepo) UpdateContact(ctx context.Context, id uuid.UUID, contactPhone string, message *string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE requests SET contact_phone = $1, message = $2, updated_at = now() WHERE id = $3
	`, contactPhone, message, id)
	return err
}

// ListWithPetByUser returns a user's own reports with request context for
// the dashboard, newest first.
func (r *RequestRepo) ListWithPetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.PetWithRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.owner_user_id, p.name, p.pet_type, p.breed, p.color, p.location,
		       p.description, p.image_ref, p.status, p.date_lost, p.created_at,
		       r.id, r.request_type, r.status
		FROM requests r
		JOIN pets p ON p.id = r.pet_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.PetWithRequest
	for rows.Next() {
		var pr models.PetWithRequest
		if err := rows.Scan(&pr.Pet.ID, &pr.OwnerUserID, &pr.Pet.Name, &pr.PetType, &pr.Breed,
			&pr.Color, &pr.Pet.Location, &pr.Pet.Description, &pr.ImageRef, &pr.Pet.Status,
			&pr.DateLost, &pr.Pet.CreatedAt,
			&pr.RequestID, &pr.RequestType, &pr.RequestStatus); err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

type RequestFilter struct {
	Status *string
	Limit  int
	Offset int
}

// ListWithPet returns requests with pet and reporter context for the admin
// dashboard, newest first.
func (r *RequestRepo) ListWithPet(ctx context.Context, f RequestFilter) ([]models.RequestWithPet, error) {
	query := `
		SELECT r.id, r.user_id, r.pet_id, r.request_type, r.contact_phone, r.message,
		       r.status, r.created_at, r.updated_at,
		       p.pet_type, p.breed, p.status, u.username
		FROM requests r
		JOIN pets p ON p.id = r.pet_id
		JOIN users u ON u.id = r.user_id
	`
	args := []any{}
	argIdx := 1

	if f.Status != nil {
		query += fmt.Sprintf(" WHERE r.status = $%d", argIdx)
		args = append(args, *f.Status)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.RequestWithPet
	for rows.Next() {
		var rp models.RequestWithPet
		if err := rows.Scan(&rp.ID, &rp.UserID, &rp.PetID, &rp.RequestType, &rp.ContactPhone,
			&rp.Message, &rp.Status, &rp.CreatedAt, &rp.UpdatedAt,
			&rp.PetType, &rp.PetBreed, &rp.PetStatus, &rp.ReporterUsername); err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	return out, rows.Err()
}
