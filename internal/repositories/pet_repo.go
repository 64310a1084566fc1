package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

const petColumns = `id, owner_user_id, name, pet_type, breed, color, location, description, image_ref, status, date_lost, created_at`

type PetRepo struct {
	db Querier
}

func NewPetRepo(pool *pgxpool.Pool) *PetRepo {
	return &PetRepo{db: pool}
}

func (r *PetRepo) WithTx(tx pgx.Tx) *PetRepo {
	return &PetRepo{db: tx}
}

func (r *PetRepo) Create(ctx context.Context, p *models.Pet) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO pets (owner_user_id, name, pet_type, breed, color, location, description, image_ref, status, date_lost)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at
	`, p.OwnerUserID, p.Name, p.PetType, p.Breed, p.Color, p.Location, p.Description, p.ImageRef, p.Status, p.DateLost,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Pet, error) {
	var p models.Pet
	err := r.db.QueryRow(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id).Scan(
		&p.ID, &p.OwnerUserID, &p.Name, &p.PetType, &p.Breed, &p.Color, &p.Location,
		&p.Description, &p.ImageRef, &p.Status, &p.DateLost, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PetRepo) Update(ctx context.Context, p *models.Pet) error {
	_, err := r.db.Exec(ctx, `
		UPDATE pets SET name = $1, pet_type = $2, breed = $3, color = $4, location = $5,
		       description = $6, image_ref = $7, date_lost = $8
		WHERE id = $9
	`, p.Name, p.PetType, p.Breed, p.Color, p.Location, p.Description, p.ImageRef, p.DateLost, p.ID)
	return err
}

func (r *PetRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	_, err := r.db.Exec(ctx, `UPDATE pets SET status = $1 WHERE id = $2`, status, id)
	return err
}

func (r *PetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	return err
}

// PetSearchFilter narrows the accepted found-pet search. ColorTerms holds the
// already-expanded synonym set; empty slices/nils mean "not provided".
type PetSearchFilter struct {
	PetType    *string
	Breed      *string
	ColorTerms []string
	Location   *string
	StartDate  *time.Time
	EndDate    *time.Time // exclusive upper bound, caller adds one day for inclusive dates
	Limit      int
	Offset     int
}

// IsEmpty reports whether no filter dimension was provided.
func (f PetSearchFilter) IsEmpty() bool {
	return f.PetType == nil && f.Breed == nil && len(f.ColorTerms) == 0 &&
		f.Location == nil && f.StartDate == nil && f.EndDate == nil
}

// buildPetSearchQuery returns the SQL and args for SearchFound. Base
// predicate: found pets whose request of type 'found' has been accepted.
func buildPetSearchQuery(f PetSearchFilter) (string, []any) {
	query := `
		SELECT p.id, p.owner_user_id, p.name, p.pet_type, p.breed, p.color, p.location,
		       p.description, p.image_ref, p.status, p.date_lost, p.created_at
		FROM pets p
		JOIN requests r ON r.pet_id = p.id
		WHERE p.status = 'found' AND r.request_type = 'found' AND r.status = 'accepted'`
	args := []any{}
	argIdx := 1

	if f.PetType != nil {
		query += fmt.Sprintf(" AND p.pet_type = $%d", argIdx)
		args = append(args, *f.PetType)
		argIdx++
	}
	if f.Breed != nil {
		query += fmt.Sprintf(" AND p.breed ILIKE $%d", argIdx)
		args = append(args, "%"+*f.Breed+"%")
		argIdx++
	}
	if len(f.ColorTerms) > 0 {
		query += " AND ("
		for i, term := range f.ColorTerms {
			if i > 0 {
				query += " OR "
			}
			query += fmt.Sprintf("p.color ILIKE $%d", argIdx)
			args = append(args, "%"+term+"%")
			argIdx++
		}
		query += ")"
	}
	if f.Location != nil {
		query += fmt.Sprintf(" AND p.location ILIKE $%d", argIdx)
		args = append(args, "%"+*f.Location+"%")
		argIdx++
	}
	if f.StartDate != nil {
		query += fmt.Sprintf(" AND p.created_at >= $%d", argIdx)
		args = append(args, *f.StartDate)
		argIdx++
	}
	if f.EndDate != nil {
		query += fmt.Sprintf(" AND p.created_at < $%d", argIdx)
		args = append(args, *f.EndDate)
		argIdx++
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	return query, args
}

func (r *PetRepo) SearchFound(ctx context.Context, f PetSearchFilter) ([]models.Pet, error) {
	query, args := buildPetSearchQuery(f)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPets(rows)
}

// ListAvailable unions explicitly adoptable pets with accepted found pets,
// newest first.
func (r *PetRepo) ListAvailable(ctx context.Context, limit, offset int) ([]models.Pet, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+petColumns+` FROM pets WHERE status = 'adoptable'
		UNION
		SELECT p.id, p.owner_user_id, p.name, p.pet_type, p.breed, p.color, p.location,
		       p.description, p.image_ref, p.status, p.date_lost, p.created_at
		FROM pets p
		JOIN requests r ON r.pet_id = p.id
		WHERE p.status = 'found' AND r.request_type = 'found' AND r.status = 'accepted'
		ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPets(rows)
}

func scanPets(rows pgx.Rows) ([]models.Pet, error) {
	var pets []models.Pet
	for rows.Next() {
		var p models.Pet
		if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.Name, &p.PetType, &p.Breed, &p.Color,
			&p.Location, &p.Description, &p.ImageRef, &p.Status, &p.DateLost, &p.CreatedAt); err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}
