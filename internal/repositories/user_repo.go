package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/petrescue/backend/internal/models"
)

type UserRepo struct {
	db Querier
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: pool}
}

func (r *UserRepo) WithTx(tx pgx.Tx) *UserRepo {
	return &UserRepo{db: tx}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, phone, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, u.Username, u.Email, u.PasswordHash, u.Phone, u.IsAdmin).Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.scanOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.scanOne(ctx, `WHERE username = $1`, username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanOne(ctx, `WHERE lower(email) = lower($1)`, email)
}

func (r *UserRepo) scanOne(ctx context.Context, where string, arg any) (*models.User, error) {
	var u models.User
	err := r.db.QueryRow(ctx, `
		SELECT id, username, email, password_hash, phone, is_admin, created_at
		FROM users `+where, arg,
	).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Phone, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (r *UserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepo) UpdatePhone(ctx context.Context, id uuid.UUID, phone *string) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET phone = $1 WHERE id = $2`, phone, id)
	return err
}

func (r *UserRepo) CreateProfile(ctx context.Context, p *models.Profile) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO profiles (user_id, full_name, address, location)
		VALUES ($1, $2, $3, $4)
		RETURNING updated_at
	`, p.UserID, p.FullName, p.Address, p.Location).Scan(&p.UpdatedAt)
}

func (r *UserRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.db.QueryRow(ctx, `
		SELECT user_id, full_name, address, location, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.UserID, &p.FullName, &p.Address, &p.Location, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, p *models.Profile) error {
	return r.db.QueryRow(ctx, `
		UPDATE profiles SET full_name = $1, address = $2, location = $3, updated_at = now()
		WHERE user_id = $4
		RETURNING updated_at
	`, p.FullName, p.Address, p.Location, p.UserID).Scan(&p.UpdatedAt)
}
