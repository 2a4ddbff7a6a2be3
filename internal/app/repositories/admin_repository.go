package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabboard/internal/app/models"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/dberrors"
)

// AdminRepository handles database operations for admins
type AdminRepository struct {
	db *pgxpool.Pool
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts a new admin and returns its ID. Admins are only
// created by seeding, never via the API.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO admins (name, email, password, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		admin.Name, admin.Email, admin.Password, admin.Role).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "admins_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating admin: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// GetByID retrieves an admin by ID
func (r *AdminRepository) GetByID(ctx context.Context, id int64) (*models.Admin, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *AdminRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Admin, error) {
	admin := &models.Admin{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, role, created_at, updated_at
		FROM admins `+where, arg).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.Password,
		&admin.Role, &admin.CreatedAt, &admin.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error getting admin: %w", err)
	}

	return admin, nil
}

// EmailExists checks if an admin email is already registered
func (r *AdminRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// UpdatePassword replaces an admin's credential hash.
func (r *AdminRepository) UpdatePassword(ctx context.Context, id int64, hashedPassword string) error {
	result, err := r.db.Exec(ctx, `
		UPDATE admins SET password = $1, updated_at = NOW() WHERE id = $2`,
		hashedPassword, id)
	if err != nil {
		return fmt.Errorf("error updating admin password: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrAdminNotFound
	}
	return nil
}
