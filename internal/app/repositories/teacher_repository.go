package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"collabboard/internal/app/models"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/dberrors"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// Create inserts a new teacher (always Pending) and returns its ID.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO teachers (name, email, password, department, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		teacher.Name, teacher.Email, teacher.Password, teacher.Department, models.TeacherPending).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a teacher by email
func (r *TeacherRepository) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *TeacherRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Teacher, error) {
	teacher := &models.Teacher{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, department, status, created_at, updated_at
		FROM teachers `+where, arg).Scan(
		&teacher.ID, &teacher.Name, &teacher.Email, &teacher.Password,
		&teacher.Department, &teacher.Status, &teacher.CreatedAt, &teacher.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error getting teacher: %w", err)
	}

	return teacher, nil
}

// EmailExists checks if a teacher email is already registered
func (r *TeacherRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM teachers WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// ListByStatus retrieves teachers with the given status, newest first.
// A nil status returns all teachers.
func (r *TeacherRepository) ListByStatus(ctx context.Context, status *models.TeacherStatus) ([]models.Teacher, error) {
	query := squirrel.Select("id", "name", "email", "password", "department", "status", "created_at", "updated_at").
		From("teachers").
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if status != nil {
		query = query.Where("status = ?", *status)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var teachers []models.Teacher
	for rows.Next() {
		var t models.Teacher
		if err := rows.Scan(&t.ID, &t.Name, &t.Email, &t.Password,
			&t.Department, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		teachers = append(teachers, t)
	}

	return teachers, rows.Err()
}

// UpdateStatus moves a teacher to the given approval status.
func (r *TeacherRepository) UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error {
	result, err := r.db.Exec(ctx, `
		UPDATE teachers SET status = $1, updated_at = NOW() WHERE id = $2`,
		status, id)
	if err != nil {
		return fmt.Errorf("error updating teacher status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// CountByStatus returns the number of teachers with the given status.
func (r *TeacherRepository) CountByStatus(ctx context.Context, status models.TeacherStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
