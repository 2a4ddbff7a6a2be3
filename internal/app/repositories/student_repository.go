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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student and returns its ID. Duplicate email or
// roll number is reported via the matching conflict sentinel.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO students (name, email, password, roll_no, course)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		student.Name, student.Email, student.Password, student.RollNo, student.Course).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_roll_no_key") {
			return 0, apperrors.ErrRollNoAlreadyExists
		}
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetByEmail retrieves a student by email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *StudentRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.Student, error) {
	student := &models.Student{}
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password, roll_no, course, created_at, updated_at
		FROM students `+where, arg).Scan(
		&student.ID, &student.Name, &student.Email, &student.Password,
		&student.RollNo, &student.Course, &student.CreatedAt, &student.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error getting student: %w", err)
	}

	return student, nil
}

// EmailExists checks if a student email is already registered
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking email: %w", err)
	}
	return exists, nil
}

// RollNoExists checks if a roll number is already registered
func (r *StudentRepository) RollNoExists(ctx context.Context, rollNo string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE roll_no = $1)`, rollNo).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking roll number: %w", err)
	}
	return exists, nil
}

// Count returns the total number of students
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
