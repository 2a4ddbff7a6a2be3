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
)

// projectColumns are the columns of the projects table in scan order.
var projectColumns = []string{
	"id", "student_id", "title", "description", "file_path", "original_filename",
	"github_link", "submission_date", "status", "marks", "feedback", "comments",
	"created_at", "updated_at",
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row pgx.Row, p *models.Project) error {
	return row.Scan(
		&p.ID, &p.StudentID, &p.Title, &p.Description, &p.FilePath, &p.OriginalFilename,
		&p.GithubLink, &p.SubmissionDate, &p.Status, &p.Marks, &p.Feedback, &p.Comments,
		&p.CreatedAt, &p.UpdatedAt)
}

// Create inserts a new Pending project and returns its ID.
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (int64, error) {
	query := squirrel.Insert("projects").
		Columns("student_id", "title", "description", "file_path", "original_filename", "github_link", "status").
		Values(project.StudentID, project.Title, project.Description, project.FilePath,
			project.OriginalFilename, project.GithubLink, models.ProjectPending).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error creating project: %w", err)
	}

	return id, nil
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := squirrel.Select(projectColumns...).
		From("projects").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	project := &models.Project{}
	if err := scanProject(r.db.QueryRow(ctx, sql, args...), project); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error getting project: %w", err)
	}

	return project, nil
}

// ListByStudent retrieves a student's own projects, newest first.
func (r *ProjectRepository) ListByStudent(ctx context.Context, studentID int64) ([]models.Project, error) {
	query := squirrel.Select(projectColumns...).
		From("projects").
		Where("student_id = ?", studentID).
		OrderBy("submission_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// ListAllWithStudents retrieves all projects joined with the owning
// student's identity, newest first. A limit of 0 means no limit.
func (r *ProjectRepository) ListAllWithStudents(ctx context.Context, limit uint64) ([]models.ProjectWithStudent, error) {
	query := squirrel.Select(
		"p.id", "p.student_id", "p.title", "p.description", "p.file_path", "p.original_filename",
		"p.github_link", "p.submission_date", "p.status", "p.marks", "p.feedback", "p.comments",
		"p.created_at", "p.updated_at",
		"s.id", "s.name", "s.email", "s.roll_no").
		From("projects p").
		Join("students s ON s.id = p.student_id").
		OrderBy("p.submission_date DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		query = query.Limit(limit)
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

	var projects []models.ProjectWithStudent
	for rows.Next() {
		var p models.ProjectWithStudent
		err := rows.Scan(
			&p.ID, &p.StudentID, &p.Title, &p.Description, &p.FilePath, &p.OriginalFilename,
			&p.GithubLink, &p.SubmissionDate, &p.Status, &p.Marks, &p.Feedback, &p.Comments,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Student.ID, &p.Student.Name, &p.Student.Email, &p.Student.RollNo)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// UpdateEvaluation writes the evaluation fields of a project in one
// statement. Single-row write, last-write-wins under concurrency.
func (r *ProjectRepository) UpdateEvaluation(ctx context.Context, project *models.Project) error {
	query := squirrel.Update("projects").
		Set("marks", project.Marks).
		Set("feedback", project.Feedback).
		Set("comments", project.Comments).
		Set("status", project.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id = ?", project.ID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrProjectNotFound
	}

	return nil
}

// Count returns the total number of projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting projects: %w", err)
	}
	return count, nil
}

// CountByStatus returns project counts partitioned by status. Statuses
// with no projects are reported as zero.
func (r *ProjectRepository) CountByStatus(ctx context.Context) (map[models.ProjectStatus]int64, error) {
	counts := map[models.ProjectStatus]int64{
		models.ProjectPending:  0,
		models.ProjectReviewed: 0,
		models.ProjectApproved: 0,
	}

	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting projects by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status models.ProjectStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
