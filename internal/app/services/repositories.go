package services

import (
	"context"

	"collabboard/internal/app/models"
)

// Persistence surfaces the services depend on. The concrete
// repositories package satisfies them; tests substitute fakes.

// StudentRepository is the student persistence surface.
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	RollNoExists(ctx context.Context, rollNo string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// TeacherRepository is the teacher persistence surface.
type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListByStatus(ctx context.Context, status *models.TeacherStatus) ([]models.Teacher, error)
	UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error
	CountByStatus(ctx context.Context, status models.TeacherStatus) (int64, error)
}

// AdminRepository is the admin persistence surface.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id int64) (*models.Admin, error)
	UpdatePassword(ctx context.Context, id int64, hashedPassword string) error
}

// ProjectRepository is the project persistence surface.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	ListByStudent(ctx context.Context, studentID int64) ([]models.Project, error)
	ListAllWithStudents(ctx context.Context, limit uint64) ([]models.ProjectWithStudent, error)
	UpdateEvaluation(ctx context.Context, project *models.Project) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) (map[models.ProjectStatus]int64, error)
}
