package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/auth"
)

// recentProjectsLimit caps the recent-project sample in statistics.
const recentProjectsLimit = 5

// AdminService defines the interface for administration operations
type AdminService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthAdminResponse, error)
	GetProfile(ctx context.Context, adminID int64) (*dto.AdminResponse, error)
	ChangePassword(ctx context.Context, adminID int64, req *dto.ChangePasswordRequest) error
	ListTeachers(ctx context.Context, status *models.TeacherStatus) ([]dto.TeacherResponse, error)
	UpdateTeacherStatus(ctx context.Context, teacherID int64, status models.TeacherStatus) (*dto.TeacherResponse, error)
	GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

// adminServiceImpl implements AdminService
type adminServiceImpl struct {
	adminRepo   AdminRepository
	teacherRepo TeacherRepository
	studentRepo StudentRepository
	projectRepo ProjectRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAdminService creates a new AdminService
func NewAdminService(
	adminRepo AdminRepository,
	teacherRepo TeacherRepository,
	studentRepo StudentRepository,
	projectRepo ProjectRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AdminService {
	return &adminServiceImpl{
		adminRepo:   adminRepo,
		teacherRepo: teacherRepo,
		studentRepo: studentRepo,
		projectRepo: projectRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login authenticates an admin by email and password.
func (s *adminServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthAdminResponse, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(admin.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(admin.ID, admin.Email, models.RoleAdmin)
	if err != nil {
		s.logger.Error().Err(err).Int64("adminId", admin.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("adminId", admin.ID).Msg("Admin logged in")
	return &dto.AuthAdminResponse{
		TokenResponse: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
		Admin: dto.AdminToResponse(admin),
	}, nil
}

// GetProfile returns the admin's own account details.
func (s *adminServiceImpl) GetProfile(ctx context.Context, adminID int64) (*dto.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	resp := dto.AdminToResponse(admin)
	return &resp, nil
}

// ChangePassword replaces the admin's password after verifying the
// current one.
func (s *adminServiceImpl) ChangePassword(ctx context.Context, adminID int64, req *dto.ChangePasswordRequest) error {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(admin.Password, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash new password")
		return err
	}

	if err := s.adminRepo.UpdatePassword(ctx, adminID, hashed); err != nil {
		return err
	}

	s.logger.Info().Int64("adminId", adminID).Msg("Admin password changed")
	return nil
}

// ListTeachers returns teacher accounts, optionally filtered by status.
func (s *adminServiceImpl) ListTeachers(ctx context.Context, status *models.TeacherStatus) ([]dto.TeacherResponse, error) {
	teachers, err := s.teacherRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return dto.TeachersToResponse(teachers), nil
}

// UpdateTeacherStatus approves or rejects a teacher account.
func (s *adminServiceImpl) UpdateTeacherStatus(ctx context.Context, teacherID int64, status models.TeacherStatus) (*dto.TeacherResponse, error) {
	if status != models.TeacherApproved && status != models.TeacherRejected {
		return nil, apperrors.NewBadRequestError("Status must be Approved or Rejected")
	}

	if err := s.teacherRepo.UpdateStatus(ctx, teacherID, status); err != nil {
		return nil, err
	}

	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("teacherId", teacherID).
		Str("status", string(status)).
		Msg("Teacher status updated")

	resp := dto.TeacherToResponse(teacher)
	return &resp, nil
}

// GetStatistics aggregates portal-wide counts and a recent-project
// sample for the admin dashboard.
func (s *adminServiceImpl) GetStatistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	totalStudents, err := s.studentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalProjects, err := s.projectRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	approvedTeachers, err := s.teacherRepo.CountByStatus(ctx, models.TeacherApproved)
	if err != nil {
		return nil, err
	}

	pendingTeachers, err := s.teacherRepo.CountByStatus(ctx, models.TeacherPending)
	if err != nil {
		return nil, err
	}

	byStatus, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.projectRepo.ListAllWithStudents(ctx, recentProjectsLimit)
	if err != nil {
		return nil, err
	}

	return &dto.StatisticsResponse{
		TotalStudents:   totalStudents,
		TotalTeachers:   approvedTeachers,
		TotalProjects:   totalProjects,
		PendingTeachers: pendingTeachers,
		ProjectsByStatus: dto.ProjectsByStatusResponse{
			Pending:  byStatus[models.ProjectPending],
			Reviewed: byStatus[models.ProjectReviewed],
			Approved: byStatus[models.ProjectApproved],
		},
		RecentProjects: dto.ProjectsWithStudentsToResponse(recent),
	}, nil
}
