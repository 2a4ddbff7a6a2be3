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

// TeacherService defines the interface for teacher account operations
type TeacherService interface {
	Register(ctx context.Context, req *dto.RegisterTeacherRequest) (*dto.TeacherResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthTeacherResponse, error)
	GetProfile(ctx context.Context, teacherID int64) (*dto.TeacherResponse, error)
}

// teacherServiceImpl implements TeacherService
type teacherServiceImpl struct {
	teacherRepo TeacherRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(
	teacherRepo TeacherRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) TeacherService {
	return &teacherServiceImpl{
		teacherRepo: teacherRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a teacher account in Pending state. No token is
// issued; the account is unusable until an admin approves it.
func (s *teacherServiceImpl) Register(ctx context.Context, req *dto.RegisterTeacherRequest) (*dto.TeacherResponse, error) {
	if taken, err := s.teacherRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	teacher := &models.Teacher{
		Name:       req.Name,
		Email:      req.Email,
		Password:   hashed,
		Department: req.Department,
	}

	id, err := s.teacherRepo.Create(ctx, teacher)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create teacher")
		return nil, err
	}
	teacher.ID = id
	teacher.Status = models.TeacherPending

	s.logger.Info().Int64("teacherId", id).Str("email", teacher.Email).Msg("Teacher registered, awaiting approval")
	resp := dto.TeacherToResponse(teacher)
	return &resp, nil
}

// Login authenticates a teacher. Pending and Rejected accounts are
// refused with distinct errors so the caller can explain why.
func (s *teacherServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthTeacherResponse, error) {
	teacher, err := s.teacherRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeacherNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(teacher.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	switch teacher.Status {
	case models.TeacherApproved:
	case models.TeacherPending:
		return nil, apperrors.ErrTeacherPending
	case models.TeacherRejected:
		return nil, apperrors.ErrTeacherRejected
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	token, expiresIn, err := s.jwtService.GenerateToken(teacher.ID, teacher.Email, models.RoleTeacher)
	if err != nil {
		s.logger.Error().Err(err).Int64("teacherId", teacher.ID).Msg("Failed to generate token")
		return nil, err
	}

	s.logger.Info().Int64("teacherId", teacher.ID).Msg("Teacher logged in")
	return &dto.AuthTeacherResponse{
		TokenResponse: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
		Teacher: dto.TeacherToResponse(teacher),
	}, nil
}

// GetProfile returns the teacher's own account details.
func (s *teacherServiceImpl) GetProfile(ctx context.Context, teacherID int64) (*dto.TeacherResponse, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}
	resp := dto.TeacherToResponse(teacher)
	return &resp, nil
}
