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

// StudentService defines the interface for student account operations
type StudentService interface {
	Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthStudentResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthStudentResponse, error)
	GetProfile(ctx context.Context, studentID int64) (*dto.StudentResponse, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo StudentRepository
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(
	studentRepo StudentRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Register creates a student account and issues a token so the student
// is signed in immediately after registering.
func (s *studentServiceImpl) Register(ctx context.Context, req *dto.RegisterStudentRequest) (*dto.AuthStudentResponse, error) {
	if taken, err := s.studentRepo.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrEmailAlreadyExists
	}
	if taken, err := s.studentRepo.RollNoExists(ctx, req.RollNo); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrRollNoAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	student := &models.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		RollNo:   req.RollNo,
		Course:   req.Course,
	}

	id, err := s.studentRepo.Create(ctx, student)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) || errors.Is(err, apperrors.ErrRollNoAlreadyExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to create student")
		return nil, err
	}
	student.ID = id

	s.logger.Info().Int64("studentId", id).Str("email", student.Email).Msg("Student registered")
	return s.buildAuthResponse(student)
}

// Login authenticates a student by email and password.
func (s *studentServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthStudentResponse, error) {
	student, err := s.studentRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.logger.Info().Int64("studentId", student.ID).Msg("Student logged in")
	return s.buildAuthResponse(student)
}

// GetProfile returns the student's own account details.
func (s *studentServiceImpl) GetProfile(ctx context.Context, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	resp := dto.StudentToResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) buildAuthResponse(student *models.Student) (*dto.AuthStudentResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(student.ID, student.Email, models.RoleStudent)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentId", student.ID).Msg("Failed to generate token")
		return nil, err
	}

	return &dto.AuthStudentResponse{
		TokenResponse: dto.TokenResponse{
			Token:     token,
			TokenType: "Bearer",
			ExpiresIn: expiresIn,
		},
		Student: dto.StudentToResponse(student),
	}, nil
}
