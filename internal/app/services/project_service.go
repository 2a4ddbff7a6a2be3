package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/filestorage"
)

// ProjectDownload carries everything a handler needs to stream a
// stored project file back to the client.
type ProjectDownload struct {
	// Path is the absolute filesystem path of the stored file.
	Path string
	// Filename is the name the client should save the file as.
	Filename string
	// ContentType is derived from the original file extension.
	ContentType string
}

// ProjectService defines the interface for project submission and
// evaluation operations
type ProjectService interface {
	Upload(ctx context.Context, studentID int64, req *dto.UploadProjectRequest, file *multipart.FileHeader) (*dto.ProjectResponse, error)
	ListByStudent(ctx context.Context, studentID int64) ([]dto.ProjectResponse, error)
	ListAll(ctx context.Context) ([]dto.ProjectWithStudentResponse, error)
	Evaluate(ctx context.Context, projectID int64, req *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error)
	PrepareDownload(ctx context.Context, projectID int64, requesterID int64, requesterRole models.RoleType) (*ProjectDownload, error)
}

// projectServiceImpl implements ProjectService
type projectServiceImpl struct {
	projectRepo ProjectRepository
	fileStorage filestorage.FileStorage
	logger      zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo ProjectRepository,
	fileStorage filestorage.FileStorage,
	logger zerolog.Logger,
) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

// Upload stores the submitted file and creates the project record.
// The stored file is removed again if the record cannot be created.
func (s *projectServiceImpl) Upload(ctx context.Context, studentID int64, req *dto.UploadProjectRequest, file *multipart.FileHeader) (*dto.ProjectResponse, error) {
	if file == nil {
		return nil, apperrors.ErrProjectFileMissing
	}

	storedPath, err := s.fileStorage.SaveFile(file)
	if err != nil {
		return nil, err
	}

	project := &models.Project{
		StudentID:        studentID,
		Title:            req.Title,
		Description:      req.Description,
		FilePath:         storedPath,
		OriginalFilename: file.Filename,
	}
	if req.GithubLink != "" {
		project.GithubLink = &req.GithubLink
	}

	id, err := s.projectRepo.Create(ctx, project)
	if err != nil {
		if delErr := s.fileStorage.DeleteFile(storedPath); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", storedPath).Msg("Failed to clean up orphaned upload")
		}
		s.logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to create project")
		return nil, err
	}

	created, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("projectId", id).
		Int64("studentId", studentID).
		Str("filename", file.Filename).
		Msg("Project uploaded")

	resp := dto.ProjectToResponse(created)
	return &resp, nil
}

// ListByStudent returns the student's own projects, newest first.
func (s *projectServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]dto.ProjectResponse, error) {
	projects, err := s.projectRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return dto.ProjectsToResponse(projects), nil
}

// ListAll returns every project joined with its owning student,
// newest first.
func (s *projectServiceImpl) ListAll(ctx context.Context) ([]dto.ProjectWithStudentResponse, error) {
	projects, err := s.projectRepo.ListAllWithStudents(ctx, 0)
	if err != nil {
		return nil, err
	}
	return dto.ProjectsWithStudentsToResponse(projects), nil
}

// Evaluate records marks, feedback and the new status on a project.
// Evaluation is mutable; a later call overwrites the previous one.
func (s *projectServiceImpl) Evaluate(ctx context.Context, projectID int64, req *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := project.ApplyEvaluation(*req.Marks, req.Feedback, req.Comments, models.ProjectStatus(req.Status)); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.projectRepo.UpdateEvaluation(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("projectId", projectID).
		Int("marks", *req.Marks).
		Str("status", string(project.Status)).
		Msg("Project evaluated")

	resp := dto.ProjectToResponse(project)
	return &resp, nil
}

// PrepareDownload resolves the stored file for a project after
// checking the requester may access it: the owning student, any
// approved teacher, or an admin.
func (s *projectServiceImpl) PrepareDownload(ctx context.Context, projectID int64, requesterID int64, requesterRole models.RoleType) (*ProjectDownload, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	switch requesterRole {
	case models.RoleAdmin, models.RoleTeacher:
	case models.RoleStudent:
		if project.StudentID != requesterID {
			return nil, apperrors.ErrPermissionDenied
		}
	default:
		return nil, apperrors.ErrPermissionDenied
	}

	if project.FilePath == "" {
		return nil, apperrors.ErrProjectFileNotFound
	}

	return &ProjectDownload{
		Path:        s.fileStorage.FullPath(project.FilePath),
		Filename:    project.OriginalFilename,
		ContentType: filestorage.MimeType(project.OriginalFilename),
	}, nil
}
