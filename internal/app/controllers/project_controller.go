package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"collabboard/internal/app/models/dto"
	"collabboard/internal/app/services"
	"collabboard/internal/middleware"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/filestorage"
)

// projectFileField is the multipart form field carrying the upload.
const projectFileField = "projectFile"

// ProjectController handles project submission, listing, evaluation
// and download endpoints
type ProjectController struct {
	projectService services.ProjectService
	logger         zerolog.Logger
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService services.ProjectService, logger zerolog.Logger) *ProjectController {
	return &ProjectController{
		projectService: projectService,
		logger:         logger,
	}
}

// Upload handles a student's multipart project submission.
func (c *ProjectController) Upload(ctx *gin.Context) {
	var req dto.UploadProjectRequest
	if err := ctx.ShouldBind(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid project upload payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	file, err := ctx.FormFile(projectFileField)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrProjectFileMissing)
		return
	}

	if file.Size > filestorage.MaxFileSize {
		middleware.HandleAPIError(ctx, apperrors.ErrFileTooLarge)
		return
	}

	resp, err := c.projectService.Upload(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Project uploaded successfully", resp))
}

// ListOwn returns the authenticated student's projects, newest first.
func (c *ProjectController) ListOwn(ctx *gin.Context) {
	projects, err := c.projectService.ListByStudent(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Projects retrieved", projects))
}

// ListAll returns every project joined with its owning student.
func (c *ProjectController) ListAll(ctx *gin.Context) {
	projects, err := c.projectService.ListAll(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Projects retrieved", projects))
}

// Evaluate records marks, feedback and a new status on a project.
func (c *ProjectController) Evaluate(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid project ID"))
		return
	}

	var req dto.EvaluateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.projectService.Evaluate(ctx.Request.Context(), projectID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Project evaluated successfully", resp))
}

// Download streams a project's stored file as an attachment. Access is
// restricted to the owning student, approved teachers and admins.
func (c *ProjectController) Download(ctx *gin.Context) {
	projectID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid project ID"))
		return
	}

	download, err := c.projectService.PrepareDownload(
		ctx.Request.Context(),
		projectID,
		middleware.CurrentUserID(ctx),
		middleware.CurrentRole(ctx),
	)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", download.ContentType)
	ctx.FileAttachment(download.Path, download.Filename)
}
