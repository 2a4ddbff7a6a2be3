package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"collabboard/internal/app/models/dto"
	"collabboard/internal/app/services"
	"collabboard/internal/middleware"
)

// TeacherController handles teacher account endpoints
type TeacherController struct {
	teacherService services.TeacherService
	logger         zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		logger:         logger,
	}
}

// Register handles teacher registration. The new account starts in
// Pending state and no token is issued.
func (c *TeacherController) Register(ctx *gin.Context) {
	var req dto.RegisterTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid teacher registration payload")
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.teacherService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Registration received, awaiting admin approval", resp))
}

// Login handles teacher authentication. Pending and rejected accounts
// are refused.
func (c *TeacherController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.teacherService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", resp))
}

// GetProfile returns the authenticated teacher's account.
func (c *TeacherController) GetProfile(ctx *gin.Context) {
	resp, err := c.teacherService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile retrieved", resp))
}
