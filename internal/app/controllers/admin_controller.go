package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/app/services"
	"collabboard/internal/middleware"
	"collabboard/internal/pkg/apperrors"
)

// AdminController handles administration endpoints
type AdminController struct {
	adminService services.AdminService
	logger       zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(adminService services.AdminService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		adminService: adminService,
		logger:       logger,
	}
}

// Login handles admin authentication.
func (c *AdminController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	resp, err := c.adminService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", resp))
}

// GetProfile returns the authenticated admin's account.
func (c *AdminController) GetProfile(ctx *gin.Context) {
	resp, err := c.adminService.GetProfile(ctx.Request.Context(), middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Profile retrieved", resp))
}

// ChangePassword replaces the admin's password after verifying the
// current one.
func (c *AdminController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	if err := c.adminService.ChangePassword(ctx.Request.Context(), middleware.CurrentUserID(ctx), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Password changed successfully", nil))
}

// ListPendingTeachers returns teacher accounts awaiting approval.
func (c *AdminController) ListPendingTeachers(ctx *gin.Context) {
	status := models.TeacherPending
	teachers, err := c.adminService.ListTeachers(ctx.Request.Context(), &status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Pending teachers retrieved", teachers))
}

// ListAllTeachers returns every teacher account regardless of status.
func (c *AdminController) ListAllTeachers(ctx *gin.Context) {
	teachers, err := c.adminService.ListTeachers(ctx.Request.Context(), nil)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Teachers retrieved", teachers))
}

// ApproveTeacher marks a pending teacher account as approved.
func (c *AdminController) ApproveTeacher(ctx *gin.Context) {
	c.updateTeacherStatus(ctx, models.TeacherApproved, "Teacher approved")
}

// RejectTeacher marks a teacher account as rejected.
func (c *AdminController) RejectTeacher(ctx *gin.Context) {
	c.updateTeacherStatus(ctx, models.TeacherRejected, "Teacher rejected")
}

func (c *AdminController) updateTeacherStatus(ctx *gin.Context, status models.TeacherStatus, message string) {
	teacherID, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("Invalid teacher ID"))
		return
	}

	resp, err := c.adminService.UpdateTeacherStatus(ctx.Request.Context(), teacherID, status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(message, resp))
}

// GetStatistics returns the admin dashboard aggregate.
func (c *AdminController) GetStatistics(ctx *gin.Context) {
	stats, err := c.adminService.GetStatistics(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Statistics retrieved", stats))
}
