package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"collabboard/internal/app/models/dto"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Internal error
// text is logged but never returned to the client.
func HandleAPIError(c *gin.Context, err error) {
	// CustomError carries a caller-safe message alongside its sentinel.
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		switch {
		case errors.Is(err, apperrors.ErrResourceNotFound):
			respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, customErr.Message)
		case errors.Is(err, apperrors.ErrConflict):
			respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, customErr.Message)
		case errors.Is(err, apperrors.ErrPermissionDenied):
			respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, customErr.Message)
		case errors.Is(err, apperrors.ErrBadRequest):
			respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, customErr.Message)
		default:
			respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
		}
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid email or password")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token has expired")
	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrTeacherPending):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountPending, "Your account is pending admin approval")
	case errors.Is(err, apperrors.ErrTeacherRejected):
		respond(c, http.StatusForbidden, dto.ErrorCodeAccountRejected, "Your account has been rejected")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already registered")
	case errors.Is(err, apperrors.ErrRollNoAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Roll number already registered")
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrTeacherNotFound),
		errors.Is(err, apperrors.ErrAdminNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Account not found")
	case errors.Is(err, apperrors.ErrProjectNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Project not found")
	case errors.Is(err, apperrors.ErrProjectFileNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Project file not found")
	case errors.Is(err, apperrors.ErrProjectFileMissing):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Project file is required")
	case errors.Is(err, apperrors.ErrFileTooLarge):
		respond(c, http.StatusRequestEntityTooLarge, dto.ErrorCodeFileTooLarge, "File exceeds the maximum allowed size")
	case errors.Is(err, apperrors.ErrFileTypeNotAllowed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeFileTypeInvalid, "File type is not allowed")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid request")
	default:
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

// HandleValidationError converts binding failures to a 400 response
// with per-field messages when the validator produced them.
func HandleValidationError(c *gin.Context, err error) {
	detail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
		detail = detail.WithDetails(fields)
	}

	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + e.Param()
	case "max":
		return "must be at most " + e.Param()
	case "oneof":
		return "must be one of: " + e.Param()
	case "url":
		return "must be a valid URL"
	default:
		return "is invalid"
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
