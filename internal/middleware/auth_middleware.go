package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/auth"
	"collabboard/internal/pkg/logger"
)

// Context keys set by RequireAuth.
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// Identity lookups RequireAuth resolves the role claim against. The
// concrete repositories satisfy them.
type (
	StudentLookup interface {
		GetByID(ctx context.Context, id int64) (*models.Student, error)
	}
	TeacherLookup interface {
		GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	}
	AdminLookup interface {
		GetByID(ctx context.Context, id int64) (*models.Admin, error)
	}
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService  *auth.JWTService
	studentRepo StudentLookup
	teacherRepo TeacherLookup
	adminRepo   AdminLookup
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(
	jwtService *auth.JWTService,
	studentRepo StudentLookup,
	teacherRepo TeacherLookup,
	adminRepo AdminLookup,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		studentRepo: studentRepo,
		teacherRepo: teacherRepo,
		adminRepo:   adminRepo,
	}
}

// RequireAuth validates the bearer token and resolves the caller's
// account directly from the table the role claim names. The record is
// reloaded on every request, so a deleted account or a rejected
// teacher loses access even while holding an unexpired token.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Invalid authorization header")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				code = dto.ErrorCodeExpiredToken
				message = "Token has expired"
			}
			abortUnauthorized(c, code, message)
			return
		}

		if err := m.resolveIdentity(c, claims); err != nil {
			switch {
			case errors.Is(err, apperrors.ErrTeacherPending):
				abortForbidden(c, dto.ErrorCodeAccountPending, "Your account is pending admin approval")
			case errors.Is(err, apperrors.ErrTeacherRejected):
				abortForbidden(c, dto.ErrorCodeAccountRejected, "Your account has been rejected")
			default:
				abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			}
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// resolveIdentity loads the account row named by the role claim.
func (m *AuthMiddleware) resolveIdentity(c *gin.Context, claims *auth.Claims) error {
	ctx := c.Request.Context()

	switch claims.Role {
	case models.RoleStudent:
		_, err := m.studentRepo.GetByID(ctx, claims.UserID)
		return err
	case models.RoleTeacher:
		teacher, err := m.teacherRepo.GetByID(ctx, claims.UserID)
		if err != nil {
			return err
		}
		switch teacher.Status {
		case models.TeacherApproved:
			return nil
		case models.TeacherPending:
			return apperrors.ErrTeacherPending
		default:
			return apperrors.ErrTeacherRejected
		}
	case models.RoleAdmin:
		_, err := m.adminRepo.GetByID(ctx, claims.UserID)
		return err
	default:
		return apperrors.ErrTokenInvalid
	}
}

// RequireRole refuses callers whose authenticated role differs from
// the one the route expects. Must run after RequireAuth.
func RequireRole(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextRole)
		if !exists {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required")
			return
		}

		callerRole, ok := value.(models.RoleType)
		if !ok || callerRole != role {
			logger.Warn().
				Str("requiredRole", string(role)).
				Str("path", c.Request.URL.Path).
				Msg("Role mismatch on protected route")
			abortForbidden(c, dto.ErrorCodeForbidden, "Access restricted to "+string(role)+" accounts")
			return
		}

		c.Next()
	}
}

// CurrentUserID returns the authenticated caller's ID from the context.
func CurrentUserID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}

// CurrentRole returns the authenticated caller's role from the context.
func CurrentRole(c *gin.Context) models.RoleType {
	value, _ := c.Get(ContextRole)
	role, _ := value.(models.RoleType)
	return role
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

func abortForbidden(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}
