package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"collabboard/internal/middleware"
	"collabboard/internal/pkg/apperrors"
)

func performWithError(err error) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/fail", func(c *gin.Context) {
		middleware.HandleAPIError(c, err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return w
}

func TestHandleAPIError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"InvalidCredentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"TeacherPending", apperrors.ErrTeacherPending, http.StatusForbidden},
		{"TeacherRejected", apperrors.ErrTeacherRejected, http.StatusForbidden},
		{"PermissionDenied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"EmailExists", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"RollNoExists", apperrors.ErrRollNoAlreadyExists, http.StatusConflict},
		{"ProjectNotFound", apperrors.ErrProjectNotFound, http.StatusNotFound},
		{"FileMissing", apperrors.ErrProjectFileMissing, http.StatusBadRequest},
		{"FileTooLarge", apperrors.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"FileType", apperrors.ErrFileTypeNotAllowed, http.StatusBadRequest},
		{"Unknown", errors.New("pgx: connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performWithError(tc.err)
			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandleAPIError_NeverLeaksInternalDetail(t *testing.T) {
	w := performWithError(errors.New("pq: password authentication failed for user postgres"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "postgres")
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestHandleAPIError_CustomMessage(t *testing.T) {
	w := performWithError(apperrors.NewBadRequestError("Invalid teacher ID"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid teacher ID")
}
