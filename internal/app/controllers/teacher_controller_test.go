package controllers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"collabboard/internal/app/controllers"
	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/logger"
)

// fakeTeacherService pins per-test behavior for teacher endpoints.
type fakeTeacherService struct {
	loginErr error
}

func (f *fakeTeacherService) Register(_ context.Context, req *dto.RegisterTeacherRequest) (*dto.TeacherResponse, error) {
	return &dto.TeacherResponse{
		ID:         1,
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
		Status:     models.TeacherPending,
	}, nil
}

func (f *fakeTeacherService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.AuthTeacherResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.AuthTeacherResponse{
		TokenResponse: dto.TokenResponse{Token: "token", TokenType: "Bearer", ExpiresIn: 604800},
		Teacher:       dto.TeacherResponse{ID: 1, Status: models.TeacherApproved},
	}, nil
}

func (f *fakeTeacherService) GetProfile(_ context.Context, teacherID int64) (*dto.TeacherResponse, error) {
	return &dto.TeacherResponse{ID: teacherID, Status: models.TeacherApproved}, nil
}

func newTeacherRouter(svc *fakeTeacherService) *gin.Engine {
	controller := controllers.NewTeacherController(svc, logger.GetLogger())

	router := gin.New()
	teachers := router.Group("/api/teachers")
	teachers.POST("/register", controller.Register)
	teachers.POST("/login", controller.Login)
	return router
}

func TestTeacherRegister_StartsPending(t *testing.T) {
	router := newTeacherRouter(&fakeTeacherService{})

	payload := `{"name": "Dr. Imran Malik", "email": "imran@faculty.edu", "password": "s3cret123", "department": "Computer Science"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teachers/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Pending")
	// No credential is issued until the account is approved.
	assert.NotContains(t, w.Body.String(), "token")
}

func TestTeacherLogin_Pending(t *testing.T) {
	router := newTeacherRouter(&fakeTeacherService{loginErr: apperrors.ErrTeacherPending})

	payload := `{"email": "imran@faculty.edu", "password": "s3cret123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teachers/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "pending")
}

func TestTeacherLogin_Rejected(t *testing.T) {
	router := newTeacherRouter(&fakeTeacherService{loginErr: apperrors.ErrTeacherRejected})

	payload := `{"email": "imran@faculty.edu", "password": "s3cret123"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teachers/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "rejected")
}

func TestTeacherLogin_WrongPassword(t *testing.T) {
	router := newTeacherRouter(&fakeTeacherService{loginErr: apperrors.ErrInvalidCredentials})

	payload := `{"email": "imran@faculty.edu", "password": "wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teachers/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTeacherRegister_InvalidEmail(t *testing.T) {
	router := newTeacherRouter(&fakeTeacherService{})

	payload := `{"name": "Dr. Imran Malik", "email": "not-an-email", "password": "s3cret123", "department": "CS"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/teachers/register", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
