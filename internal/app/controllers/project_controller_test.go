package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabboard/internal/app/controllers"
	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/app/services"
	"collabboard/internal/middleware"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeProjectService lets each test pin the behavior of one endpoint.
type fakeProjectService struct {
	uploadFn   func(studentID int64, req *dto.UploadProjectRequest) (*dto.ProjectResponse, error)
	evaluateFn func(projectID int64, req *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error)
	downloadFn func(projectID, requesterID int64, role models.RoleType) (*services.ProjectDownload, error)
	listOwn    []dto.ProjectResponse
	listAll    []dto.ProjectWithStudentResponse
}

func (f *fakeProjectService) Upload(_ context.Context, studentID int64, req *dto.UploadProjectRequest, _ *multipart.FileHeader) (*dto.ProjectResponse, error) {
	return f.uploadFn(studentID, req)
}

func (f *fakeProjectService) ListByStudent(_ context.Context, _ int64) ([]dto.ProjectResponse, error) {
	return f.listOwn, nil
}

func (f *fakeProjectService) ListAll(_ context.Context) ([]dto.ProjectWithStudentResponse, error) {
	return f.listAll, nil
}

func (f *fakeProjectService) Evaluate(_ context.Context, projectID int64, req *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error) {
	return f.evaluateFn(projectID, req)
}

func (f *fakeProjectService) PrepareDownload(_ context.Context, projectID, requesterID int64, role models.RoleType) (*services.ProjectDownload, error) {
	return f.downloadFn(projectID, requesterID, role)
}

// asIdentity injects authenticated-caller context the way RequireAuth
// would.
func asIdentity(userID int64, role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextRole, role)
	}
}

func newProjectRouter(svc services.ProjectService, userID int64, role models.RoleType) *gin.Engine {
	controller := controllers.NewProjectController(svc, logger.GetLogger())

	router := gin.New()
	api := router.Group("/api/projects", asIdentity(userID, role))
	api.POST("/upload", controller.Upload)
	api.GET("/student/me", controller.ListOwn)
	api.GET("/teacher/all", controller.ListAll)
	api.PUT("/evaluate/:id", controller.Evaluate)
	api.GET("/download/:id", controller.Download)
	return router
}

func multipartUpload(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if filename != "" {
		part, err := writer.CreateFormFile("projectFile", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("archive bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	svc := &fakeProjectService{
		uploadFn: func(studentID int64, req *dto.UploadProjectRequest) (*dto.ProjectResponse, error) {
			assert.Equal(t, int64(7), studentID)
			assert.Equal(t, "Compiler in Go", req.Title)
			return &dto.ProjectResponse{ID: 1, StudentID: studentID, Title: req.Title, Status: models.ProjectPending}, nil
		},
	}
	router := newProjectRouter(svc, 7, models.RoleStudent)

	body, contentType := multipartUpload(t, map[string]string{
		"title":       "Compiler in Go",
		"description": "A toy compiler for a C subset",
	}, "compiler.zip")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Compiler in Go")
}

func TestUpload_MissingFile(t *testing.T) {
	svc := &fakeProjectService{
		uploadFn: func(int64, *dto.UploadProjectRequest) (*dto.ProjectResponse, error) {
			t.Fatal("service must not be called without a file")
			return nil, nil
		},
	}
	router := newProjectRouter(svc, 7, models.RoleStudent)

	body, contentType := multipartUpload(t, map[string]string{
		"title":       "Compiler in Go",
		"description": "A toy compiler for a C subset",
	}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/projects/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "required")
}

func TestEvaluate_Success(t *testing.T) {
	svc := &fakeProjectService{
		evaluateFn: func(projectID int64, req *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error) {
			assert.Equal(t, int64(3), projectID)
			assert.Equal(t, 85, *req.Marks)
			marks := *req.Marks
			return &dto.ProjectResponse{ID: projectID, Marks: &marks, Status: models.ProjectApproved}, nil
		},
	}
	router := newProjectRouter(svc, 2, models.RoleTeacher)

	payload := `{"marks": 85, "feedback": "well done", "status": "Approved"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/evaluate/3", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, models.ProjectApproved, resp.Data.Status)
	assert.Equal(t, 85, *resp.Data.Marks)
}

func TestEvaluate_MarksOutOfRange(t *testing.T) {
	svc := &fakeProjectService{
		evaluateFn: func(int64, *dto.EvaluateProjectRequest) (*dto.ProjectResponse, error) {
			t.Fatal("service must not be called with invalid marks")
			return nil, nil
		},
	}
	router := newProjectRouter(svc, 2, models.RoleTeacher)

	payload := `{"marks": 150}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/evaluate/3", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEvaluate_BadID(t *testing.T) {
	router := newProjectRouter(&fakeProjectService{}, 2, models.RoleTeacher)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/projects/evaluate/abc", strings.NewReader(`{"marks": 50}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDownload_ForbiddenForOtherStudent(t *testing.T) {
	svc := &fakeProjectService{
		downloadFn: func(projectID, requesterID int64, role models.RoleType) (*services.ProjectDownload, error) {
			assert.Equal(t, models.RoleStudent, role)
			return nil, apperrors.ErrPermissionDenied
		},
	}
	router := newProjectRouter(svc, 99, models.RoleStudent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/download/3", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListOwn(t *testing.T) {
	svc := &fakeProjectService{
		listOwn: []dto.ProjectResponse{
			{ID: 2, Title: "Newest", Status: models.ProjectPending},
			{ID: 1, Title: "Oldest", Status: models.ProjectReviewed},
		},
	}
	router := newProjectRouter(svc, 7, models.RoleStudent)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects/student/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []dto.ProjectResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Newest", resp.Data[0].Title)
}
