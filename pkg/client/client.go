package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"collabboard/internal/app/models/dto"
)

// Client is a typed HTTP client for the portal API. Authentication
// state lives in the injected SessionStore, never in package globals.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sessions   SessionStore
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a portal API client. Sessions created by the login
// methods are persisted through the given store.
func NewClient(baseURL string, sessions SessionStore, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		sessions: sessions,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// envelope mirrors the server's response wrapper with the payload left
// raw so each call can decode its own type.
type envelope struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *dto.ErrorDetail `json:"error"`
}

// LoginStudent authenticates a student and stores the session.
func (c *Client) LoginStudent(ctx context.Context, email, password string) (*dto.AuthStudentResponse, error) {
	var resp dto.AuthStudentResponse
	if err := c.postJSON(ctx, "/api/students/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.saveSession(&resp.TokenResponse, "student", resp.Student.ID, resp.Student.Email); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterStudent creates a student account and stores the session.
func (c *Client) RegisterStudent(ctx context.Context, req dto.RegisterStudentRequest) (*dto.AuthStudentResponse, error) {
	var resp dto.AuthStudentResponse
	if err := c.postJSON(ctx, "/api/students/register", req, &resp); err != nil {
		return nil, err
	}
	if err := c.saveSession(&resp.TokenResponse, "student", resp.Student.ID, resp.Student.Email); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginTeacher authenticates a teacher and stores the session.
func (c *Client) LoginTeacher(ctx context.Context, email, password string) (*dto.AuthTeacherResponse, error) {
	var resp dto.AuthTeacherResponse
	if err := c.postJSON(ctx, "/api/teachers/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.saveSession(&resp.TokenResponse, "teacher", resp.Teacher.ID, resp.Teacher.Email); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RegisterTeacher creates a teacher account. The account starts
// pending, so no session is stored.
func (c *Client) RegisterTeacher(ctx context.Context, req dto.RegisterTeacherRequest) (*dto.TeacherResponse, error) {
	var resp dto.TeacherResponse
	if err := c.postJSON(ctx, "/api/teachers/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// LoginAdmin authenticates an admin and stores the session.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*dto.AuthAdminResponse, error) {
	var resp dto.AuthAdminResponse
	if err := c.postJSON(ctx, "/api/admin/login", dto.LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	if err := c.saveSession(&resp.TokenResponse, "admin", resp.Admin.ID, resp.Admin.Email); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Logout clears the stored session.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

// Session returns the stored session, or ErrNoSession.
func (c *Client) Session() (*Session, error) {
	return c.sessions.Load()
}

// StudentProfile returns the authenticated student's account.
func (c *Client) StudentProfile(ctx context.Context) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	if err := c.do(ctx, http.MethodGet, "/api/students/profile", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TeacherProfile returns the authenticated teacher's account.
func (c *Client) TeacherProfile(ctx context.Context) (*dto.TeacherResponse, error) {
	var resp dto.TeacherResponse
	if err := c.do(ctx, http.MethodGet, "/api/teachers/profile", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AdminProfile returns the authenticated admin's account.
func (c *Client) AdminProfile(ctx context.Context) (*dto.AdminResponse, error) {
	var resp dto.AdminResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/profile", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadProject submits a project file with its metadata.
func (c *Client) UploadProject(ctx context.Context, req dto.UploadProjectRequest, filePath string) (*dto.ProjectResponse, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := map[string]string{
		"title":       req.Title,
		"description": req.Description,
	}
	if req.GithubLink != "" {
		fields["githubLink"] = req.GithubLink
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return nil, err
		}
	}

	part, err := writer.CreateFormFile("projectFile", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	var resp dto.ProjectResponse
	if err := c.do(ctx, http.MethodPost, "/api/projects/upload", &body, writer.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// MyProjects returns the authenticated student's projects.
func (c *Client) MyProjects(ctx context.Context) ([]dto.ProjectResponse, error) {
	var resp []dto.ProjectResponse
	if err := c.do(ctx, http.MethodGet, "/api/projects/student/me", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AllProjects returns every project joined with its owning student.
func (c *Client) AllProjects(ctx context.Context) ([]dto.ProjectWithStudentResponse, error) {
	var resp []dto.ProjectWithStudentResponse
	if err := c.do(ctx, http.MethodGet, "/api/projects/teacher/all", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// EvaluateProject records marks and feedback on a project.
func (c *Client) EvaluateProject(ctx context.Context, projectID int64, req dto.EvaluateProjectRequest) (*dto.ProjectResponse, error) {
	var resp dto.ProjectResponse
	path := fmt.Sprintf("/api/projects/evaluate/%d", projectID)
	if err := c.putJSON(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DownloadProject writes the project's stored file to w and returns
// the server-suggested filename from the Content-Disposition header.
func (c *Client) DownloadProject(ctx context.Context, projectID int64, w io.Writer) (string, error) {
	path := fmt.Sprintf("/api/projects/download/%d", projectID)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeAPIError(resp)
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return "", err
	}

	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			return params["filename"], nil
		}
	}
	return "", nil
}

// PendingTeachers returns teacher accounts awaiting approval.
func (c *Client) PendingTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	var resp []dto.TeacherResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/teachers/pending", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// AllTeachers returns every teacher account.
func (c *Client) AllTeachers(ctx context.Context) ([]dto.TeacherResponse, error) {
	var resp []dto.TeacherResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/teachers/all", nil, "", &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// ApproveTeacher approves a pending teacher account.
func (c *Client) ApproveTeacher(ctx context.Context, teacherID int64) (*dto.TeacherResponse, error) {
	var resp dto.TeacherResponse
	path := fmt.Sprintf("/api/admin/teachers/approve/%d", teacherID)
	if err := c.putJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RejectTeacher rejects a teacher account.
func (c *Client) RejectTeacher(ctx context.Context, teacherID int64) (*dto.TeacherResponse, error) {
	var resp dto.TeacherResponse
	path := fmt.Sprintf("/api/admin/teachers/reject/%d", teacherID)
	if err := c.putJSON(ctx, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Statistics returns the admin dashboard aggregate.
func (c *Client) Statistics(ctx context.Context) (*dto.StatisticsResponse, error) {
	var resp dto.StatisticsResponse
	if err := c.do(ctx, http.MethodGet, "/api/admin/statistics", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ChangeAdminPassword changes the authenticated admin's password.
func (c *Client) ChangeAdminPassword(ctx context.Context, current, next string) error {
	req := dto.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return c.putJSON(ctx, "/api/admin/change-password", req, nil)
}

func (c *Client) saveSession(token *dto.TokenResponse, role string, userID int64, email string) error {
	return c.sessions.Save(&Session{
		Token:     token.Token,
		Role:      role,
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().Add(time.Duration(token.ExpiresIn) * time.Second),
	})
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

func (c *Client) putJSON(ctx context.Context, path string, payload, out interface{}) error {
	body, contentType, err := encodeJSON(payload)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, path, body, contentType, out)
}

func encodeJSON(payload interface{}) (io.Reader, string, error) {
	if payload == nil {
		return nil, "", nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), "application/json", nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if session, err := c.sessions.Load(); err == nil && session.Token != "" {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body, contentType)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response payload: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Error != nil {
		apiErr.Code = string(env.Error.Code)
		apiErr.Message = env.Error.Message
	}
	return apiErr
}
