package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"collabboard/internal/app/models"
	"collabboard/internal/app/models/dto"
	"collabboard/internal/app/services"
	"collabboard/internal/pkg/apperrors"
	"collabboard/internal/pkg/auth"
)

type fakeTeacherRepo struct {
	teachers map[int64]*models.Teacher
	nextID   int64
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{teachers: map[int64]*models.Teacher{}}
}

func (f *fakeTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) (int64, error) {
	if exists, _ := f.EmailExists(ctx, teacher.Email); exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	stored := *teacher
	stored.ID = f.nextID
	stored.Status = models.TeacherPending
	f.teachers[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeTeacherRepo) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			cp := *t
			return &cp, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (f *fakeTeacherRepo) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	t, ok := f.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTeacherRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, t := range f.teachers {
		if t.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTeacherRepo) ListByStatus(ctx context.Context, status *models.TeacherStatus) ([]models.Teacher, error) {
	var out []models.Teacher
	for _, t := range f.teachers {
		if status == nil || t.Status == *status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeacherRepo) UpdateStatus(ctx context.Context, id int64, status models.TeacherStatus) error {
	t, ok := f.teachers[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	t.Status = status
	return nil
}

func (f *fakeTeacherRepo) CountByStatus(ctx context.Context, status models.TeacherStatus) (int64, error) {
	var count int64
	for _, t := range f.teachers {
		if t.Status == status {
			count++
		}
	}
	return count, nil
}

func newTeacherService(repo *fakeTeacherRepo) services.TeacherService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "service-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collabboard.test",
	})
	return services.NewTeacherService(repo, jwtService, zerolog.Nop())
}

func registerTeacher(t *testing.T, svc services.TeacherService) *dto.TeacherResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterTeacherRequest{
		Name:       "John Smith",
		Email:      "smith@college.edu",
		Password:   "s3cret123",
		Department: "Computer Science",
	})
	require.NoError(t, err)
	return resp
}

func TestTeacherRegisterStartsPending(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)

	resp := registerTeacher(t, svc)

	assert.Equal(t, models.TeacherPending, resp.Status)
	assert.NotZero(t, resp.ID)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret123", stored.Password)
}

func TestTeacherRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)
	registerTeacher(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterTeacherRequest{
		Name:       "Another Smith",
		Email:      "smith@college.edu",
		Password:   "different1",
		Department: "Mathematics",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestTeacherLoginPendingRefused(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)
	registerTeacher(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "smith@college.edu",
		Password: "s3cret123",
	})

	assert.ErrorIs(t, err, apperrors.ErrTeacherPending)
}

func TestTeacherLoginRejectedRefused(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)
	resp := registerTeacher(t, svc)

	require.NoError(t, repo.UpdateStatus(context.Background(), resp.ID, models.TeacherRejected))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "smith@college.edu",
		Password: "s3cret123",
	})

	assert.ErrorIs(t, err, apperrors.ErrTeacherRejected)
}

func TestTeacherLoginApprovedIssuesToken(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)
	resp := registerTeacher(t, svc)

	require.NoError(t, repo.UpdateStatus(context.Background(), resp.ID, models.TeacherApproved))

	authResp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "smith@college.edu",
		Password: "s3cret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, authResp.Token)
	assert.Equal(t, "Bearer", authResp.TokenType)
	assert.Equal(t, models.TeacherApproved, authResp.Teacher.Status)
}

func TestTeacherLoginWrongPassword(t *testing.T) {
	repo := newFakeTeacherRepo()
	svc := newTeacherService(repo)
	resp := registerTeacher(t, svc)

	require.NoError(t, repo.UpdateStatus(context.Background(), resp.ID, models.TeacherApproved))

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "smith@college.edu",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestTeacherLoginUnknownEmail(t *testing.T) {
	svc := newTeacherService(newFakeTeacherRepo())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@college.edu",
		Password: "whatever1",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
