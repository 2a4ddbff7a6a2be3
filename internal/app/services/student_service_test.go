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

type fakeStudentRepo struct {
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[int64]*models.Student{}}
}

func (f *fakeStudentRepo) Create(ctx context.Context, student *models.Student) (int64, error) {
	f.nextID++
	stored := *student
	stored.ID = f.nextID
	f.students[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (f *fakeStudentRepo) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	s, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeStudentRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	return err == nil, nil
}

func (f *fakeStudentRepo) RollNoExists(ctx context.Context, rollNo string) (bool, error) {
	for _, s := range f.students {
		if s.RollNo == rollNo {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.students)), nil
}

func newStudentService(repo *fakeStudentRepo) services.StudentService {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "service-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collabboard.test",
	})
	return services.NewStudentService(repo, jwtService, zerolog.Nop())
}

func registerStudent(t *testing.T, svc services.StudentService) *dto.AuthStudentResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Ayesha Khan",
		Email:    "ayesha@student.edu",
		Password: "s3cret123",
		RollNo:   "CS-2021-042",
		Course:   "BS Computer Science",
	})
	require.NoError(t, err)
	return resp
}

func TestStudentRegisterIssuesToken(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())

	resp := registerStudent(t, svc)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "CS-2021-042", resp.Student.RollNo)
	assert.Equal(t, "BS Computer Science", resp.Student.Course)
}

func TestStudentRegisterDuplicateEmail(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())
	registerStudent(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Other Khan",
		Email:    "ayesha@student.edu",
		Password: "different1",
		RollNo:   "CS-2021-043",
		Course:   "BS Computer Science",
	})

	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestStudentRegisterDuplicateRollNo(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())
	registerStudent(t, svc)

	_, err := svc.Register(context.Background(), &dto.RegisterStudentRequest{
		Name:     "Other Khan",
		Email:    "other@student.edu",
		Password: "different1",
		RollNo:   "CS-2021-042",
		Course:   "BS Computer Science",
	})

	assert.ErrorIs(t, err, apperrors.ErrRollNoAlreadyExists)
}

func TestStudentLoginRoundTrip(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())
	registerStudent(t, svc)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ayesha@student.edu",
		Password: "s3cret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestStudentLoginWrongPassword(t *testing.T) {
	svc := newStudentService(newFakeStudentRepo())
	registerStudent(t, svc)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "ayesha@student.edu",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
