package dto

import "collabboard/internal/app/models"

// RegisterStudentRequest is the payload for student registration.
type RegisterStudentRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100" example:"Ayesha Khan"`
	Email    string `json:"email" binding:"required,email" example:"ayesha@student.edu"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"s3cret123"`
	RollNo   string `json:"rollNo" binding:"required,min=1,max=50" example:"CS-2021-042"`
	Course   string `json:"course" binding:"required,min=2,max=100" example:"BS Computer Science"`
}

// RegisterTeacherRequest is the payload for teacher registration.
// Accounts start as pending and cannot log in until an admin approves them.
type RegisterTeacherRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100" example:"Dr. Imran Malik"`
	Email      string `json:"email" binding:"required,email" example:"imran@faculty.edu"`
	Password   string `json:"password" binding:"required,min=6,max=72" example:"s3cret123"`
	Department string `json:"department" binding:"required,min=2,max=100" example:"Computer Science"`
}

// LoginRequest is the payload for all three login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ayesha@student.edu"`
	Password string `json:"password" binding:"required" example:"s3cret123"`
}

// TokenResponse carries an issued bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"604800"`
}

// StudentResponse is the public view of a student account.
type StudentResponse struct {
	ID     int64  `json:"id" example:"1"`
	Name   string `json:"name" example:"Ayesha Khan"`
	Email  string `json:"email" example:"ayesha@student.edu"`
	RollNo string `json:"rollNo" example:"CS-2021-042"`
	Course string `json:"course" example:"BS Computer Science"`
}

// TeacherResponse is the public view of a teacher account.
type TeacherResponse struct {
	ID         int64                `json:"id" example:"1"`
	Name       string               `json:"name" example:"Dr. Imran Malik"`
	Email      string               `json:"email" example:"imran@faculty.edu"`
	Department string               `json:"department" example:"Computer Science"`
	Status     models.TeacherStatus `json:"status" example:"Approved"`
}

// AdminResponse is the public view of an admin account.
type AdminResponse struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Portal Admin"`
	Email string `json:"email" example:"admin@portal.edu"`
}

// AuthStudentResponse pairs a token with the authenticated student.
type AuthStudentResponse struct {
	TokenResponse
	Student StudentResponse `json:"student"`
}

// AuthTeacherResponse pairs a token with the authenticated teacher.
type AuthTeacherResponse struct {
	TokenResponse
	Teacher TeacherResponse `json:"teacher"`
}

// AuthAdminResponse pairs a token with the authenticated admin.
type AuthAdminResponse struct {
	TokenResponse
	Admin AdminResponse `json:"admin"`
}

// StudentToResponse maps a student model to its response form.
func StudentToResponse(s *models.Student) StudentResponse {
	return StudentResponse{
		ID:     s.ID,
		Name:   s.Name,
		Email:  s.Email,
		RollNo: s.RollNo,
		Course: s.Course,
	}
}

// TeacherToResponse maps a teacher model to its response form.
func TeacherToResponse(t *models.Teacher) TeacherResponse {
	return TeacherResponse{
		ID:         t.ID,
		Name:       t.Name,
		Email:      t.Email,
		Department: t.Department,
		Status:     t.Status,
	}
}

// AdminToResponse maps an admin model to its response form.
func AdminToResponse(a *models.Admin) AdminResponse {
	return AdminResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
	}
}
