package dto

import "collabboard/internal/app/models"

// ChangePasswordRequest is the payload for the admin password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"s3cret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=6,max=72" example:"n3ws3cret"`
}

// ProjectsByStatusResponse breaks down project counts by status.
type ProjectsByStatusResponse struct {
	Pending  int64 `json:"pending" example:"4"`
	Reviewed int64 `json:"reviewed" example:"11"`
	Approved int64 `json:"approved" example:"7"`
}

// StatisticsResponse is the admin dashboard aggregate.
type StatisticsResponse struct {
	TotalStudents    int64                        `json:"totalStudents" example:"120"`
	TotalTeachers    int64                        `json:"totalTeachers" example:"15"`
	TotalProjects    int64                        `json:"totalProjects" example:"22"`
	PendingTeachers  int64                        `json:"pendingTeachers" example:"3"`
	ProjectsByStatus ProjectsByStatusResponse     `json:"projectsByStatus"`
	RecentProjects   []ProjectWithStudentResponse `json:"recentProjects"`
}

// TeachersToResponse maps a slice of teacher models.
func TeachersToResponse(teachers []models.Teacher) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(teachers))
	for i := range teachers {
		out = append(out, TeacherToResponse(&teachers[i]))
	}
	return out
}
