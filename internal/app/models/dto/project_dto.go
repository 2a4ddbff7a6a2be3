package dto

import (
	"time"

	"collabboard/internal/app/models"
)

// UploadProjectRequest is the multipart form payload for project
// submission. The file itself arrives on the "projectFile" form field
// and is handled separately by the controller.
type UploadProjectRequest struct {
	Title       string `form:"title" binding:"required,min=2,max=200" example:"Compiler in Go"`
	Description string `form:"description" binding:"required,min=2" example:"A toy compiler for a C subset"`
	GithubLink  string `form:"githubLink" binding:"omitempty,url" example:"https://github.com/ayesha/toy-compiler"`
}

// EvaluateProjectRequest is the payload teachers send when grading.
// Status is optional and defaults to Reviewed.
type EvaluateProjectRequest struct {
	Marks    *int    `json:"marks" binding:"required,min=0,max=100" example:"85"`
	Feedback *string `json:"feedback" binding:"omitempty,max=2000"`
	Comments *string `json:"comments" binding:"omitempty,max=2000"`
	Status   string  `json:"status" binding:"omitempty,oneof=Reviewed Approved" example:"Reviewed"`
}

// ProjectResponse is the API view of a project record.
type ProjectResponse struct {
	ID               int64                `json:"id" example:"1"`
	StudentID        int64                `json:"studentId" example:"1"`
	Title            string               `json:"title" example:"Compiler in Go"`
	Description      string               `json:"description"`
	OriginalFilename string               `json:"originalFilename" example:"compiler.zip"`
	GithubLink       *string              `json:"githubLink,omitempty"`
	SubmissionDate   time.Time            `json:"submissionDate"`
	Status           models.ProjectStatus `json:"status" example:"Pending"`
	Marks            *int                 `json:"marks,omitempty" example:"85"`
	Feedback         *string              `json:"feedback,omitempty"`
	Comments         *string              `json:"comments,omitempty"`
}

// ProjectStudentResponse identifies the owning student in joined listings.
type ProjectStudentResponse struct {
	ID     int64  `json:"id" example:"1"`
	Name   string `json:"name" example:"Ayesha Khan"`
	Email  string `json:"email" example:"ayesha@student.edu"`
	RollNo string `json:"rollNo" example:"CS-2021-042"`
}

// ProjectWithStudentResponse is a project joined with its owner,
// returned to teachers and admins.
type ProjectWithStudentResponse struct {
	ProjectResponse
	Student ProjectStudentResponse `json:"student"`
}

// ProjectToResponse maps a project model to its response form.
func ProjectToResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:               p.ID,
		StudentID:        p.StudentID,
		Title:            p.Title,
		Description:      p.Description,
		OriginalFilename: p.OriginalFilename,
		GithubLink:       p.GithubLink,
		SubmissionDate:   p.SubmissionDate,
		Status:           p.Status,
		Marks:            p.Marks,
		Feedback:         p.Feedback,
		Comments:         p.Comments,
	}
}

// ProjectWithStudentToResponse maps a joined project row to its response form.
func ProjectWithStudentToResponse(p *models.ProjectWithStudent) ProjectWithStudentResponse {
	return ProjectWithStudentResponse{
		ProjectResponse: ProjectToResponse(&p.Project),
		Student: ProjectStudentResponse{
			ID:     p.Student.ID,
			Name:   p.Student.Name,
			Email:  p.Student.Email,
			RollNo: p.Student.RollNo,
		},
	}
}

// ProjectsToResponse maps a slice of projects.
func ProjectsToResponse(projects []models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ProjectToResponse(&projects[i]))
	}
	return out
}

// ProjectsWithStudentsToResponse maps a slice of joined project rows.
func ProjectsWithStudentsToResponse(projects []models.ProjectWithStudent) []ProjectWithStudentResponse {
	out := make([]ProjectWithStudentResponse, 0, len(projects))
	for i := range projects {
		out = append(out, ProjectWithStudentToResponse(&projects[i]))
	}
	return out
}
