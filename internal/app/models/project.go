package models

import (
	"errors"
	"time"
)

// Evaluation errors
var (
	ErrMarksOutOfRange    = errors.New("marks must be between 0 and 100")
	ErrInvalidStatus      = errors.New("status must be Reviewed or Approved")
	ErrProjectNotUploaded = errors.New("project has no stored file")
)

// Project defines the project model based on the 'projects' table.
// A project is exclusively owned by one student; evaluation data lives
// on the record itself and the evaluating teacher is not persisted.
type Project struct {
	ID               int64         `json:"id" db:"id" example:"1"`
	StudentID        int64         `json:"student_id" db:"student_id"`
	Title            string        `json:"title" db:"title" example:"Compiler in Go"`
	Description      string        `json:"description" db:"description"`
	FilePath         string        `json:"file_path" db:"file_path"`
	OriginalFilename string        `json:"original_filename" db:"original_filename"`
	GithubLink       *string       `json:"github_link,omitempty" db:"github_link"`
	SubmissionDate   time.Time     `json:"submission_date" db:"submission_date"`
	Status           ProjectStatus `json:"status" db:"status" example:"Pending"`
	Marks            *int          `json:"marks,omitempty" db:"marks"`
	Feedback         *string       `json:"feedback,omitempty" db:"feedback"`
	Comments         *string       `json:"comments,omitempty" db:"comments"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
}

// StudentInfo carries the owning student's identity for joined listings.
type StudentInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	RollNo string `json:"roll_no"`
}

// ProjectWithStudent is a project joined with its owning student,
// used by teacher listings and admin statistics.
type ProjectWithStudent struct {
	Project
	Student StudentInfo `json:"student"`
}

// ApplyEvaluation is the single transition function for the project
// state machine. It validates marks and the target status, then
// overwrites the evaluation fields in one step so marks and status
// never diverge. Re-evaluating an already Reviewed or Approved project
// is allowed; evaluation is mutable, not append-only.
//
// An empty target status defaults to Reviewed. Feedback and comments
// are only replaced when provided, matching the mutable-evaluation
// semantics of the portal.
func (p *Project) ApplyEvaluation(marks int, feedback, comments *string, target ProjectStatus) error {
	if marks < 0 || marks > 100 {
		return ErrMarksOutOfRange
	}

	if target == "" {
		target = ProjectReviewed
	}
	if target != ProjectReviewed && target != ProjectApproved {
		return ErrInvalidStatus
	}

	p.Marks = &marks
	if feedback != nil {
		p.Feedback = feedback
	}
	if comments != nil {
		p.Comments = comments
	}
	p.Status = target
	return nil
}
