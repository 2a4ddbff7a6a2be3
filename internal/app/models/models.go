package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleTeacher RoleType = "teacher"
	RoleAdmin   RoleType = "admin"
)

// Valid reports whether the role is one of the three known roles.
func (r RoleType) Valid() bool {
	switch r {
	case RoleStudent, RoleTeacher, RoleAdmin:
		return true
	}
	return false
}

// TeacherStatus represents the approval state of a teacher account
type TeacherStatus string

const (
	TeacherPending  TeacherStatus = "Pending"
	TeacherApproved TeacherStatus = "Approved"
	TeacherRejected TeacherStatus = "Rejected"
)

// ProjectStatus represents the review state of a submitted project
type ProjectStatus string

const (
	ProjectPending  ProjectStatus = "Pending"
	ProjectReviewed ProjectStatus = "Reviewed"
	ProjectApproved ProjectStatus = "Approved"
)
