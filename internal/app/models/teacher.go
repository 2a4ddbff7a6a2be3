package models

import "time"

// Teacher defines the teacher model based on the 'teachers' table.
// Accounts start Pending and only an admin action moves them to
// Approved or Rejected; login is blocked until Approved.
type Teacher struct {
	ID         int64         `json:"id" db:"id" example:"1"`
	Name       string        `json:"name" db:"name" example:"John Smith"`
	Email      string        `json:"email" db:"email" example:"smith@college.edu"`
	Password   string        `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	Department string        `json:"department" db:"department" example:"Computer Science"`
	Status     TeacherStatus `json:"status" db:"status" example:"Pending"`
	CreatedAt  time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time     `json:"updatedAt" db:"updated_at"`
}
